package postgres

import (
	"github.com/riskibarqy/football-lab/internal/domain/player"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
)

const footballPlayersTable = "football_players"

type playerTableModel struct {
	ID             int64  `db:"id,readonly"`
	Name           string `db:"name"`
	Year           string `db:"year"`
	Major          string `db:"major"`
	PassingYards   int64  `db:"passing_yards"`
	RushingYards   int64  `db:"rushing_yards"`
	ReceivingYards int64  `db:"receiving_yards"`
	ImageSrc       string `db:"img_src"`
}

func playerFromRow(row gateway.Row) player.Player {
	return player.Player{
		ID:             row.Int64("id"),
		Name:           row.String("name"),
		Year:           row.String("year"),
		Major:          row.String("major"),
		PassingYards:   row.Int64("passing_yards"),
		RushingYards:   row.Int64("rushing_yards"),
		ReceivingYards: row.Int64("receiving_yards"),
		ImageSrc:       row.String("img_src"),
	}
}

func playerSummariesFromRows(rows gateway.Rows) []player.Summary {
	out := make([]player.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Summary{
			ID:   row.Int64("id"),
			Name: row.String("name"),
		})
	}
	return out
}

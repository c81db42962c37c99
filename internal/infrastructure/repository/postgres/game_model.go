package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
)

const footballGamesTable = "football_games"

type gameTableModel struct {
	ID           int64         `db:"id,readonly"`
	VisitorName  string        `db:"visitor_name"`
	HomeScore    int64         `db:"home_score"`
	VisitorScore int64         `db:"visitor_score"`
	GameDate     time.Time     `db:"game_date"`
	Players      pq.Int64Array `db:"players"`
}

func gameFromRow(row gateway.Row) game.Game {
	return game.Game{
		ID:           row.Int64("id"),
		VisitorName:  row.String("visitor_name"),
		HomeScore:    row.Int64("home_score"),
		VisitorScore: row.Int64("visitor_score"),
		GameDate:     row.Time("game_date"),
		PlayerIDs:    row.Int64s("players"),
	}
}

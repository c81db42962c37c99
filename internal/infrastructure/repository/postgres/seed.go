package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	"github.com/riskibarqy/football-lab/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/football-lab/internal/platform/querybuilder"
)

// Seed rows carry explicit ids so seeded games can reference seeded players.
type seedPlayerTableModel struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Year           string `db:"year"`
	Major          string `db:"major"`
	PassingYards   int64  `db:"passing_yards"`
	RushingYards   int64  `db:"rushing_yards"`
	ReceivingYards int64  `db:"receiving_yards"`
	ImageSrc       string `db:"img_src"`
}

type seedGameTableModel struct {
	ID           int64         `db:"id"`
	VisitorName  string        `db:"visitor_name"`
	HomeScore    int64         `db:"home_score"`
	VisitorScore int64         `db:"visitor_score"`
	GameDate     time.Time     `db:"game_date"`
	Players      pq.Int64Array `db:"players"`
}

// BootstrapSeed loads the sample roster, games and colors into an empty
// database. A database that already holds players is left untouched.
func BootstrapSeed(ctx context.Context, exec gateway.Executor) error {
	countStmt, err := selectStatement("count_players", qb.Count("total").From(footballPlayersTable))
	if err != nil {
		return err
	}
	rows, err := exec.Query(ctx, countStmt)
	if err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if row, ok := rows.First(); ok && row.Int64("total") > 0 {
		return nil
	}

	stmts, err := seedStatements()
	if err != nil {
		return err
	}
	if _, err := exec.Batch(ctx, "bootstrap-seed", stmts...); err != nil {
		return fmt.Errorf("bootstrap seed: %w", err)
	}

	return nil
}

func seedStatements() ([]gateway.Statement, error) {
	stmts := make([]gateway.Statement, 0, 16)

	for _, c := range memory.SeedFavoriteColors() {
		stmt, err := insertStatement("seed_favorite_color", favoriteColorsTable, favoriteColorTableModel{
			HexValue: c.HexValue,
			Name:     c.Name,
			Message:  c.Message,
		}, "ON CONFLICT (hex_value) DO NOTHING")
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	for _, p := range memory.SeedPlayers() {
		stmt, err := insertStatement("seed_player", footballPlayersTable, seedPlayerTableModel{
			ID:             p.ID,
			Name:           p.Name,
			Year:           p.Year,
			Major:          p.Major,
			PassingYards:   p.PassingYards,
			RushingYards:   p.RushingYards,
			ReceivingYards: p.ReceivingYards,
			ImageSrc:       p.ImageSrc,
		}, "ON CONFLICT (id) DO NOTHING")
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	for _, g := range memory.SeedGames() {
		stmt, err := insertStatement("seed_game", footballGamesTable, seedGameTableModel{
			ID:           g.ID,
			VisitorName:  g.VisitorName,
			HomeScore:    g.HomeScore,
			VisitorScore: g.VisitorScore,
			GameDate:     g.GameDate,
			Players:      pq.Int64Array(g.PlayerIDs),
		}, "ON CONFLICT (id) DO NOTHING")
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	// Explicit ids leave the serial sequences behind; move them past the seeds.
	for _, table := range []string{footballPlayersTable, footballGamesTable} {
		stmts = append(stmts, gateway.Statement{
			Name: "seed_sequence_" + table,
			SQL:  fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))", table),
		})
	}

	return stmts, nil
}

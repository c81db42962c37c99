package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-lab/internal/domain/player"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	qb "github.com/riskibarqy/football-lab/internal/platform/querybuilder"
)

var playerColumns = qb.ColumnsOf(playerTableModel{})

// gamesPlayedSource joins each player to the games whose players array
// contains its id.
const gamesPlayedSource = "football_players fp INNER JOIN football_games fg ON fp.id = ANY(fg.players)"

type PlayerRepository struct {
	exec gateway.Executor
}

func NewPlayerRepository(exec gateway.Executor) *PlayerRepository {
	return &PlayerRepository{exec: exec}
}

func (r *PlayerRepository) ListSummaries(ctx context.Context) ([]player.Summary, error) {
	stmt, err := listPlayerSummariesStatement()
	if err != nil {
		return nil, err
	}

	rows, err := r.exec.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("select player summaries: %w", err)
	}

	return playerSummariesFromRows(rows), nil
}

func (r *PlayerRepository) GetProfile(ctx context.Context, playerID int64) (player.Profile, bool, error) {
	roster, err := listPlayerSummariesStatement()
	if err != nil {
		return player.Profile{}, false, err
	}
	byID, err := selectStatement("player_by_id",
		qb.Select(playerColumns...).
			From(footballPlayersTable).
			Where(qb.Eq("id", playerID)).
			Limit(1),
	)
	if err != nil {
		return player.Profile{}, false, err
	}
	gamesPlayed, err := selectStatement("count_games_played",
		qb.Count("games_played").
			From(gamesPlayedSource).
			Where(qb.Eq("fp.id", playerID)).
			GroupBy("fp.id"),
	)
	if err != nil {
		return player.Profile{}, false, err
	}

	const task = "player-profile"
	results, err := r.exec.Batch(ctx, task, roster, byID, gamesPlayed)
	if err != nil {
		return player.Profile{}, false, fmt.Errorf("select player profile: %w", err)
	}
	if err := expectResults(task, results, 3); err != nil {
		return player.Profile{}, false, err
	}

	profile := player.Profile{Roster: playerSummariesFromRows(results[0])}
	row, ok := results[1].First()
	if !ok {
		return profile, false, nil
	}
	profile.Player = playerFromRow(row)
	// No group means the player never appeared in a game.
	if countRow, ok := results[2].First(); ok {
		profile.GamesPlayed = countRow.Int64("games_played")
	}

	return profile, true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (int64, error) {
	stmt, err := insertStatement("insert_player", footballPlayersTable, playerTableModel{
		Name:           item.Name,
		Year:           item.Year,
		Major:          item.Major,
		PassingYards:   item.PassingYards,
		RushingYards:   item.RushingYards,
		ReceivingYards: item.ReceivingYards,
		ImageSrc:       item.ImageSrc,
	}, "RETURNING id")
	if err != nil {
		return 0, err
	}

	const task = "add-player"
	results, err := r.exec.Batch(ctx, task, stmt)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	if err := expectResults(task, results, 1); err != nil {
		return 0, err
	}

	row, ok := results[0].First()
	if !ok {
		return 0, fmt.Errorf("insert player: no id returned")
	}

	return row.Int64("id"), nil
}

func listPlayerSummariesStatement() (gateway.Statement, error) {
	return selectStatement("list_player_summaries",
		qb.Select("id", "name").
			From(footballPlayersTable).
			OrderBy("id"),
	)
}

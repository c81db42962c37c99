package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	qb "github.com/riskibarqy/football-lab/internal/platform/querybuilder"
)

var gameColumns = qb.ColumnsOf(gameTableModel{})

type GameRepository struct {
	exec gateway.Executor
}

func NewGameRepository(exec gateway.Executor) *GameRepository {
	return &GameRepository{exec: exec}
}

func (r *GameRepository) Season(ctx context.Context) (game.Season, error) {
	games, err := selectStatement("list_games",
		qb.Select(gameColumns...).
			From(footballGamesTable).
			OrderBy("game_date", "id"),
	)
	if err != nil {
		return game.Season{}, err
	}
	wins, err := selectStatement("count_wins",
		qb.Count("score").
			From(footballGamesTable).
			Where(qb.Expr("home_score > visitor_score")),
	)
	if err != nil {
		return game.Season{}, err
	}
	losses, err := selectStatement("count_losses",
		qb.Count("score").
			From(footballGamesTable).
			Where(qb.Expr("home_score < visitor_score")),
	)
	if err != nil {
		return game.Season{}, err
	}

	const task = "team-stats"
	results, err := r.exec.Batch(ctx, task, games, wins, losses)
	if err != nil {
		return game.Season{}, fmt.Errorf("select team stats: %w", err)
	}
	if err := expectResults(task, results, 3); err != nil {
		return game.Season{}, err
	}

	season := game.Season{Games: make([]game.Game, 0, len(results[0]))}
	for _, row := range results[0] {
		season.Games = append(season.Games, gameFromRow(row))
	}
	if row, ok := results[1].First(); ok {
		season.Wins = row.Int64("score")
	}
	if row, ok := results[2].First(); ok {
		season.Losses = row.Int64("score")
	}

	return season, nil
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) error {
	players := pq.Int64Array(item.PlayerIDs)
	if players == nil {
		players = pq.Int64Array{}
	}

	stmt, err := insertStatement("insert_game", footballGamesTable, gameTableModel{
		VisitorName:  item.VisitorName,
		HomeScore:    item.HomeScore,
		VisitorScore: item.VisitorScore,
		GameDate:     item.GameDate,
		Players:      players,
	}, "")
	if err != nil {
		return err
	}

	if _, err := r.exec.Query(ctx, stmt); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	return nil
}

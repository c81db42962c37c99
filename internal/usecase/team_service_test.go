package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	"github.com/riskibarqy/football-lab/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/football-lab/internal/mocks/domain/game"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_SeasonCountsTiesAsNeither(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewTeamService(memory.NewGameRepository(nil))

	games := []game.Game{
		{VisitorName: "Colorado State", HomeScore: 45, VisitorScore: 13},
		{VisitorName: "Nebraska", HomeScore: 28, VisitorScore: 33},
		{VisitorName: "Oregon State", HomeScore: 34, VisitorScore: 34},
	}
	for i, g := range games {
		g.GameDate = time.Date(2018, time.September, i+1, 0, 0, 0, 0, time.UTC)
		if err := service.AddGame(ctx, g); err != nil {
			t.Fatalf("add game %d: %v", i, err)
		}
	}

	season, err := service.Season(ctx)
	if err != nil {
		t.Fatalf("season: %v", err)
	}
	if season.Wins != 1 || season.Losses != 1 || season.Ties() != 1 {
		t.Fatalf("unexpected record: %d-%d-%d", season.Wins, season.Losses, season.Ties())
	}
}

func TestTeamService_AddGame_Validation(t *testing.T) {
	t.Parallel()

	repo := gamemock.NewRepository(t)
	service := NewTeamService(repo)

	err := service.AddGame(context.Background(), game.Game{VisitorName: "  ", GameDate: time.Now()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamService_SeasonFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := gamemock.NewRepository(t)
	service := NewTeamService(repo)

	repo.
		On("Season", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(game.Season{}, &gateway.Error{Kind: gateway.ErrStatement, Task: "team-stats", Statement: "count_wins"}).
		Once()

	if _, err := service.Season(ctx); !errors.Is(err, gateway.ErrStatement) {
		t.Fatalf("expected ErrStatement, got %v", err)
	}
}

func TestTeamService_SeasonRejectsImpossibleCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := gamemock.NewRepository(t)
	service := NewTeamService(repo)

	repo.
		On("Season", mock.Anything).
		Return(game.Season{Games: []game.Game{{ID: 1}}, Wins: 1, Losses: 1}, nil).
		Once()

	if _, err := service.Season(ctx); err == nil {
		t.Fatalf("expected error when wins and losses exceed games")
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-lab/internal/domain/player"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	"github.com/riskibarqy/football-lab/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/football-lab/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

const testDefaultImage = "/resources/img/helmet.svg"

func TestPlayerService_AddPlayerAssignsPlaceholderImageAndFreshIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.NewGameRepository(memory.SeedGames()))
	service := NewPlayerService(repo, testDefaultImage)

	first, err := service.AddPlayer(ctx, player.Player{Name: "Walk On", Year: "Freshman", Major: "Physics", ImageSrc: "http://elsewhere/img.png"})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	second, err := service.AddPlayer(ctx, player.Player{Name: "Another"})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if second <= first {
		t.Fatalf("expected increasing ids, got %d then %d", first, second)
	}

	profile, err := service.Profile(ctx, first)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Player.ImageSrc != testDefaultImage {
		t.Fatalf("unexpected image: %q", profile.Player.ImageSrc)
	}
	if profile.GamesPlayed != 0 {
		t.Fatalf("expected no games for new player, got %d", profile.GamesPlayed)
	}
}

func TestPlayerService_Profile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.NewGameRepository(memory.SeedGames()))
	service := NewPlayerService(repo, testDefaultImage)

	tests := []struct {
		name      string
		playerID  int64
		wantErr   error
		wantGames int64
	}{
		{name: "known player", playerID: 1, wantGames: 4},
		{name: "unknown player", playerID: 404, wantErr: ErrNotFound},
		{name: "invalid id", playerID: 0, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := service.Profile(ctx, tt.playerID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("profile: %v", err)
			}
			if profile.GamesPlayed != tt.wantGames {
				t.Fatalf("unexpected games played: got=%d want=%d", profile.GamesPlayed, tt.wantGames)
			}
		})
	}

	profile, err := service.Profile(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(profile.Roster) != len(memory.SeedPlayers()) {
		t.Fatalf("expected roster alongside not found, got %+v", profile.Roster)
	}
}

func TestPlayerService_AddPlayerFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, testDefaultImage)

	repo.
		On("Create", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(p player.Player) bool {
			return p.Name == "Steven Montez" && p.ImageSrc == testDefaultImage
		})).
		Return(int64(0), &gateway.Error{Kind: gateway.ErrUnavailable, Task: "add-player"}).
		Once()

	id, err := service.AddPlayer(ctx, player.Player{Name: " Steven Montez "})
	if !errors.Is(err, gateway.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if id != 0 {
		t.Fatalf("expected no id on failure, got %d", id)
	}
}

func TestPlayerService_AddPlayer_InvalidInput(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, testDefaultImage)

	if _, err := service.AddPlayer(context.Background(), player.Player{Name: "X", PassingYards: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

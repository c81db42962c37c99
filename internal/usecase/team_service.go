package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-lab/internal/domain/game"
)

type TeamService struct {
	gameRepo game.Repository
}

func NewTeamService(gameRepo game.Repository) *TeamService {
	return &TeamService{gameRepo: gameRepo}
}

func (s *TeamService) Season(ctx context.Context) (game.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Season")
	defer span.End()

	season, err := s.gameRepo.Season(ctx)
	if err != nil {
		return game.Season{}, fmt.Errorf("get season: %w", err)
	}
	if season.Wins+season.Losses > int64(len(season.Games)) {
		return game.Season{}, fmt.Errorf("get season: %d wins and %d losses over %d games", season.Wins, season.Losses, len(season.Games))
	}

	return season, nil
}

func (s *TeamService) AddGame(ctx context.Context, item game.Game) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddGame")
	defer span.End()

	item.VisitorName = strings.TrimSpace(item.VisitorName)
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.gameRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("add game: %w", err)
	}

	return nil
}

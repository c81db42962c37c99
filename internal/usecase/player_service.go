package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-lab/internal/domain/player"
)

type PlayerService struct {
	playerRepo   player.Repository
	defaultImage string
}

func NewPlayerService(playerRepo player.Repository, defaultImage string) *PlayerService {
	return &PlayerService{
		playerRepo:   playerRepo,
		defaultImage: defaultImage,
	}
}

func (s *PlayerService) Roster(ctx context.Context) ([]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Roster")
	defer span.End()

	roster, err := s.playerRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player summaries: %w", err)
	}

	return roster, nil
}

// Profile loads one player. When the id is unknown the error wraps
// ErrNotFound and the returned profile still carries the roster.
func (s *PlayerService) Profile(ctx context.Context, playerID int64) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile")
	defer span.End()

	if playerID <= 0 {
		return player.Profile{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	profile, exists, err := s.playerRepo.GetProfile(ctx, playerID)
	if err != nil {
		return player.Profile{}, fmt.Errorf("get player profile: %w", err)
	}
	if !exists {
		return player.Profile{Roster: profile.Roster}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return profile, nil
}

// AddPlayer stores a player with the placeholder image and returns its id.
func (s *PlayerService) AddPlayer(ctx context.Context, item player.Player) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	item.Year = strings.TrimSpace(item.Year)
	item.Major = strings.TrimSpace(item.Major)
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item.ImageSrc = s.defaultImage

	id, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("add player: %w", err)
	}

	return id, nil
}

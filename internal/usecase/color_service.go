package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-lab/internal/domain/color"
)

// ColorSelection is the home page state: every color plus the highlighted one.
type ColorSelection struct {
	Colors   []color.FavoriteColor
	Selected color.FavoriteColor
}

type ColorService struct {
	colorRepo color.Repository
}

func NewColorService(colorRepo color.Repository) *ColorService {
	return &ColorService{colorRepo: colorRepo}
}

func (s *ColorService) List(ctx context.Context) ([]color.FavoriteColor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ColorService.List")
	defer span.End()

	colors, err := s.colorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorite colors: %w", err)
	}

	return colors, nil
}

// Pick highlights the color with hexValue. When no color matches, the error
// wraps ErrNotFound and the selection still carries the color list.
func (s *ColorService) Pick(ctx context.Context, hexValue string) (ColorSelection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ColorService.Pick")
	defer span.End()

	hexValue = color.NormalizeHex(hexValue)
	if hexValue == "" {
		return ColorSelection{}, fmt.Errorf("%w: color selection is required", ErrInvalidInput)
	}

	colors, selected, exists, err := s.colorRepo.ListWithSelection(ctx, hexValue)
	if err != nil {
		return ColorSelection{}, fmt.Errorf("pick favorite color: %w", err)
	}
	if !exists {
		return ColorSelection{Colors: colors}, fmt.Errorf("%w: color=%s", ErrNotFound, hexValue)
	}

	return ColorSelection{Colors: colors, Selected: selected}, nil
}

// Add stores a new color and selects it.
func (s *ColorService) Add(ctx context.Context, item color.FavoriteColor) (ColorSelection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ColorService.Add")
	defer span.End()

	item.HexValue = color.NormalizeHex(item.HexValue)
	if err := item.Validate(); err != nil {
		return ColorSelection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	colors, err := s.colorRepo.CreateAndList(ctx, item)
	if err != nil {
		return ColorSelection{}, fmt.Errorf("add favorite color: %w", err)
	}

	return ColorSelection{Colors: colors, Selected: item}, nil
}

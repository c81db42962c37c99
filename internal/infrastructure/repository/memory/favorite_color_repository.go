package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-lab/internal/domain/color"
)

type FavoriteColorRepository struct {
	mu    sync.RWMutex
	items map[string]color.FavoriteColor
}

func NewFavoriteColorRepository(colors []color.FavoriteColor) *FavoriteColorRepository {
	items := make(map[string]color.FavoriteColor, len(colors))
	for _, c := range colors {
		items[c.HexValue] = c
	}

	return &FavoriteColorRepository{items: items}
}

func (r *FavoriteColorRepository) List(_ context.Context) ([]color.FavoriteColor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

func (r *FavoriteColorRepository) ListWithSelection(_ context.Context, hexValue string) ([]color.FavoriteColor, color.FavoriteColor, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	selected, ok := r.items[hexValue]
	return r.sortedLocked(), selected, ok, nil
}

func (r *FavoriteColorRepository) CreateAndList(_ context.Context, item color.FavoriteColor) ([]color.FavoriteColor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.HexValue]; exists {
		return nil, fmt.Errorf("%w: favorite color %s", ErrDuplicateKey, item.HexValue)
	}
	r.items[item.HexValue] = item

	return r.sortedLocked(), nil
}

// sortedLocked matches the postgres ordering: name, then hex value.
func (r *FavoriteColorRepository) sortedLocked() []color.FavoriteColor {
	out := make([]color.FavoriteColor, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].HexValue < out[j].HexValue
	})
	return out
}

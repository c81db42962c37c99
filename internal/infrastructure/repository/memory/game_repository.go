package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-lab/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	items  []game.Game
	nextID int64
}

func NewGameRepository(games []game.Game) *GameRepository {
	r := &GameRepository{nextID: 1}
	for _, g := range games {
		if g.ID == 0 {
			g.ID = r.nextID
		}
		if g.ID >= r.nextID {
			r.nextID = g.ID + 1
		}
		r.items = append(r.items, cloneGame(g))
	}
	return r
}

func (r *GameRepository) Season(_ context.Context) (game.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	season := game.Season{Games: make([]game.Game, 0, len(r.items))}
	for _, g := range r.items {
		season.Games = append(season.Games, cloneGame(g))
		switch g.Outcome() {
		case game.OutcomeWin:
			season.Wins++
		case game.OutcomeLoss:
			season.Losses++
		}
	}
	sort.SliceStable(season.Games, func(i, j int) bool {
		if !season.Games[i].GameDate.Equal(season.Games[j].GameDate) {
			return season.Games[i].GameDate.Before(season.Games[j].GameDate)
		}
		return season.Games[i].ID < season.Games[j].ID
	})

	return season, nil
}

func (r *GameRepository) Create(_ context.Context, item game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, cloneGame(item))
	return nil
}

func cloneGame(g game.Game) game.Game {
	copied := g
	copied.PlayerIDs = append([]int64(nil), g.PlayerIDs...)
	return copied
}

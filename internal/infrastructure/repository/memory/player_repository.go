package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-lab/internal/domain/player"
)

// PlayerRepository keeps players in id order. It reads games through the game
// repository to count appearances.
type PlayerRepository struct {
	mu     sync.RWMutex
	items  []player.Player
	nextID int64
	games  *GameRepository
}

func NewPlayerRepository(players []player.Player, games *GameRepository) *PlayerRepository {
	r := &PlayerRepository{nextID: 1, games: games}
	for _, p := range players {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.items = append(r.items, p)
	}
	slices.SortFunc(r.items, func(a, b player.Player) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return r
}

func (r *PlayerRepository) ListSummaries(_ context.Context) ([]player.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.summariesLocked(), nil
}

func (r *PlayerRepository) GetProfile(_ context.Context, playerID int64) (player.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile := player.Profile{Roster: r.summariesLocked()}
	idx := slices.IndexFunc(r.items, func(p player.Player) bool { return p.ID == playerID })
	if idx < 0 {
		return profile, false, nil
	}
	profile.Player = r.items[idx]
	profile.GamesPlayed = r.gamesPlayed(playerID)

	return profile, true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item.ID, nil
}

func (r *PlayerRepository) summariesLocked() []player.Summary {
	out := make([]player.Summary, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, player.Summary{ID: p.ID, Name: p.Name})
	}
	return out
}

func (r *PlayerRepository) gamesPlayed(playerID int64) int64 {
	if r.games == nil {
		return 0
	}

	r.games.mu.RLock()
	defer r.games.mu.RUnlock()

	var count int64
	for _, g := range r.games.items {
		if slices.Contains(g.PlayerIDs, playerID) {
			count++
		}
	}
	return count
}

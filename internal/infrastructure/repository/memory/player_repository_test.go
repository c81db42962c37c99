package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/domain/player"
)

func TestPlayerRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(), NewGameRepository(nil))
	ctx := context.Background()

	var (
		mu  sync.Mutex
		ids = make(map[int64]struct{})
		wg  sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, player.Player{Name: "Walk On"})
			if err != nil {
				t.Errorf("create player: %v", err)
				return
			}
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != 20 {
		t.Fatalf("expected 20 distinct ids, got %d", len(ids))
	}
	for id := range ids {
		if id <= int64(len(SeedPlayers())) {
			t.Fatalf("id %d reused a seeded id", id)
		}
	}

	last, err := repo.Create(ctx, player.Player{Name: "Last"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	for id := range ids {
		if last <= id {
			t.Fatalf("expected id %d to be greater than %d", last, id)
		}
	}
}

func TestPlayerRepository_GetProfile(t *testing.T) {
	games := NewGameRepository(SeedGames())
	repo := NewPlayerRepository(SeedPlayers(), games)
	ctx := context.Background()

	profile, found, err := repo.GetProfile(ctx, 3)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if !found || profile.Player.Name != "Travon McMillian" {
		t.Fatalf("unexpected profile: found=%v %+v", found, profile.Player)
	}
	if profile.GamesPlayed != 3 {
		t.Fatalf("unexpected games played: %d", profile.GamesPlayed)
	}

	newID, err := repo.Create(ctx, player.Player{Name: "Redshirt"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	profile, found, err = repo.GetProfile(ctx, newID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if !found || profile.GamesPlayed != 0 {
		t.Fatalf("expected zero games for new player, got found=%v games=%d", found, profile.GamesPlayed)
	}

	if err := games.Create(ctx, game.Game{VisitorName: "Utah", PlayerIDs: []int64{newID}}); err != nil {
		t.Fatalf("create game: %v", err)
	}
	profile, _, err = repo.GetProfile(ctx, newID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.GamesPlayed != 1 {
		t.Fatalf("expected one game after insert, got %d", profile.GamesPlayed)
	}

	profile, found, err = repo.GetProfile(ctx, 999)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if found {
		t.Fatalf("expected unknown player")
	}
	if len(profile.Roster) != len(SeedPlayers())+1 {
		t.Fatalf("expected roster on miss, got %d entries", len(profile.Roster))
	}
}

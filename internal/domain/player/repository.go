package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListSummaries(ctx context.Context) ([]Summary, error)
	// GetProfile reads the roster, the player and its games-played count from a
	// single snapshot. The roster is filled even when the player does not exist.
	GetProfile(ctx context.Context, playerID int64) (Profile, bool, error)
	// Create stores item and returns the id assigned to exactly that row.
	Create(ctx context.Context, item Player) (int64, error)
}

package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	// Season reads games, wins and losses from a single snapshot.
	Season(ctx context.Context) (Season, error)
	Create(ctx context.Context, item Game) error
}

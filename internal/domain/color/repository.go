package color

import "context"

// Repository describes favorite color persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]FavoriteColor, error)
	// ListWithSelection reads every color and the one matching hexValue from a
	// single snapshot.
	ListWithSelection(ctx context.Context, hexValue string) ([]FavoriteColor, FavoriteColor, bool, error)
	// CreateAndList stores item and returns the full list including it.
	CreateAndList(ctx context.Context, item FavoriteColor) ([]FavoriteColor, error)
}

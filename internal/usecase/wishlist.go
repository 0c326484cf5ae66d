package usecase

import (
	"context"

	"vinylapi/internal/entity"
)

type WishlistRepository interface {
	// ListByUser returns the user's wishlist in insertion order.
	ListByUser(ctx context.Context, userID string) ([]entity.WishlistItem, error)

	// ListExternalIDs returns just the catalog ids, for membership checks.
	ListExternalIDs(ctx context.Context, userID string) ([]string, error)

	// Add inserts a row and fills in the storage-assigned id. Duplicate
	// (user, external_id) pairs return ErrAlreadyExists.
	Add(ctx context.Context, item *entity.WishlistItem) error

	// Remove deletes by primary key scoped to the user. Removing an id
	// that is already gone is not an error.
	Remove(ctx context.Context, userID, itemID string) error
}

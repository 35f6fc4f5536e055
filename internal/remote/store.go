// Package remote adapts cart and wishlist mutations onto the per-user
// document store. Cart lines live as one document per item under the user's
// scope; the wishlist is a set field on the user profile document.
package remote

import (
	"context"

	"mavazimarket/internal/domain"
)

type Store interface {
	// LoadCart returns every cart line under the user's scope. Ordering is
	// whatever the document store enumerates.
	LoadCart(ctx context.Context, userID string) ([]domain.CartItem, error)
	// UpsertCartItem creates or replaces one line keyed by item.ID.
	UpsertCartItem(ctx context.Context, userID string, item domain.CartItem) error
	// DeleteCartItem removes one line; deleting an absent line is not an error.
	DeleteCartItem(ctx context.Context, userID, itemID string) error
	// ClearCart deletes every cart line for the user in one atomic batch.
	ClearCart(ctx context.Context, userID string) error
	// MergeCart writes the given (already reconciled) lines in one atomic
	// batch. Partial application is not possible: the batch commits or fails
	// as a whole.
	MergeCart(ctx context.Context, userID string, items []domain.CartItem) error

	LoadWishlist(ctx context.Context, userID string) ([]string, error)
	// UnionWishlist adds the given product IDs to the wishlist set without
	// duplicating existing entries.
	UnionWishlist(ctx context.Context, userID string, productIDs []string) error
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

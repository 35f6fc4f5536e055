// Package guest persists cart and wishlist state for unauthenticated
// sessions. Records are scoped to one device, live under a fixed key
// namespace, and are deleted once merged into the remote store on sign-in.
package guest

import (
	"context"

	"mavazimarket/internal/domain"
)

type Store interface {
	LoadCart(ctx context.Context, deviceID string) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, deviceID string, items []domain.CartItem) error
	ClearCart(ctx context.Context, deviceID string) error

	LoadWishlist(ctx context.Context, deviceID string) ([]string, error)
	SaveWishlist(ctx context.Context, deviceID string, productIDs []string) error
	ClearWishlist(ctx context.Context, deviceID string) error
}

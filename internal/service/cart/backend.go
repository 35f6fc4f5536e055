package cart

import (
	"context"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/guest"
	"mavazimarket/internal/remote"
)

// guestBackend mirrors the view state into the device-scoped guest store.
// The guest record is a single sequence, so every mutation overwrites it
// with the current snapshot.
type guestBackend struct {
	store    guest.Store
	deviceID string
}

func NewGuestBackend(store guest.Store, deviceID string) Backend {
	return &guestBackend{store: store, deviceID: deviceID}
}

func (b *guestBackend) Load(ctx context.Context) ([]domain.CartItem, error) {
	return b.store.LoadCart(ctx, b.deviceID)
}

func (b *guestBackend) UpsertItem(ctx context.Context, _ domain.CartItem, snapshot []domain.CartItem) error {
	return b.store.SaveCart(ctx, b.deviceID, snapshot)
}

func (b *guestBackend) RemoveItem(ctx context.Context, _ string, snapshot []domain.CartItem) error {
	return b.store.SaveCart(ctx, b.deviceID, snapshot)
}

func (b *guestBackend) Clear(ctx context.Context) error {
	return b.store.ClearCart(ctx, b.deviceID)
}

// remoteBackend mirrors the view state into the authenticated user's remote
// store, one document per line.
type remoteBackend struct {
	store  remote.Store
	userID string
}

func NewRemoteBackend(store remote.Store, userID string) Backend {
	return &remoteBackend{store: store, userID: userID}
}

func (b *remoteBackend) Load(ctx context.Context) ([]domain.CartItem, error) {
	return b.store.LoadCart(ctx, b.userID)
}

func (b *remoteBackend) UpsertItem(ctx context.Context, item domain.CartItem, _ []domain.CartItem) error {
	return b.store.UpsertCartItem(ctx, b.userID, item)
}

func (b *remoteBackend) RemoveItem(ctx context.Context, itemID string, _ []domain.CartItem) error {
	return b.store.DeleteCartItem(ctx, b.userID, itemID)
}

func (b *remoteBackend) Clear(ctx context.Context) error {
	return b.store.ClearCart(ctx, b.userID)
}

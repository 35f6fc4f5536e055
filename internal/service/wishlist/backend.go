package wishlist

import (
	"context"

	"mavazimarket/internal/guest"
	"mavazimarket/internal/remote"
)

type guestBackend struct {
	store    guest.Store
	deviceID string
}

func NewGuestBackend(store guest.Store, deviceID string) Backend {
	return &guestBackend{store: store, deviceID: deviceID}
}

func (b *guestBackend) Load(ctx context.Context) ([]string, error) {
	return b.store.LoadWishlist(ctx, b.deviceID)
}

func (b *guestBackend) Add(ctx context.Context, _ string, snapshot []string) error {
	return b.store.SaveWishlist(ctx, b.deviceID, snapshot)
}

func (b *guestBackend) Remove(ctx context.Context, _ string, snapshot []string) error {
	return b.store.SaveWishlist(ctx, b.deviceID, snapshot)
}

type remoteBackend struct {
	store  remote.Store
	userID string
}

func NewRemoteBackend(store remote.Store, userID string) Backend {
	return &remoteBackend{store: store, userID: userID}
}

func (b *remoteBackend) Load(ctx context.Context) ([]string, error) {
	return b.store.LoadWishlist(ctx, b.userID)
}

func (b *remoteBackend) Add(ctx context.Context, productID string, _ []string) error {
	return b.store.AddToWishlist(ctx, b.userID, productID)
}

func (b *remoteBackend) Remove(ctx context.Context, productID string, _ []string) error {
	return b.store.RemoveFromWishlist(ctx, b.userID, productID)
}

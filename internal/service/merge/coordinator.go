// Package merge reconciles guest-held cart and wishlist state into the
// authenticated user's remote store on sign-in.
package merge

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"mavazimarket/internal/guest"
	"mavazimarket/internal/remote"
)

type Coordinator struct {
	guest  guest.Store
	remote remote.Store
	group  singleflight.Group
	logger zerolog.Logger
}

func New(guestStore guest.Store, remoteStore remote.Store, logger zerolog.Logger) *Coordinator {
	return &Coordinator{guest: guestStore, remote: remoteStore, logger: logger}
}

// SignIn merges the device's guest cart and wishlist into the user's remote
// store. Concurrent invocations for the same device and user (duplicate auth
// callbacks) collapse into a single merge, so quantities cannot be
// double-summed. The flight is keyed per device: two devices signing into
// the same account each carry their own guest record and must each merge.
func (c *Coordinator) SignIn(ctx context.Context, deviceID, userID string) error {
	_, err, _ := c.group.Do(deviceID+"\x00"+userID, func() (interface{}, error) {
		if err := c.mergeCart(ctx, deviceID, userID); err != nil {
			return nil, fmt.Errorf("merge cart: %w", err)
		}
		if err := c.mergeWishlist(ctx, deviceID, userID); err != nil {
			return nil, fmt.Errorf("merge wishlist: %w", err)
		}
		return nil, nil
	})
	return err
}

// mergeCart sums quantities on equal line IDs and inserts disjoint guest
// lines as-is, commits the result as one batch, and clears the guest cart
// only after the batch succeeds. A failed batch leaves the guest record in
// place so the next sign-in can retry.
func (c *Coordinator) mergeCart(ctx context.Context, deviceID, userID string) error {
	guestItems, err := c.guest.LoadCart(ctx, deviceID)
	if err != nil {
		return err
	}
	if len(guestItems) == 0 {
		return nil
	}

	remoteItems, err := c.remote.LoadCart(ctx, userID)
	if err != nil {
		return err
	}
	remoteQty := make(map[string]int, len(remoteItems))
	for _, it := range remoteItems {
		remoteQty[it.ID] = it.Quantity
	}

	merged := guestItems[:0:0]
	for _, it := range guestItems {
		if qty, ok := remoteQty[it.ID]; ok {
			it.Quantity += qty
		}
		merged = append(merged, it)
	}

	if err := c.remote.MergeCart(ctx, userID, merged); err != nil {
		return err
	}
	if err := c.guest.ClearCart(ctx, deviceID); err != nil {
		// The merge itself landed; a dangling guest record would only be
		// re-merged on a later sign-in, so surface the failure.
		return fmt.Errorf("clear guest cart: %w", err)
	}
	c.logger.Info().Str("device", deviceID).Str("user", userID).Int("lines", len(merged)).Msg("merged guest cart")
	return nil
}

func (c *Coordinator) mergeWishlist(ctx context.Context, deviceID, userID string) error {
	ids, err := c.guest.LoadWishlist(ctx, deviceID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := c.remote.UnionWishlist(ctx, userID, ids); err != nil {
		return err
	}
	if err := c.guest.ClearWishlist(ctx, deviceID); err != nil {
		return fmt.Errorf("clear guest wishlist: %w", err)
	}
	c.logger.Info().Str("device", deviceID).Str("user", userID).Int("entries", len(ids)).Msg("merged guest wishlist")
	return nil
}

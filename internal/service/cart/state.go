// Package cart holds the in-memory cart view state a storefront session
// renders from. Every mutation is applied to memory first, then mirrored to
// the active backend (guest or remote); if the write fails the in-memory
// change is reverted so the view never runs ahead of the store.
package cart

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mavazimarket/internal/domain"
)

// Backend is the store behind the view state. The guest backend overwrites
// the whole record from the snapshot; the remote backend applies the
// per-item operation and ignores the snapshot.
type Backend interface {
	Load(ctx context.Context) ([]domain.CartItem, error)
	UpsertItem(ctx context.Context, item domain.CartItem, snapshot []domain.CartItem) error
	RemoveItem(ctx context.Context, itemID string, snapshot []domain.CartItem) error
	Clear(ctx context.Context) error
}

type State struct {
	mu      sync.Mutex
	items   []domain.CartItem
	backend Backend
}

func NewState(backend Backend) *State {
	return &State{backend: backend}
}

// Rebind switches the state to a new backend and reloads from it. On load
// failure neither the backend nor the items change.
func (s *State) Rebind(ctx context.Context, backend Backend) error {
	items, err := backend.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.backend = backend
	s.items = items
	s.mu.Unlock()
	return nil
}

// AddItem puts a product variant into the cart. A line with the same
// product, size and color has its quantity incremented; otherwise a new line
// is appended.
func (s *State) AddItem(ctx context.Context, p domain.Product, quantity int, size, color string) (domain.CartItem, error) {
	if quantity < 1 {
		return domain.CartItem{}, errors.New("quantity must be positive")
	}
	if strings.TrimSpace(p.ID) == "" {
		return domain.CartItem{}, errors.New("product id required")
	}
	lineID := domain.LineID(p.ID, size, color)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(lineID)
	var updated domain.CartItem
	if idx >= 0 {
		updated = s.items[idx]
		updated.Quantity += quantity
	} else {
		updated = domain.CartItem{
			ID:         lineID,
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Image:      p.Image,
			Quantity:   quantity,
			Size:       strings.TrimSpace(size),
			Color:      strings.TrimSpace(color),
			Slug:       p.Slug,
		}
	}

	prev := s.snapshot()
	if idx >= 0 {
		s.items[idx] = updated
	} else {
		s.items = append(s.items, updated)
	}

	if err := s.backend.UpsertItem(ctx, updated, s.snapshot()); err != nil {
		s.items = prev
		return domain.CartItem{}, err
	}
	return updated, nil
}

// SetQuantity changes a line's quantity. A target below one removes the line
// instead.
func (s *State) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return domain.ErrNotFound
	}

	prev := s.snapshot()
	updated := s.items[idx]
	updated.Quantity = quantity
	s.items[idx] = updated

	if err := s.backend.UpsertItem(ctx, updated, s.snapshot()); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// RemoveItem deletes a line. Removing an absent line succeeds.
func (s *State) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return nil
	}

	prev := s.snapshot()
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)

	if err := s.backend.RemoveItem(ctx, itemID, s.snapshot()); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Clear empties the cart and the active store.
func (s *State) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.snapshot()
	s.items = nil

	if err := s.backend.Clear(ctx); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Items returns a copy of the current cart lines.
func (s *State) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// TotalItemCount sums line quantities. Recomputed on every call.
func (s *State) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalAmountCents sums price times quantity over all lines. Recomputed on
// every call.
func (s *State) TotalAmountCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

func (s *State) indexOf(itemID string) int {
	for i, it := range s.items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func (s *State) snapshot() []domain.CartItem {
	if s.items == nil {
		return nil
	}
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

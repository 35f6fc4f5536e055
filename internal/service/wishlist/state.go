// Package wishlist holds the in-memory wishlist view state. Entries are a
// set of product IDs; mutations follow the same memory-first, revert-on-
// write-failure discipline as the cart.
package wishlist

import (
	"context"
	"strings"
	"sync"
)

// Backend is the store behind the view state. The guest backend overwrites
// the whole set from the snapshot; the remote backend applies the single-
// entry set mutation.
type Backend interface {
	Load(ctx context.Context) ([]string, error)
	Add(ctx context.Context, productID string, snapshot []string) error
	Remove(ctx context.Context, productID string, snapshot []string) error
}

type State struct {
	mu      sync.Mutex
	ids     []string
	backend Backend
}

func NewState(backend Backend) *State {
	return &State{backend: backend}
}

// Rebind switches the state to a new backend and reloads from it.
func (s *State) Rebind(ctx context.Context, backend Backend) error {
	ids, err := backend.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.backend = backend
	s.ids = ids
	s.mu.Unlock()
	return nil
}

// Add puts a product on the wishlist. Adding a product that is already
// present is a no-op; the set never holds duplicates.
func (s *State) Add(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(productID) {
		return nil
	}

	prev := s.snapshot()
	s.ids = append(s.ids, productID)

	if err := s.backend.Add(ctx, productID, s.snapshot()); err != nil {
		s.ids = prev
		return err
	}
	return nil
}

// Remove takes a product off the wishlist. Removing an absent product
// succeeds.
func (s *State) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, id := range s.ids {
		if id == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	prev := s.snapshot()
	s.ids = append(s.ids[:idx:idx], s.ids[idx+1:]...)

	if err := s.backend.Remove(ctx, productID, s.snapshot()); err != nil {
		s.ids = prev
		return err
	}
	return nil
}

// Has reports wishlist membership.
func (s *State) Has(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contains(productID)
}

// List returns a copy of the wishlist in insertion order.
func (s *State) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *State) contains(productID string) bool {
	for _, id := range s.ids {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *State) snapshot() []string {
	if s.ids == nil {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

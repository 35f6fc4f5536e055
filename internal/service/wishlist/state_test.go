package wishlist

import (
	"context"
	"errors"
	"testing"
)

type stubBackend struct {
	loadIDs      []string
	loadErr      error
	addErr       error
	removeErr    error
	addCalls     int
	removeCalls  int
	lastSnapshot []string
}

func (b *stubBackend) Load(_ context.Context) ([]string, error) {
	return b.loadIDs, b.loadErr
}

func (b *stubBackend) Add(_ context.Context, _ string, snapshot []string) error {
	b.addCalls++
	b.lastSnapshot = snapshot
	return b.addErr
}

func (b *stubBackend) Remove(_ context.Context, _ string, snapshot []string) error {
	b.removeCalls++
	b.lastSnapshot = snapshot
	return b.removeErr
}

func TestAddIsIdempotent(t *testing.T) {
	backend := &stubBackend{}
	state := NewState(backend)
	ctx := context.Background()

	if err := state.Add(ctx, "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := state.Add(ctx, "p1"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	if got := state.List(); len(got) != 1 || got[0] != "p1" {
		t.Fatalf("expected single entry, got %+v", got)
	}
	if backend.addCalls != 1 {
		t.Fatalf("duplicate add must not hit the backend, got %d calls", backend.addCalls)
	}
}

func TestAddRevertsOnWriteFailure(t *testing.T) {
	backend := &stubBackend{addErr: errors.New("write failed")}
	state := NewState(backend)

	if err := state.Add(context.Background(), "p1"); err == nil {
		t.Fatalf("expected backend error")
	}
	if state.Has("p1") {
		t.Fatalf("failed write must not leave optimistic state behind")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	backend := &stubBackend{}
	state := NewState(backend)

	if err := state.Remove(context.Background(), "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.removeCalls != 0 {
		t.Fatalf("absent removal must not hit the backend")
	}
}

func TestRemoveDeletesEntry(t *testing.T) {
	backend := &stubBackend{}
	state := NewState(backend)
	ctx := context.Background()

	if err := state.Add(ctx, "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := state.Remove(ctx, "p1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if state.Has("p1") || len(state.List()) != 0 {
		t.Fatalf("expected empty wishlist")
	}
}

func TestRebindReloads(t *testing.T) {
	state := NewState(&stubBackend{})
	next := &stubBackend{loadIDs: []string{"p7", "p8"}}

	if err := state.Rebind(context.Background(), next); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	if got := state.List(); len(got) != 2 || got[0] != "p7" {
		t.Fatalf("expected reloaded wishlist, got %+v", got)
	}
}

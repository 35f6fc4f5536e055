// Package session tracks the identity lifecycle of one storefront device and
// drives the correct store behind the cart/wishlist view state. A session
// starts Unknown, becomes Anonymous or Authenticated on the first identity
// observation, and may flip between the two at any time afterwards.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"mavazimarket/internal/guest"
	"mavazimarket/internal/remote"
	"mavazimarket/internal/service/cart"
	"mavazimarket/internal/service/merge"
	"mavazimarket/internal/service/wishlist"
)

type IdentityState int

const (
	Unknown IdentityState = iota
	Anonymous
	Authenticated
)

// Identity is one observation from the authentication provider.
type Identity struct {
	State  IdentityState
	UserID string
}

func AnonymousIdentity() Identity {
	return Identity{State: Anonymous}
}

func AuthenticatedIdentity(userID string) Identity {
	return Identity{State: Authenticated, UserID: userID}
}

type Deps struct {
	Guest  guest.Store
	Remote remote.Store
	Merger *merge.Coordinator
	Logger zerolog.Logger
}

type Session struct {
	mu       sync.Mutex
	deviceID string
	state    IdentityState
	userID   string
	cart     *cart.State
	wishlist *wishlist.State
	deps     Deps
}

func newSession(deviceID string, deps Deps) *Session {
	return &Session{
		deviceID: deviceID,
		state:    Unknown,
		cart:     cart.NewState(cart.NewGuestBackend(deps.Guest, deviceID)),
		wishlist: wishlist.NewState(wishlist.NewGuestBackend(deps.Guest, deviceID)),
		deps:     deps,
	}
}

// Observe applies one identity observation. Observing the identity the
// session already holds is a no-op; a transition into Authenticated merges
// guest state first and then reloads the view state from the remote store,
// a transition into Anonymous reloads from the guest store (which sign-out
// never deletes). The session state only advances once the whole transition
// has settled, so a failed merge or reload is retried by the next
// observation.
func (s *Session) Observe(ctx context.Context, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch id.State {
	case Authenticated:
		userID := strings.TrimSpace(id.UserID)
		if userID == "" {
			return fmt.Errorf("session: authenticated identity without user id")
		}
		if s.state == Authenticated && s.userID == userID {
			return nil
		}
		return s.signIn(ctx, userID)
	case Anonymous:
		if s.state == Anonymous {
			return nil
		}
		return s.signOut(ctx)
	default:
		return fmt.Errorf("session: cannot observe Unknown identity")
	}
}

func (s *Session) signIn(ctx context.Context, userID string) error {
	if err := s.deps.Merger.SignIn(ctx, s.deviceID, userID); err != nil {
		return err
	}
	if err := s.cart.Rebind(ctx, cart.NewRemoteBackend(s.deps.Remote, userID)); err != nil {
		return fmt.Errorf("reload cart: %w", err)
	}
	if err := s.wishlist.Rebind(ctx, wishlist.NewRemoteBackend(s.deps.Remote, userID)); err != nil {
		return fmt.Errorf("reload wishlist: %w", err)
	}
	s.state = Authenticated
	s.userID = userID
	s.deps.Logger.Info().Str("device", s.deviceID).Str("user", userID).Msg("session signed in")
	return nil
}

func (s *Session) signOut(ctx context.Context) error {
	if err := s.cart.Rebind(ctx, cart.NewGuestBackend(s.deps.Guest, s.deviceID)); err != nil {
		return fmt.Errorf("reload cart: %w", err)
	}
	if err := s.wishlist.Rebind(ctx, wishlist.NewGuestBackend(s.deps.Guest, s.deviceID)); err != nil {
		return fmt.Errorf("reload wishlist: %w", err)
	}
	s.state = Anonymous
	s.userID = ""
	s.deps.Logger.Info().Str("device", s.deviceID).Msg("session signed out")
	return nil
}

// Cart is the session's cart view state.
func (s *Session) Cart() *cart.State {
	return s.cart
}

// Wishlist is the session's wishlist view state.
func (s *Session) Wishlist() *wishlist.State {
	return s.wishlist
}

// UserID returns the authenticated user, if any.
func (s *Session) UserID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return "", false
	}
	return s.userID, true
}

// State reports the current identity state.
func (s *Session) State() IdentityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

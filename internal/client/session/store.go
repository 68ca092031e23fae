// Package session owns the client's session state: a single token cell
// mirrored into durable storage, with synchronous subscriber notification
// and a derived user view.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/mpetrashin/tokengate/internal/client/storage"
)

// tokenKey is the single storage slot the session occupies.
// Absence of the key means logged out.
const tokenKey = "token"

// Store is the observable holder of the current session token. It has two
// states: anonymous (empty token) and authenticated. Mutations persist to
// durable storage first and notify subscribers after, so an observer reading
// storage always sees state at least as new as the notification.
type Store struct {
	repo storage.Repository

	mu       sync.Mutex
	token    string
	nextID   int
	subs     map[int]func(token string)
	subOrder []int
}

// NewStore builds a Store over repo and initializes the cell from any
// previously persisted token. An expired token is accepted here; expiry is
// checked at derivation time (CurrentUser), not at load.
func NewStore(ctx context.Context, repo storage.Repository) (*Store, error) {
	s := &Store{repo: repo, subs: make(map[int]func(token string))}

	v, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("error restoring session: %w", err)
	}
	s.token = string(v)

	return s, nil
}

// Token returns the currently held token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Login persists token and transitions to authenticated. Subscribers are
// notified synchronously, after the durable write succeeds. A failed write
// leaves the previous state intact.
func (s *Store) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("error persisting token: %w", err)
	}
	s.token = token
	s.notifyLocked()
	return nil
}

// Logout clears durable storage and transitions to anonymous, then notifies.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("error clearing token: %w", err)
	}
	s.token = ""
	s.notifyLocked()
	return nil
}

// Subscribe registers fn for synchronous calls on every state change and
// returns an unsubscribe function. fn runs under the store lock and must
// not call back into the store's mutators.
func (s *Store) Subscribe(fn func(token string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subOrder = append(s.subOrder, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notifyLocked() {
	for _, id := range s.subOrder {
		if fn, ok := s.subs[id]; ok {
			fn(s.token)
		}
	}
}

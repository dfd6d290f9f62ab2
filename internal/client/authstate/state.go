// Package authstate holds the current session of the client process.
//
// A *State is created once and handed to every consumer that needs the
// signed-in user. Mutations go through Establish/Login and Logout; readers
// call Current. Subscribers are told about every change after it has been
// applied.
package authstate

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/signin/internal/client/models"
)

// ChangeKind tells what happened to the session.
type ChangeKind int

const (
	LoggedIn ChangeKind = iota + 1
	LoggedOut
)

// Change is delivered to subscribers after a mutation.
type Change struct {
	Kind ChangeKind
	// User is the new session for LoggedIn and the ended one for LoggedOut.
	User models.AuthenticatedUser
}

// PersistFunc performs durable writes that must succeed before the state
// changes.
type PersistFunc func(ctx context.Context) error

type State struct {
	mu      sync.RWMutex
	current *models.AuthenticatedUser

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Change)
}

func New() *State {
	return &State{subs: map[int]func(Change){}}
}

// Current returns the signed-in user. It blocks while a mutation is running,
// so a caller never sees the state ahead of or behind the durable store.
func (s *State) Current() (models.AuthenticatedUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.AuthenticatedUser{}, false
	}
	return *s.current, true
}

// Login makes u the current session.
func (s *State) Login(u models.AuthenticatedUser) error {
	return s.Establish(context.Background(), u, nil)
}

// Establish runs persist and, only if it succeeds, makes u the current
// session. Both steps happen under the write lock. A user without a token
// is rejected with models.ErrMissingToken before persist is called.
func (s *State) Establish(ctx context.Context, u models.AuthenticatedUser, persist PersistFunc) error {
	if err := u.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if persist != nil {
		if err := persist(ctx); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	cp := u
	s.current = &cp
	s.mu.Unlock()

	s.notify(Change{Kind: LoggedIn, User: u})
	return nil
}

// Logout runs wipe and, only if it succeeds, ends the current session.
// Logging out without a session still runs wipe but notifies nobody.
func (s *State) Logout(ctx context.Context, wipe PersistFunc) error {
	s.mu.Lock()
	if wipe != nil {
		if err := wipe(ctx); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		s.notify(Change{Kind: LoggedOut, User: *prev})
	}
	return nil
}

// Subscribe registers fn for every later change. Calling the returned
// function removes it. fn runs on the mutating goroutine and may call
// Current.
func (s *State) Subscribe(fn func(Change)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *State) notify(c Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

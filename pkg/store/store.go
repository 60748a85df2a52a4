// Package store is the single source of truth for in-session dashboard data.
// All mutation goes through named transition operations; views subscribe and
// receive a fresh snapshot after every transition. Login and logout are the
// only operations with an effect beyond the state itself: they persist or
// clear credentials through the credstore port.
package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/caterops/staffdesk/pkg/apiclient"
	"github.com/caterops/staffdesk/pkg/credstore"
)

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AuthStatus tracks where the login flow currently stands.
type AuthStatus string

const (
	AuthIdle          AuthStatus = "idle"
	AuthPending       AuthStatus = "pending"
	AuthAuthenticated AuthStatus = "authenticated"
	AuthFailed        AuthStatus = "failed"
)

// AuthState is the session slice of the store.
type AuthState struct {
	Status AuthStatus
	Token  string
	User   *apiclient.User
	Error  string
}

// IsAuthenticated reports whether a login has completed successfully.
func (a AuthState) IsAuthenticated() bool {
	return a.Status == AuthAuthenticated
}

// State is the full application state snapshot handed to subscribers.
type State struct {
	Boys     []apiclient.Boy
	Events   []apiclient.Event
	Bookings []apiclient.Booking
	Theme    Theme
	Auth     AuthState
}

// Store owns the State and serializes all transitions behind a mutex.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]func(State)
	nextSub int
	creds   credstore.Store
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store hydrated from the credential store, the way the
// dashboard restores its session from durable storage on startup.
func New(creds credstore.Store, opts ...Option) *Store {
	s := &Store{
		state:  State{Theme: ThemeLight, Auth: AuthState{Status: AuthIdle}},
		subs:   make(map[int]func(State)),
		creds:  creds,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if token, ok := creds.Token(); ok {
		s.state.Auth.Token = token
		s.state.Auth.Status = AuthAuthenticated
		if raw, ok := creds.User(); ok {
			var user apiclient.User
			if err := json.Unmarshal(raw, &user); err == nil {
				s.state.Auth.User = &user
			}
		}
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every transition. The
// returned function unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state. Slices are copied so callers
// cannot mutate the store through a snapshot.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// AddBoy appends a staff member with a freshly generated id and returns it.
func (s *Store) AddBoy(draft apiclient.Boy) apiclient.Boy {
	s.mu.Lock()
	draft.ID = uuid.NewString()
	s.state.Boys = append(s.state.Boys, draft)
	s.mu.Unlock()

	s.notify()
	return draft
}

// UpdateBoy replaces the staff member matching the record's id. It returns
// false, leaving state unchanged, when no such id exists.
func (s *Store) UpdateBoy(boy apiclient.Boy) bool {
	s.mu.Lock()
	found := false
	for i := range s.state.Boys {
		if s.state.Boys[i].ID == boy.ID {
			s.state.Boys[i] = boy
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
	return found
}

// DeleteBoy removes the staff member with the given id, reporting whether it
// was present.
func (s *Store) DeleteBoy(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.state.Boys {
		if s.state.Boys[i].ID == id {
			s.state.Boys = append(s.state.Boys[:i], s.state.Boys[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
	return found
}

// AddEvent appends an event with a freshly generated id and returns it.
func (s *Store) AddEvent(draft apiclient.Event) apiclient.Event {
	s.mu.Lock()
	draft.ID = uuid.NewString()
	s.state.Events = append(s.state.Events, draft)
	s.mu.Unlock()

	s.notify()
	return draft
}

// SetEvents replaces the event collection, e.g. after a remote list refresh.
func (s *Store) SetEvents(events []apiclient.Event) {
	s.mu.Lock()
	s.state.Events = append([]apiclient.Event(nil), events...)
	s.mu.Unlock()

	s.notify()
}

// UpdateBookingStatus sets the status of the booking with the given id,
// reporting whether it was present.
func (s *Store) UpdateBookingStatus(id, status string) bool {
	s.mu.Lock()
	found := false
	for i := range s.state.Bookings {
		if s.state.Bookings[i].ID == id {
			s.state.Bookings[i].Status = status
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
	return found
}

// ToggleTheme flips between light and dark and returns the new value.
// Calling it twice restores the original theme.
func (s *Store) ToggleTheme() Theme {
	s.mu.Lock()
	if s.state.Theme == ThemeDark {
		s.state.Theme = ThemeLight
	} else {
		s.state.Theme = ThemeDark
	}
	theme := s.state.Theme
	s.mu.Unlock()

	s.notify()
	return theme
}

// LoginStart marks the session as pending while credentials are verified.
func (s *Store) LoginStart() {
	s.mu.Lock()
	s.state.Auth = AuthState{Status: AuthPending}
	s.mu.Unlock()

	s.notify()
}

// LoginSuccess records the authenticated session and persists the token plus
// serialized user through the credential store.
func (s *Store) LoginSuccess(token string, user apiclient.User) {
	s.mu.Lock()
	s.state.Auth = AuthState{Status: AuthAuthenticated, Token: token, User: &user}
	s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err == nil {
		err = s.creds.Save(token, raw)
	}
	if err != nil {
		s.logger.Warn("Failed to persist credentials", slog.String("error", err.Error()))
	}

	s.notify()
}

// LoginFailure records the failure message; the session stays unauthenticated.
func (s *Store) LoginFailure(message string) {
	s.mu.Lock()
	s.state.Auth = AuthState{Status: AuthFailed, Error: message}
	s.mu.Unlock()

	s.notify()
}

// Logout clears the session and removes the persisted credentials.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state.Auth = AuthState{Status: AuthIdle}
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("Failed to clear credentials", slog.String("error", err.Error()))
	}

	s.notify()
}

// notify hands a fresh snapshot to every subscriber.
func (s *Store) notify() {
	s.mu.RLock()
	snapshot := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (st State) clone() State {
	out := st
	out.Boys = append([]apiclient.Boy(nil), st.Boys...)
	out.Events = append([]apiclient.Event(nil), st.Events...)
	out.Bookings = append([]apiclient.Booking(nil), st.Bookings...)
	if st.Auth.User != nil {
		user := *st.Auth.User
		out.Auth.User = &user
	}
	return out
}

// ABOUTME: Session store owning the auth token and user profile
// ABOUTME: Persists both to the local key-value store and broadcasts auth changes

package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"barangay-app-client/core/domain"
	"barangay-app-client/core/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey = "auth_token"
	userKey  = "current_user"
)

// ErrNoProfileSource is returned by RefreshProfile before a source is bound.
var ErrNoProfileSource = errors.New("session: no profile source bound")

// ProfileSource fetches the authoritative profile from the server.
// The request gateway implements this.
type ProfileSource interface {
	FetchProfile(ctx context.Context) (*domain.Profile, error)
}

// Store holds the current token and user profile. Token and profile are set
// and cleared together; all mutation goes through SaveAuth or UpdateProfile.
type Store struct {
	store  interfaces.KeyValueStore
	logger interfaces.Logger
	hub    *signalHub

	profiles ProfileSource

	mu    sync.RWMutex
	token string
	user  *domain.Profile
}

// NewStore creates a session store and restores any persisted token/profile
// from the key-value store. No network call is made here; a stale profile is
// tolerated until the next explicit refresh.
func NewStore(deps interfaces.Dependencies) *Store {
	s := &Store{
		store:  deps.Store,
		logger: deps.Logger,
		hub:    newSignalHub(),
	}
	s.restore(context.Background())
	return s
}

// BindProfileSource wires the gateway used by RefreshProfile. Done after
// construction because the gateway in turn reads its token from this store.
func (s *Store) BindProfileSource(src ProfileSource) {
	s.profiles = src
}

func (s *Store) restore(ctx context.Context) {
	if tok, err := s.store.Get(ctx, tokenKey); err == nil {
		s.token = string(tok)
	}
	if raw, err := s.store.Get(ctx, userKey); err == nil {
		var user domain.Profile
		if err := json.Unmarshal(raw, &user); err != nil {
			s.logger.Warn("Discarding unreadable persisted profile", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			s.user = &user
		}
	}
}

// SaveAuth sets the in-memory token and profile, persists both entries (or
// removes both when either argument is empty), then emits exactly one
// auth-change signal. The signal fires strictly after persistence completes.
func (s *Store) SaveAuth(ctx context.Context, token string, user *domain.Profile) {
	s.mu.Lock()
	if token == "" || user == nil {
		s.token = ""
		s.user = nil
	} else {
		s.token = token
		// Copy so later caller mutation cannot bypass the store.
		u := *user
		s.user = &u
	}
	token, user = s.token, s.user
	s.mu.Unlock()

	s.persist(ctx, token, user)
	s.hub.emit()
}

// Logout clears the session. Equivalent to SaveAuth with empty arguments.
func (s *Store) Logout(ctx context.Context) {
	s.SaveAuth(ctx, "", nil)
}

func (s *Store) persist(ctx context.Context, token string, user *domain.Profile) {
	if token == "" {
		s.removeKey(ctx, tokenKey)
	} else if err := s.store.Set(ctx, tokenKey, []byte(token)); err != nil {
		s.logger.Error("Failed to persist auth token", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if user == nil {
		s.removeKey(ctx, userKey)
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("Failed to marshal profile", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.store.Set(ctx, userKey, raw); err != nil {
		s.logger.Error("Failed to persist profile", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Store) removeKey(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to remove persisted entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// IsLoggedIn reports whether a token is currently held.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin reports whether the current profile has admin privileges.
// Always false when no profile is held, never an error.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

// CurrentUser returns a copy of the in-memory profile, or nil.
func (s *Store) CurrentUser() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when logged out.
// The request gateway uses this as its token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpired inspects the bearer token's exp claim without verifying the
// signature. Opaque or claim-less tokens report false; expiry enforcement
// belongs to the server, this is only an early hint for the UI.
func (s *Store) TokenExpired() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Subscribe registers an auth-change listener. The returned channel carries a
// unit value meaning "re-read session state now"; the latest signal is
// replayed to listeners that subscribe late. The cancel func unregisters.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	return s.hub.subscribe()
}

// RefreshProfile fetches the authoritative profile via the gateway. It does
// not touch the session itself: callers merge the result with UpdateProfile.
// A profile refresh is a correction, not an auth transition.
func (s *Store) RefreshProfile(ctx context.Context) (*domain.Profile, error) {
	if s.profiles == nil {
		return nil, ErrNoProfileSource
	}
	return s.profiles.FetchProfile(ctx)
}

// UpdateProfile replaces the session's identity fields with the refreshed
// values, without disturbing the token and without emitting an auth-change
// signal. The server's response is authoritative: every field is overwritten,
// stale values are never kept. No-op when logged out or given nil.
func (s *Store) UpdateProfile(ctx context.Context, p *domain.Profile) {
	if p == nil {
		return
	}

	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user.IsAdmin = p.IsAdmin
	s.user.UserID = p.UserID
	s.user.Email = p.Email
	s.user.FullName = p.FullName
	user := *s.user
	s.mu.Unlock()

	raw, err := json.Marshal(&user)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, userKey, raw); err != nil {
		s.logger.Warn("Failed to persist refreshed profile", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

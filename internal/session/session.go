// Package session owns the two pieces of persisted client state: the bearer
// token and the cached user record (the fixed "token"/"user" keys). The
// token prefers the OS keychain and falls back to the local KV store when
// no keychain is available (headless boxes, CI). Login and logout publish
// auth_changed events so the UI reacts to an explicit signal instead of
// polling storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/store"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	mu  sync.RWMutex
	kv  KV
	hub *events.Hub

	// in-memory snapshot; storage is only touched on login/logout/startup
	token string
	user  *domain.User

	// once the keychain proves unusable (no dbus, locked), stop calling
	// it for the rest of the process and use the KV fallback directly
	keychainOK bool
}

func NewStore(kv KV, hub *events.Hub) *Store {
	return &Store{kv: kv, hub: hub, keychainOK: true}
}

// Restore loads any persisted session at startup. A missing session is not
// an error; a corrupt user record clears the session rather than limping on.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := keyringGetToken()
	if err != nil {
		if keychainUnavailable(err) {
			s.keychainOK = false
		}
		tok, err = s.kv.Get(ctx, keyToken)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("restore token: %w", err)
		}
	}

	raw, err := s.kv.Get(ctx, keyUser)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.Role == "" {
		log.Printf("level=warn msg=\"discarding corrupt session record\"")
		_ = s.kv.Delete(ctx, keyUser)
		return nil
	}

	s.token = tok
	s.user = &u
	return nil
}

// Login persists the session and notifies subscribers.
func (s *Store) Login(ctx context.Context, token string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := false
	if s.keychainOK {
		if err := keyringSetToken(token); err != nil {
			s.keychainOK = false
		} else {
			stored = true
			// don't leave a stale plaintext copy behind
			_ = s.kv.Delete(ctx, keyToken)
		}
	}
	if !stored {
		if err := s.kv.Set(ctx, keyToken, token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(ctx, keyUser, string(raw)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	s.token = token
	u := user
	s.user = &u

	s.publishAuth()
	return nil
}

// Logout forgets the session everywhere and notifies subscribers. Partial
// cleanup failures are logged, not returned: the in-memory session is gone
// either way and the UI must reflect that.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keychainOK {
		if err := keyringDeleteToken(); err != nil {
			log.Printf("level=warn msg=\"keychain delete failed\" err=%v", err)
		}
	}
	if err := s.kv.Delete(ctx, keyToken); err != nil {
		log.Printf("level=warn msg=\"token delete failed\" err=%v", err)
	}
	if err := s.kv.Delete(ctx, keyUser); err != nil {
		log.Printf("level=warn msg=\"user delete failed\" err=%v", err)
	}

	s.token = ""
	s.user = nil

	s.publishAuth()
}

func (s *Store) publishAuth() {
	if s.hub == nil {
		return
	}
	payload := map[string]any{"logged_in": s.user != nil}
	if s.user != nil {
		payload["role"] = s.user.Role
		payload["user_id"] = s.user.ID
	}
	s.hub.Publish(events.Make("", events.TypeAuthChanged, payload))
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached user record, if logged in.
func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/store"
)

func testStore(t *testing.T, hub *events.Hub) (*Store, *store.DB) {
	t.Helper()
	keyring.MockInit() // in-memory keychain, no OS service needed

	db, err := store.Open(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db, hub), db
}

func TestLoginPersistsAndRestores(t *testing.T) {
	s, db := testStore(t, nil)
	ctx := context.Background()

	u := domain.User{ID: "7", Role: domain.RoleSeeker, Name: "Ani"}
	require.NoError(t, s.Login(ctx, "tok-1", u))

	assert.Equal(t, "tok-1", s.Token())
	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, u, got)

	// a fresh store over the same storage sees the same session
	s2 := NewStore(db, nil)
	require.NoError(t, s2.Restore(ctx))
	assert.Equal(t, "tok-1", s2.Token())
	got, ok = s2.User()
	require.True(t, ok)
	assert.Equal(t, domain.RoleSeeker, got.Role)
}

func TestLogoutClearsEverything(t *testing.T) {
	s, db := testStore(t, nil)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "tok-1", domain.User{ID: "7", Role: domain.RoleSeeker}))
	s.Logout(ctx)

	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
	assert.Empty(t, s.Role())

	// nothing left behind to restore
	s2 := NewStore(db, nil)
	require.NoError(t, s2.Restore(ctx))
	assert.Empty(t, s2.Token())
}

func TestAuthChangesArePublished(t *testing.T) {
	hub := events.NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	s, _ := testStore(t, hub)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "tok-1", domain.User{ID: "7", Role: domain.RoleCompany}))
	s.Logout(ctx)

	var got []events.Event
	timeout := time.After(time.Second)
	for len(got) < 2 {
		select {
		case raw := <-ch:
			var e events.Event
			require.NoError(t, json.Unmarshal([]byte(raw), &e))
			got = append(got, e)
		case <-timeout:
			t.Fatal("expected two auth_changed events")
		}
	}

	assert.Equal(t, events.TypeAuthChanged, got[0].Type)
	assert.Equal(t, events.TypeAuthChanged, got[1].Type)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(got[0].Data, &first))
	require.NoError(t, json.Unmarshal(got[1].Data, &second))
	assert.Equal(t, true, first["logged_in"])
	assert.Equal(t, "company", first["role"])
	assert.Equal(t, false, second["logged_in"])
}

func TestLoginFallsBackWhenKeychainUnavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("no keychain service"))
	db, err := store.Open(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStore(db, nil)
	ctx := context.Background()
	require.NoError(t, s.Restore(ctx))
	require.NoError(t, s.Login(ctx, "tok-kv", domain.User{ID: "7", Role: domain.RoleSeeker}))

	// token landed in the KV fallback
	got, err := db.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-kv", got)

	// and restores from it on the next start
	s2 := NewStore(db, nil)
	require.NoError(t, s2.Restore(ctx))
	assert.Equal(t, "tok-kv", s2.Token())
}

func TestEmptyKeychainIsNotUnavailable(t *testing.T) {
	s, db := testStore(t, nil)
	ctx := context.Background()

	// no stored token yet; the keychain itself works fine
	require.NoError(t, s.Restore(ctx))
	require.NoError(t, s.Login(ctx, "tok-1", domain.User{ID: "7", Role: domain.RoleSeeker}))

	// the token must go to the keychain, never the plaintext kv fallback
	_, err := db.Get(ctx, "token")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRestoreDiscardsCorruptUserRecord(t *testing.T) {
	s, db := testStore(t, nil)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "tok-1", domain.User{ID: "7", Role: domain.RoleSeeker}))
	require.NoError(t, db.Set(ctx, "user", "{not json"))

	s2 := NewStore(db, nil)
	require.NoError(t, s2.Restore(ctx))
	_, ok := s2.User()
	assert.False(t, ok, "a corrupt record clears the session instead of limping on")
}

func TestRestoreWithNoSession(t *testing.T) {
	s, _ := testStore(t, nil)
	require.NoError(t, s.Restore(context.Background()))
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adi-cmrec/lenslink/internal/api"
)

func testUser() api.User {
	return api.User{
		ID:    "665f1c2e9b3a",
		Name:  "Ava",
		Email: "ava@x.com",
		Role:  "photographer",
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "state", "session.json"))
	require.NoError(t, err)
	return store
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "session.json")

	_, err := NewStore(path)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_StartsUnauthenticated(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Equal(t, api.User{}, store.CurrentUser())
}

func TestStore_Login(t *testing.T) {
	store := newTestStore(t)
	user := testUser()

	require.NoError(t, store.Login("tok-123", user))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-123", store.Token())
	assert.Equal(t, user, store.CurrentUser())

	// Persisted synchronously before Login returned.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var persisted Session
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "tok-123", persisted.Token)
	assert.Equal(t, user, persisted.User)
}

func TestStore_Restore_ReproducesSession(t *testing.T) {
	store := newTestStore(t)
	user := testUser()
	require.NoError(t, store.Login("tok-123", user))

	// Simulate a restart: a fresh store on the same path.
	restarted, err := NewStore(store.Path())
	require.NoError(t, err)
	require.NoError(t, restarted.Restore())

	assert.True(t, restarted.IsAuthenticated())
	assert.Equal(t, "tok-123", restarted.Token())
	assert.Equal(t, user, restarted.CurrentUser())
}

func TestStore_Restore_MissingFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Restore())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Restore_MalformedFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	require.NoError(t, store.Restore())
	assert.False(t, store.IsAuthenticated(), "malformed state must read as no session")
}

func TestStore_Restore_PartialState(t *testing.T) {
	// A token without a user (or vice versa) violates the set-together
	// invariant and must be discarded.
	cases := map[string]string{
		"token only": `{"token": "tok-123"}`,
		"user only":  `{"user": {"id": "u1", "name": "A", "email": "a@x.com"}}`,
		"empty":      `{}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

			require.NoError(t, store.Restore())
			assert.False(t, store.IsAuthenticated())
			assert.Empty(t, store.Token())
		})
	}
}

func TestStore_Logout_ClearsMemoryAndStorage(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Login("tok-123", testUser()))

	require.NoError(t, store.Logout())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Equal(t, api.User{}, store.CurrentUser())

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "session file must be erased")
}

func TestStore_Logout_WhenNotLoggedIn(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Logout())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Login_OverwritesPriorSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Login("tok-old", testUser()))

	other := api.User{ID: "u2", Name: "Ben", Email: "ben@x.com", Role: "photographer"}
	require.NoError(t, store.Login("tok-new", other))

	restarted, err := NewStore(store.Path())
	require.NoError(t, err)
	require.NoError(t, restarted.Restore())

	assert.Equal(t, "tok-new", restarted.Token())
	assert.Equal(t, other, restarted.CurrentUser())
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Login("tok-123", testUser()))

	_, err := os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	_, ok := store.Token()
	assert.False(t, ok)

	require.NoError(t, store.Save("tok-1", []byte(`{"id":"u1"}`)))

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	user, ok := store.User()
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"u1"}`, string(user))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save("tok-1", nil))
	require.NoError(t, store.Clear())

	_, ok := store.Token()
	assert.False(t, ok)

	// Clearing an already-empty store is fine.
	require.NoError(t, store.Clear())
}

func TestFileStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save("tok-1", nil))

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save("tok-2", []byte(`{"id":"u2"}`)))
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok)
	_, ok = store.User()
	assert.False(t, ok)
}

package tokens_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MbolafyDev/go-backoffice/tokens"
)

func newFileStore(t *testing.T) (*tokens.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tokens.json")
	return tokens.NewFileStore(path), path
}

func TestFileStoreMissingFileReadsAsEmpty(t *testing.T) {
	store, _ := newFileStore(t)
	require.Empty(t, store.Access())
	require.Empty(t, store.Refresh())
}

func TestFileStoreRoundTripsThePair(t *testing.T) {
	store, path := newFileStore(t)

	require.NoError(t, store.SetPair("acc-1", "ref-1"))
	require.Equal(t, "acc-1", store.Access())
	require.Equal(t, "ref-1", store.Refresh())

	// A fresh store over the same file sees the persisted pair.
	reopened := tokens.NewFileStore(path)
	require.Equal(t, "acc-1", reopened.Access())
	require.Equal(t, "ref-1", reopened.Refresh())
}

func TestFileStoreSetAccessKeepsRefreshToken(t *testing.T) {
	store, _ := newFileStore(t)
	require.NoError(t, store.SetPair("acc-1", "ref-1"))

	require.NoError(t, store.SetAccess("acc-2"))
	require.Equal(t, "acc-2", store.Access())
	require.Equal(t, "ref-1", store.Refresh())
}

func TestFileStoreClearRemovesTheFile(t *testing.T) {
	store, path := newFileStore(t)
	require.NoError(t, store.SetPair("acc-1", "ref-1"))

	require.NoError(t, store.Clear())
	require.Empty(t, store.Access())
	require.Empty(t, store.Refresh())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear())
}

func TestFileStoreCorruptFileReadsAsEmpty(t *testing.T) {
	store, path := newFileStore(t)
	require.NoError(t, store.SetPair("acc-1", "ref-1"))
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	require.Empty(t, store.Access())
	require.Empty(t, store.Refresh())

	// The store recovers on the next write.
	require.NoError(t, store.SetPair("acc-2", "ref-2"))
	require.Equal(t, "acc-2", store.Access())
}

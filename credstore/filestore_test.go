package credstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/complyatlas/console/credstore"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetRemove(t *testing.T) {
	store, err := credstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get(credstore.KeyPrimaryToken)
	require.False(t, ok)

	store.Set(credstore.KeyPrimaryToken, "token-1")
	value, ok := store.Get(credstore.KeyPrimaryToken)
	require.True(t, ok)
	require.Equal(t, "token-1", value)

	store.Set(credstore.KeyPrimaryToken, "token-2")
	value, _ = store.Get(credstore.KeyPrimaryToken)
	require.Equal(t, "token-2", value)

	store.Remove(credstore.KeyPrimaryToken)
	_, ok = store.Get(credstore.KeyPrimaryToken)
	require.False(t, ok)
}

func TestFileStore_SurvivesReload(t *testing.T) {
	folder := t.TempDir()

	first, err := credstore.NewFileStore(folder)
	require.NoError(t, err)
	first.Set(credstore.KeyPrimaryToken, "token-1")
	first.Set(credstore.KeyUserEmail, "a@b.com")
	first.Set(credstore.KeyJiraConnected, "true")
	first.Remove(credstore.KeyJiraConnected)

	// A second store over the same folder sees what the first one wrote.
	second, err := credstore.NewFileStore(folder)
	require.NoError(t, err)

	token, ok := second.Get(credstore.KeyPrimaryToken)
	require.True(t, ok)
	require.Equal(t, "token-1", token)

	email, ok := second.Get(credstore.KeyUserEmail)
	require.True(t, ok)
	require.Equal(t, "a@b.com", email)

	_, ok = second.Get(credstore.KeyJiraConnected)
	require.False(t, ok, "removed keys must not reappear after reload")
}

func TestFileStore_CreatesDataFolder(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "nested", "data")

	store, err := credstore.NewFileStore(folder)
	require.NoError(t, err)
	store.Set(credstore.KeyUserEmail, "a@b.com")

	_, err = os.Stat(filepath.Join(folder, "credentials.json"))
	require.NoError(t, err)
}

func TestFileStore_RejectsCorruptFile(t *testing.T) {
	folder := t.TempDir()
	err := os.WriteFile(filepath.Join(folder, "credentials.json"), []byte("not json"), 0o600)
	require.NoError(t, err)

	_, err = credstore.NewFileStore(folder)
	require.Error(t, err)
}

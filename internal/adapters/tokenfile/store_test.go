package tokenfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduportal/eduportal-mobile/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "token"))
	require.NoError(t, err)
	return store
}

func TestNewStore_RequiresPath(t *testing.T) {
	_, err := NewStore("  ")
	assert.Error(t, err)
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Overwrite replaces, not appends.
	require.NoError(t, store.Save(ctx, "tok-2"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_LoadWhitespaceOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.Save(context.Background(), ""))
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "tok-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_CanceledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, "tok-1"), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Clear(ctx), context.Canceled)
}

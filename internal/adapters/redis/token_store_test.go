package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduportal/eduportal-mobile/internal/ports"
	"github.com/eduportal/eduportal-mobile/internal/testutil"
)

func newTestStore(t *testing.T, ttl time.Duration) *TokenStore {
	t.Helper()

	client := testutil.SetupTestRedis(t)
	key := fmt.Sprintf("eduportal:test:token:%s", uuid.NewString())
	t.Cleanup(func() {
		_ = client.Del(context.Background(), key).Err()
	})

	store, err := NewTokenStore(client, key, ttl)
	require.NoError(t, err)
	return store
}

func TestNewTokenStore_RequiresClient(t *testing.T) {
	_, err := NewTokenStore(nil, "k", 0)
	assert.Error(t, err)
}

func TestTokenStore_SaveThenLoad(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestTokenStore_LoadMissing(t *testing.T) {
	store := newTestStore(t, 0)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestTokenStore_SaveRejectsEmptyToken(t *testing.T) {
	store := newTestStore(t, 0)
	assert.Error(t, store.Save(context.Background(), ""))
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestTokenStore_TTLExpiry(t *testing.T) {
	store := newTestStore(t, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1"))
	time.Sleep(150 * time.Millisecond)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

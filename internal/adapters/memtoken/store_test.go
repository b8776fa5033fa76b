package memtoken

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduportal/eduportal-mobile/internal/ports"
)

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)

	require.NoError(t, store.Save(ctx, "tok-1"))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_SavingEmptyClears(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1"))
	require.NoError(t, store.Save(ctx, ""))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

package infra

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodeStore(t *testing.T) (*CodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCodeStore(rdb), mr
}

func TestCodeStoreVerifyConsumesCode(t *testing.T) {
	store, _ := newTestCodeStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cajero@sfac.hn", "483921"))

	ok, err := store.Verify(ctx, "cajero@sfac.hn", "483921")
	require.NoError(t, err)
	assert.True(t, ok)

	// Second use of the same code must fail.
	ok, err = store.Verify(ctx, "cajero@sfac.hn", "483921")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodeStoreWrongCode(t *testing.T) {
	store, _ := newTestCodeStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cajero@sfac.hn", "483921"))

	ok, err := store.Verify(ctx, "cajero@sfac.hn", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	// A failed attempt does not consume the stored code.
	ok, err = store.Verify(ctx, "cajero@sfac.hn", "483921")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCodeStoreExpiry(t *testing.T) {
	store, mr := newTestCodeStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cajero@sfac.hn", "112233"))

	mr.FastForward(codeTTL + time.Second)

	ok, err := store.Verify(ctx, "cajero@sfac.hn", "112233")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodeStoreSaveOverwrites(t *testing.T) {
	store, _ := newTestCodeStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cajero@sfac.hn", "111111"))
	require.NoError(t, store.Save(ctx, "cajero@sfac.hn", "222222"))

	ok, err := store.Verify(ctx, "cajero@sfac.hn", "111111")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Verify(ctx, "cajero@sfac.hn", "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}

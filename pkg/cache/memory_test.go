package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	err := store.Set(ctx, "gw2:items:lang=en:id=15", []byte(`{"id":15}`), time.Minute)
	require.NoError(t, err)

	data, err := store.Get(ctx, "gw2:items:lang=en:id=15")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":15}`), data)
}

func TestMemoryStore_Miss(t *testing.T) {
	store := NewMemoryStore(10)

	_, err := store.Get(context.Background(), "gw2:items:lang=en:id=404")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 10*time.Millisecond))

	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Equal(t, 0, store.Len(), "expired entry should be removed on access")
}

func TestMemoryStore_ZeroTTLNotStored(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	require.NoError(t, store.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, store.Set(ctx, "k", []byte("new"), time.Minute))

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_LRUEviction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3)

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Minute))
	}

	// Touch k1 so k2 becomes the least recently used.
	_, err := store.Get(ctx, "k1")
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "k4", []byte("v"), time.Minute))

	_, err = store.Get(ctx, "k2")
	assert.ErrorIs(t, err, ErrMiss, "k2 should have been evicted")

	for _, k := range []string{"k1", "k3", "k4"} {
		_, err := store.Get(ctx, k)
		assert.NoError(t, err, "%s should still be cached", k)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestMemoryStore_Unbounded(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	for i := 0; i < 100; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Minute))
	}
	assert.Equal(t, 100, store.Len())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(50)

	done := make(chan struct{})
	for w := 0; w < 8; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%30)
				_ = store.Set(ctx, key, []byte("v"), time.Minute)
				_, _ = store.Get(ctx, key)
			}
		}(w)
	}
	for w := 0; w < 8; w++ {
		<-done
	}
}

package readingcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
	"github.com/yanqian/cosmic-blueprint/pkg/metrics"
)

func sampleReading() reading.Response {
	snapshot := "Steady water, restless fire."
	return reading.Response{
		ID:        "7b0b5a8e-3f7d-4e59-8d0c-9d1f3c0b2a11",
		Profile:   reading.Profile{Age: 34},
		Narrative: reading.Narrative{CosmicSnapshot: &snapshot, CosmicToolkit: []string{"Write it down."}},
		TokenUsage: &metrics.TokenUsage{
			PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15,
		},
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(2, time.Hour)

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	want := sampleReading()
	require.NoError(t, cache.Set(ctx, "a", want))
	got, ok, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.NoError(t, cache.Set(ctx, "b", want))
	require.NoError(t, cache.Set(ctx, "c", want))
	require.Equal(t, 2, cache.Len())
	_, ok, _ = cache.Get(ctx, "a")
	require.False(t, ok, "least recently used entry should be evicted")
}

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(4, 20*time.Millisecond)

	require.NoError(t, cache.Set(ctx, "a", sampleReading()))
	require.Eventually(t, func() bool {
		_, ok, _ := cache.Get(ctx, "a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func newValkeyClient(t *testing.T) (*miniredis.Miniredis, valkey.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
		AlwaysRESP2:  true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return mr, client
}

func TestValkeyCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newValkeyClient(t)
	cache := NewValkeyCache(client, "cb", time.Hour)

	_, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok)

	want := sampleReading()
	require.NoError(t, cache.Set(ctx, "k1", want))
	require.True(t, mr.Exists("cb:r:k1"))
	require.Equal(t, time.Hour, mr.TTL("cb:r:k1"))

	got, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestValkeyCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newValkeyClient(t)
	cache := NewValkeyCache(client, "", 10*time.Millisecond)

	require.NoError(t, cache.Set(ctx, "k1", sampleReading()))
	require.Equal(t, time.Second, mr.TTL("reading:r:k1"))

	mr.FastForward(2 * time.Second)
	_, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValkeyCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr, client := newValkeyClient(t)
	cache := NewValkeyCache(client, "cb", 0)

	require.NoError(t, mr.Set("cb:r:bad", "{not json"))
	_, ok, err := cache.Get(ctx, "bad")
	require.Error(t, err)
	require.False(t, ok)
}

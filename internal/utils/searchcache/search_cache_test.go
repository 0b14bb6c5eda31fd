package searchcache_test

import (
	"RecipeHub/domain"
	"RecipeHub/internal/utils/searchcache"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreAndGet(t *testing.T) {
	cache := searchcache.New(time.Minute)
	previews := []domain.RecipePreview{{ID: 1, Title: "Soup"}}

	cache.Store("session-a", previews)

	got, ok := cache.Get("session-a")
	require.True(t, ok)
	require.Equal(t, previews, got)

	_, ok = cache.Get("session-b")
	require.False(t, ok)
}

func TestStoreReplacesPreviousSearch(t *testing.T) {
	cache := searchcache.New(time.Minute)

	cache.Store("session-a", []domain.RecipePreview{{ID: 1}})
	cache.Store("session-a", []domain.RecipePreview{{ID: 2}})

	got, ok := cache.Get("session-a")
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, 2, got[0].ID)
}

func TestExpiry(t *testing.T) {
	cache := searchcache.New(10 * time.Millisecond)

	cache.Store("session-a", []domain.RecipePreview{{ID: 1}})
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("session-a")
	require.False(t, ok)

	// A write evicts other expired entries too.
	cache.Store("session-b", []domain.RecipePreview{{ID: 2}})
	_, ok = cache.Get("session-b")
	require.True(t, ok)
}

// ABOUTME: Tests for the daily news-article cache
// ABOUTME: Covers same-day hits, stale eviction, and unreadable payloads

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedArticle_SameDayHit(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	setClock(s, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, s.SaveCachedArticle(ctx, "today's roundup", []Source{
		{Title: "Creator Blog", URL: "https://example.com/post"},
	}))

	cached, err := s.CachedArticle(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "today's roundup", cached.Article)
	assert.Equal(t, "2026-03-01", cached.Date)
	require.Len(t, cached.Sources, 1)
}

func TestCachedArticle_StaleEvicted(t *testing.T) {
	s, medium := setupTestStore(t)
	ctx := context.Background()

	setClock(s, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, s.SaveCachedArticle(ctx, "yesterday's roundup", nil))

	setClock(s, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	cached, err := s.CachedArticle(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)

	// The stale slot was discarded
	_, ok, err := medium.Get(ctx, newsCacheKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachedArticle_UnreadablePayload(t *testing.T) {
	s, medium := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, medium.Set(ctx, newsCacheKey, "corrupted"))

	cached, err := s.CachedArticle(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestCachedArticle_Absent(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	cached, err := s.CachedArticle(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

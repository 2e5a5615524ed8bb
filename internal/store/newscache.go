// ABOUTME: Daily cache for the algorithm-news article in its own KV slot
// ABOUTME: A cached article is valid only for the calendar day it was fetched

package store

import (
	"context"
	"encoding/json"
	"fmt"
)

const newsCacheKey = "instagram_algorithm_news"

// Source is a citation attached to a cached article.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CachedArticle is the once-per-day news payload.
type CachedArticle struct {
	Date    string   `json:"date"` // calendar day the article was fetched
	Article string   `json:"article"`
	Sources []Source `json:"sources"`
}

// CachedArticle returns today's cached article, or nil when the cache is
// absent, stale, or unreadable. Stale and unreadable payloads are
// discarded.
func (s *Store) CachedArticle(ctx context.Context) (*CachedArticle, error) {
	raw, ok, err := s.kv.Get(ctx, newsCacheKey)
	if err != nil {
		return nil, fmt.Errorf("reading news cache: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var cached CachedArticle
	if err := json.Unmarshal([]byte(raw), &cached); err != nil || cached.Date != s.today() {
		if derr := s.kv.Delete(ctx, newsCacheKey); derr != nil {
			s.logger.Error("discarding stale news cache", "error", derr)
		}
		return nil, nil
	}
	return &cached, nil
}

// SaveCachedArticle caches an article for the current calendar day.
func (s *Store) SaveCachedArticle(ctx context.Context, article string, sources []Source) error {
	if sources == nil {
		sources = []Source{}
	}
	cached := CachedArticle{
		Date:    s.today(),
		Article: article,
		Sources: sources,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("serializing news cache: %w", err)
	}
	if err := s.kv.Set(ctx, newsCacheKey, string(data)); err != nil {
		return fmt.Errorf("writing news cache: %w", err)
	}
	return nil
}

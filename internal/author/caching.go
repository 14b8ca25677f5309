/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package author

import (
	"context"
	"encoding/json"
	"time"

	"github.com/orien/spektate/internal/cache"
	"github.com/orien/spektate/internal/repository"
	"go.uber.org/zap"
)

// CachingFetcher wraps a Fetcher, remembering found authors for a fixed TTL.
// Unknown authors are not cached. Cache failures fall through to the wrapped Fetcher.
type CachingFetcher struct {
	inner  Fetcher
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingFetcher creates a caching Fetcher over inner
func NewCachingFetcher(inner Fetcher, store cache.Store, ttl time.Duration, logger *zap.Logger) *CachingFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingFetcher{
		inner:  inner,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchAuthor returns the cached author for (ref, commit) or fetches and caches it
func (f *CachingFetcher) FetchAuthor(ctx context.Context, ref repository.Reference, commit, accessToken string) (*Author, error) {
	key := cacheKey(ref, commit)

	data, ok, err := f.store.Get(ctx, key)
	switch {
	case err != nil:
		f.logger.Warn("author cache read failed", zap.String("key", key), zap.Error(err))
	case ok:
		var cached Author
		if err := json.Unmarshal(data, &cached); err == nil {
			f.logger.Debug("author cache hit", zap.String("key", key))
			return &cached, nil
		}
		f.logger.Warn("discarding undecodable cached author", zap.String("key", key))
	}

	author, err := f.inner.FetchAuthor(ctx, ref, commit, accessToken)
	if err != nil || author == nil {
		return author, err
	}

	encoded, err := json.Marshal(author)
	if err != nil {
		return author, nil
	}
	if err := f.store.Set(ctx, key, encoded, f.ttl); err != nil {
		f.logger.Warn("author cache write failed", zap.String("key", key), zap.Error(err))
	}

	return author, nil
}

func cacheKey(ref repository.Reference, commit string) string {
	return "author:" + ref.Key() + "@" + commit
}

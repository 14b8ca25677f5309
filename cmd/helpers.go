/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"

	"github.com/orien/spektate/internal/author"
	"github.com/orien/spektate/internal/cache"
	"github.com/orien/spektate/internal/config"
	"github.com/orien/spektate/internal/gitsource"
	"github.com/orien/spektate/internal/logging"
	"github.com/orien/spektate/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configSource can be injected for testing
	configSource config.Source

	// authorResolver can be injected for testing
	authorResolver author.Resolver

	// authorFetcher replaces the git-backed fetcher when injected (for testing)
	authorFetcher author.Fetcher

	// cacheStore replaces the Redis or memory author cache when injected (for testing)
	cacheStore cache.Store

	// logger can be injected for testing
	logger *zap.Logger
)

// SetConfigSource allows injection of a configuration source (for testing)
func SetConfigSource(src config.Source) {
	configSource = src
}

// SetAuthorResolver allows injection of an author resolver (for testing)
func SetAuthorResolver(r author.Resolver) {
	authorResolver = r
}

// SetAuthorFetcher allows injection of the fetcher behind the default resolver (for testing)
func SetAuthorFetcher(f author.Fetcher) {
	authorFetcher = f
}

// SetCacheStore allows injection of the author cache store (for testing)
func SetCacheStore(store cache.Store) {
	cacheStore = store
}

// SetLogger allows injection of a logger (for testing)
func SetLogger(l *zap.Logger) {
	logger = l
}

// commandContext returns the command's context, or a background context when unset
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getConfigSource returns the injected source or reads the environment and --env-file
func getConfigSource(cmd *cobra.Command) (config.Source, error) {
	if configSource != nil {
		return configSource, nil
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	return config.NewEnvSource(envFile)
}

// getLogger returns the injected logger or builds one from --verbose and --log-format
func getLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if logger != nil {
		return logger, nil
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")
	return logging.New(verbose, format)
}

// getAuthorResolver returns the injected resolver or wires the git-backed one.
// The returned function releases the author cache.
func getAuthorResolver(ctx context.Context, src config.Source, log *zap.Logger, noCache bool) (author.Resolver, func()) {
	if authorResolver != nil {
		return authorResolver, func() {}
	}

	provider := config.NewCachedProvider(config.NewEnvProvider(src), src)

	var fetcher author.Fetcher = gitsource.NewFetcher(gitsource.WithLogger(log))
	if authorFetcher != nil {
		fetcher = authorFetcher
	}

	cleanup := func() {}
	if !noCache {
		store := newCacheStore(ctx, src, log)
		fetcher = author.NewCachingFetcher(fetcher, store, provider.Interval(), log)
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.Warn("failed to close author cache", zap.Error(err))
			}
		}
	}

	resolver := author.NewDeploymentAuthorResolver(provider, fetcher, repository.URLParser{}, log)
	return resolver, cleanup
}

// newCacheStore connects to Redis when REDIS_ADDR is set, falling back to memory
func newCacheStore(ctx context.Context, src config.Source, log *zap.Logger) cache.Store {
	if cacheStore != nil {
		return cacheStore
	}

	addr := src.GetString(config.EnvRedisAddress)
	if addr == "" {
		return cache.NewMemoryStore()
	}

	store, err := cache.NewRedisStore(ctx, addr)
	if err != nil {
		log.Warn("author cache unavailable, using memory", zap.String("address", addr), zap.Error(err))
		return cache.NewMemoryStore()
	}
	log.Debug("using redis author cache", zap.String("address", addr))
	return store
}

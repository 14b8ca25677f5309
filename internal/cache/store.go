/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package cache provides short-lived key/value storage for resolved lookups.
package cache

import (
	"context"
	"time"
)

// Store defines the interface for a TTL-bounded byte cache
type Store interface {
	// Get returns the value for key and whether it was present and unexpired
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl. A non-positive ttl disables storage.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases any underlying connections
	Close() error
}

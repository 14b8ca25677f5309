/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package author

import (
	"context"
	"time"

	"github.com/orien/spektate/internal/model"
	"github.com/orien/spektate/internal/repository"
)

// Author identifies who produced a commit
type Author struct {
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Username   string    `json:"username,omitempty"`
	URL        string    `json:"url,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CommitTime time.Time `json:"commitTime,omitempty"`
}

// Fetcher looks up the author of a commit in a repository.
// It returns a nil Author and nil error when the commit has no known author.
type Fetcher interface {
	FetchAuthor(ctx context.Context, ref repository.Reference, commit, accessToken string) (*Author, error)
}

// URLResolver converts a raw repository URL into a repository reference
type URLResolver interface {
	ResolveURL(rawURL string) (repository.Reference, error)
}

// Resolver defines the interface for resolving the author of a deployment
type Resolver interface {
	ResolveAuthor(ctx context.Context, deployment *model.Deployment) (*Author, error)
}

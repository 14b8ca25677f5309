/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package gitsource looks up commit authors by reading repositories over git.
package gitsource

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/orien/spektate/internal/author"
	"github.com/orien/spektate/internal/repository"
	"go.uber.org/zap"
)

// DefaultMaxTries bounds clone attempts, the first one included
const DefaultMaxTries = 3

var fullHash = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Cloner obtains a repository from url
type Cloner func(ctx context.Context, url string, auth transport.AuthMethod) (*git.Repository, error)

// Fetcher implements author.Fetcher by cloning the repository into memory
// and reading the commit's author signature
type Fetcher struct {
	hosts      repository.Hosts
	clone      Cloner
	maxTries   uint
	newBackOff func() backoff.BackOff
	logger     *zap.Logger
}

var _ author.Fetcher = (*Fetcher)(nil)

// Option configures a Fetcher
type Option func(*Fetcher)

// WithHosts overrides the hostnames used to build clone URLs
func WithHosts(hosts repository.Hosts) Option {
	return func(f *Fetcher) { f.hosts = hosts }
}

// WithCloner replaces the in-memory clone
func WithCloner(clone Cloner) Option {
	return func(f *Fetcher) { f.clone = clone }
}

// WithMaxTries sets the number of clone attempts
func WithMaxTries(tries uint) Option {
	return func(f *Fetcher) { f.maxTries = tries }
}

// WithBackOff sets the retry delay policy
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(f *Fetcher) { f.newBackOff = newBackOff }
}

// WithLogger sets the logger used for retry diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) { f.logger = logger }
}

// NewFetcher creates a git-backed author fetcher
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		hosts:    repository.DefaultHosts(),
		clone:    CloneInMemory,
		maxTries: DefaultMaxTries,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CloneInMemory clones url into memory without a worktree
func CloneInMemory(ctx context.Context, url string, auth transport.AuthMethod) (*git.Repository, error) {
	return git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
		URL:  url,
		Auth: auth,
		Tags: git.NoTags,
	})
}

// FetchAuthor returns the author of commit in ref, or nil when the commit does not exist
func (f *Fetcher) FetchAuthor(ctx context.Context, ref repository.Reference, commit, accessToken string) (*author.Author, error) {
	url, err := repository.CloneURL(ref, f.hosts)
	if err != nil {
		return nil, err
	}

	repo, err := f.cloneWithRetry(ctx, url, basicAuth(ref, accessToken))
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", ref, err)
	}

	c, err := lookupCommit(repo, commit)
	if errors.Is(err, plumbing.ErrObjectNotFound) || errors.Is(err, plumbing.ErrReferenceNotFound) {
		f.logger.Debug("commit not found", zap.String("repository", ref.Key()), zap.String("commit", commit))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s in %s: %w", commit, ref, err)
	}

	return &author.Author{
		Name:       c.Author.Name,
		Email:      c.Author.Email,
		CommitTime: c.Author.When,
	}, nil
}

func (f *Fetcher) cloneWithRetry(ctx context.Context, url string, auth transport.AuthMethod) (*git.Repository, error) {
	attempt := 0
	operation := func() (*git.Repository, error) {
		attempt++
		repo, err := f.clone(ctx, url, auth)
		if err != nil && isPermanent(err) {
			return nil, backoff.Permanent(err)
		}
		return repo, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(f.newBackOff()),
		backoff.WithMaxTries(f.maxTries),
		backoff.WithNotify(func(err error, delay time.Duration) {
			f.logger.Warn("clone failed, retrying",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err))
		}),
	)
}

func lookupCommit(repo *git.Repository, commit string) (*object.Commit, error) {
	if fullHash.MatchString(commit) {
		return repo.CommitObject(plumbing.NewHash(commit))
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(commit))
	if err != nil {
		return nil, err
	}
	return repo.CommitObject(*hash)
}

func isPermanent(err error) bool {
	return errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, transport.ErrAuthorizationFailed) ||
		errors.Is(err, transport.ErrRepositoryNotFound) ||
		errors.Is(err, transport.ErrEmptyRemoteRepository) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// basicAuth returns HTTPS credentials for token, or nil for anonymous access
func basicAuth(ref repository.Reference, token string) transport.AuthMethod {
	if token == "" {
		return nil
	}

	username := "git"
	switch ref.Kind() {
	case repository.KindGitHub:
		username = "x-access-token"
	case repository.KindGitLab:
		username = "oauth2"
	case repository.KindAzureDevOps:
		username = "pat"
	}
	return &http.BasicAuth{Username: username, Password: token}
}

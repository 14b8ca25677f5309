/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package author

import (
	"context"
	"fmt"

	"github.com/orien/spektate/internal/config"
	"github.com/orien/spektate/internal/model"
	"github.com/orien/spektate/internal/repository"
	"go.uber.org/zap"
)

// MsgRepositoryNotRecognized is logged when no commit and repository pair can be assembled
const MsgRepositoryNotRecognized = "Repository could not be recognized"

// DeploymentAuthorResolver implements Resolver by selecting a commit and repository
// from the deployment's builds and delegating the lookup to a Fetcher
type DeploymentAuthorResolver struct {
	configProvider config.Provider
	fetcher        Fetcher
	urls           URLResolver
	logger         *zap.Logger
}

// NewDeploymentAuthorResolver creates a resolver. A nil logger discards diagnostics.
func NewDeploymentAuthorResolver(provider config.Provider, fetcher Fetcher, urls URLResolver, logger *zap.Logger) *DeploymentAuthorResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeploymentAuthorResolver{
		configProvider: provider,
		fetcher:        fetcher,
		urls:           urls,
		logger:         logger,
	}
}

// ResolveAuthor returns the author of the commit that produced the deployment.
// A nil Author with a nil error means no usable commit and repository were found.
func (r *DeploymentAuthorResolver) ResolveAuthor(ctx context.Context, deployment *model.Deployment) (*Author, error) {
	cfg, err := r.configProvider.Config(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}

	if deployment == nil {
		deployment = &model.Deployment{}
	}

	commit, ref := r.selectCommitAndRepository(deployment)
	if commit == "" || ref == nil {
		r.logger.Warn(MsgRepositoryNotRecognized, zap.String("deployment", deployment.Name()))
		return nil, nil
	}

	r.logger.Debug("fetching author",
		zap.String("deployment", deployment.Name()),
		zap.String("repository", ref.Key()),
		zap.String("commit", commit))

	return r.fetcher.FetchAuthor(ctx, ref, commit, cfg.AccessToken())
}

// selectCommitAndRepository picks the commit and repository to look up.
//
// Build results take precedence over the raw repository URLs. When a URL is used,
// the commit is taken from the build of the matching stage only, even if that
// leaves it empty.
// TODO: surface the chosen precedence path to callers so conflicting fields are visible.
func (r *DeploymentAuthorResolver) selectCommitAndRepository(d *model.Deployment) (string, repository.Reference) {
	commit := d.SrcSourceVersion()
	if commit == "" {
		commit = d.HLDSourceVersion()
	}

	ref := d.SrcRepository()
	if ref == nil {
		ref = d.HLDRepository()
	}

	if ref == nil && d.SourceRepo != "" {
		ref = r.resolveURL(d.SourceRepo)
		commit = d.SrcSourceVersion()
	} else if ref == nil && d.HLDRepo != "" {
		ref = r.resolveURL(d.HLDRepo)
		commit = d.HLDSourceVersion()
	}

	return commit, ref
}

func (r *DeploymentAuthorResolver) resolveURL(raw string) repository.Reference {
	ref, err := r.urls.ResolveURL(raw)
	if err != nil {
		r.logger.Debug("failed to resolve repository URL", zap.String("url", raw), zap.Error(err))
		return nil
	}
	return ref
}

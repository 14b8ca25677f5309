/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"fmt"
)

// ResolvePipelineConfig selects the pipeline provider.
// Azure DevOps wins over GitHub Actions, which wins over GitLab. Returns a nil
// PipelineConfig when none of them is configured.
func ResolvePipelineConfig(src Source) (PipelineType, PipelineConfig) {
	org := src.GetString(EnvOrg)
	project := src.GetString(EnvProject)

	if org != "" && project != "" {
		return PipelineAzureDevOps, AzureDevOpsPipeline{
			Org:         org,
			Project:     project,
			AccessToken: src.GetString(EnvAccessToken),
		}
	}

	if token := src.GetString(EnvGitHubToken); token != "" {
		return PipelineGitHubActions, GitHubActionsPipeline{AccessToken: token}
	}

	if token := src.GetString(EnvGitLabToken); token != "" {
		return PipelineGitLab, GitLabPipeline{AccessToken: token}
	}

	return PipelineUnknown, nil
}

// ResolveRepoConfig selects the repository provider, independently of the pipeline.
// Returns a nil RepoConfig when no provider has its full set of values.
func ResolveRepoConfig(src Source) (RepositoryType, RepoConfig) {
	if manifest := src.GetString(EnvManifestRepo); manifest != "" {
		return RepositoryAzureDevOps, AzureDevOpsRepos{
			ManifestRepo: manifest,
			AccessToken:  src.GetString(EnvAccessToken),
		}
	}

	ghManifest := src.GetString(EnvGitHubManifestRepo)
	ghHLD := src.GetString(EnvGitHubHLDRepo)
	ghSource := src.GetString(EnvGitHubSourceRepo)
	if ghManifest != "" && ghHLD != "" && ghSource != "" {
		return RepositoryGitHub, GitHubRepos{
			SourceRepo:   ghSource,
			HLDRepo:      ghHLD,
			ManifestRepo: ghManifest,
			AccessToken:  src.GetString(EnvGitHubToken),
		}
	}

	sourceID := src.GetString(EnvSourceProjectID)
	hldID := src.GetString(EnvHLDProjectID)
	manifestID := src.GetString(EnvManifestProjectID)
	glToken := src.GetString(EnvGitLabToken)
	if sourceID != "" && hldID != "" && manifestID != "" && glToken != "" {
		return RepositoryGitLab, GitLabRepos{
			SourceProjectID:   sourceID,
			HLDProjectID:      hldID,
			ManifestProjectID: manifestID,
			AccessToken:       glToken,
		}
	}

	return RepositoryUnknown, nil
}

// ResolveConfig assembles the full configuration from src
func ResolveConfig(src Source) (*Config, error) {
	pipelineType, pipeline := ResolvePipelineConfig(src)
	repoType, repo := ResolveRepoConfig(src)

	if pipeline == nil || repo == nil {
		return nil, fmt.Errorf("%w (pipeline: %s, repository: %s)", ErrConfigUnresolved, pipelineType, repoType)
	}

	return &Config{
		Pipeline:            pipeline,
		Repo:                repo,
		PipelineType:        pipelineType,
		RepositoryType:      repoType,
		StorageAccountName:  src.GetString(EnvStorageAccountName),
		StorageAccessKey:    src.GetString(EnvStorageAccessKey),
		StorageTableName:    src.GetString(EnvStorageTableName),
		StoragePartitionKey: src.GetString(EnvStoragePartitionKey),
		CacheRedisAddress:   src.GetString(EnvRedisAddress),
	}, nil
}

// EnvProvider resolves configuration afresh from its Source on every call
type EnvProvider struct {
	source Source
}

// NewEnvProvider creates a Provider over src
func NewEnvProvider(src Source) *EnvProvider {
	return &EnvProvider{source: src}
}

// Config resolves the configuration from the underlying source
func (p *EnvProvider) Config(ctx context.Context) (*Config, error) {
	return ResolveConfig(p.source)
}

// Source returns the underlying source
func (p *EnvProvider) Source() Source {
	return p.source
}

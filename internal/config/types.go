/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"errors"
)

// ErrConfigUnresolved is returned when no pipeline or no repository
// configuration can be derived from the environment
var ErrConfigUnresolved = errors.New("Pipeline and/or repository could not be recognized")

// Provider defines the interface for obtaining the resolved configuration
type Provider interface {
	// Config resolves the current configuration
	Config(ctx context.Context) (*Config, error)
}

// Source looks up raw configuration values by key.
// An empty value is treated as unset.
type Source interface {
	GetString(key string) string
}

// PipelineType identifies the CI/CD system building and promoting artifacts
type PipelineType int

const (
	PipelineUnknown PipelineType = iota
	PipelineAzureDevOps
	PipelineGitHubActions
	PipelineGitLab
)

func (t PipelineType) String() string {
	switch t {
	case PipelineAzureDevOps:
		return "azdo"
	case PipelineGitHubActions:
		return "github"
	case PipelineGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// RepositoryType identifies the source-control host for source, HLD and manifest repositories
type RepositoryType int

const (
	RepositoryUnknown RepositoryType = iota
	RepositoryAzureDevOps
	RepositoryGitHub
	RepositoryGitLab
)

func (t RepositoryType) String() string {
	switch t {
	case RepositoryAzureDevOps:
		return "azdo"
	case RepositoryGitHub:
		return "github"
	case RepositoryGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// PipelineConfig is implemented by AzureDevOpsPipeline, GitHubActionsPipeline and GitLabPipeline only
type PipelineConfig interface {
	Type() PipelineType
	Token() string
	pipelineConfig()
}

// AzureDevOpsPipeline holds Azure DevOps pipeline identifiers
type AzureDevOpsPipeline struct {
	Org         string
	Project     string
	AccessToken string
}

// GitHubActionsPipeline holds the token used against GitHub Actions
type GitHubActionsPipeline struct {
	AccessToken string
}

// GitLabPipeline holds the token used against GitLab CI
type GitLabPipeline struct {
	AccessToken string
}

func (AzureDevOpsPipeline) Type() PipelineType   { return PipelineAzureDevOps }
func (GitHubActionsPipeline) Type() PipelineType { return PipelineGitHubActions }
func (GitLabPipeline) Type() PipelineType        { return PipelineGitLab }

func (p AzureDevOpsPipeline) Token() string   { return p.AccessToken }
func (p GitHubActionsPipeline) Token() string { return p.AccessToken }
func (p GitLabPipeline) Token() string        { return p.AccessToken }

func (AzureDevOpsPipeline) pipelineConfig()   {}
func (GitHubActionsPipeline) pipelineConfig() {}
func (GitLabPipeline) pipelineConfig()        {}

// RepoConfig is implemented by AzureDevOpsRepos, GitHubRepos and GitLabRepos only
type RepoConfig interface {
	Type() RepositoryType
	Token() string
	repoConfig()
}

// AzureDevOpsRepos holds the manifest repository hosted on Azure DevOps
type AzureDevOpsRepos struct {
	ManifestRepo string
	AccessToken  string
}

// GitHubRepos holds the source, HLD and manifest repository URLs hosted on GitHub
type GitHubRepos struct {
	SourceRepo   string
	HLDRepo      string
	ManifestRepo string
	AccessToken  string
}

// GitLabRepos holds the source, HLD and manifest project IDs hosted on GitLab
type GitLabRepos struct {
	SourceProjectID   string
	HLDProjectID      string
	ManifestProjectID string
	AccessToken       string
}

func (AzureDevOpsRepos) Type() RepositoryType { return RepositoryAzureDevOps }
func (GitHubRepos) Type() RepositoryType      { return RepositoryGitHub }
func (GitLabRepos) Type() RepositoryType      { return RepositoryGitLab }

func (r AzureDevOpsRepos) Token() string { return r.AccessToken }
func (r GitHubRepos) Token() string      { return r.AccessToken }
func (r GitLabRepos) Token() string      { return r.AccessToken }

func (AzureDevOpsRepos) repoConfig() {}
func (GitHubRepos) repoConfig()      {}
func (GitLabRepos) repoConfig()      {}

// Config represents the fully resolved configuration.
// Pipeline and Repo are never nil on a Config returned by ResolveConfig.
type Config struct {
	Pipeline       PipelineConfig
	Repo           RepoConfig
	PipelineType   PipelineType
	RepositoryType RepositoryType

	StorageAccountName  string
	StorageAccessKey    string
	StorageTableName    string
	StoragePartitionKey string

	// CacheRedisAddress selects a Redis author cache when non-empty
	CacheRedisAddress string
}

// AccessToken returns the repository access token, falling back to the pipeline access token
func (c *Config) AccessToken() string {
	if c.Repo != nil && c.Repo.Token() != "" {
		return c.Repo.Token()
	}
	if c.Pipeline != nil {
		return c.Pipeline.Token()
	}
	return ""
}

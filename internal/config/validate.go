/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DefaultCacheRefreshInterval applies when CACHE_REFRESH_INTERVAL_IN_SEC is unset or malformed
const DefaultCacheRefreshInterval = 30 * time.Second

// IsAzdo reports whether src fully configures an Azure DevOps pipeline with Azure DevOps repositories
func IsAzdo(src Source) bool {
	cfg, err := ResolveConfig(src)
	if err != nil || cfg.PipelineType != PipelineAzureDevOps {
		return false
	}
	return pipelineComplete(cfg.Pipeline) && repoComplete(cfg.Repo, RepositoryAzureDevOps)
}

// IsGithubActions reports whether src fully configures GitHub Actions with GitHub repositories
func IsGithubActions(src Source) bool {
	cfg, err := ResolveConfig(src)
	if err != nil || cfg.PipelineType != PipelineGitHubActions {
		return false
	}
	return pipelineComplete(cfg.Pipeline) && repoComplete(cfg.Repo, RepositoryGitHub)
}

// IsGitlab reports whether src fully configures GitLab CI with GitLab repositories
func IsGitlab(src Source) bool {
	cfg, err := ResolveConfig(src)
	if err != nil || cfg.PipelineType != PipelineGitLab {
		return false
	}
	return pipelineComplete(cfg.Pipeline) && repoComplete(cfg.Repo, RepositoryGitLab)
}

// IsConfigValid reports whether exactly one provider is fully configured
// and every storage setting is present
func IsConfigValid(src Source) bool {
	matches := 0
	for _, check := range []func(Source) bool{IsAzdo, IsGithubActions, IsGitlab} {
		if check(src) {
			matches++
		}
	}
	if matches != 1 {
		return false
	}

	cfg, err := ResolveConfig(src)
	if err != nil {
		return false
	}
	return cfg.StorageAccountName != "" &&
		cfg.StorageAccessKey != "" &&
		cfg.StorageTableName != "" &&
		cfg.StoragePartitionKey != ""
}

func pipelineComplete(p PipelineConfig) bool {
	switch p := p.(type) {
	case AzureDevOpsPipeline:
		return p.Org != "" && p.Project != ""
	case GitHubActionsPipeline:
		return p.AccessToken != ""
	case GitLabPipeline:
		return p.AccessToken != ""
	default:
		return false
	}
}

func repoComplete(r RepoConfig, want RepositoryType) bool {
	if r == nil || r.Type() != want {
		return false
	}
	switch r := r.(type) {
	case AzureDevOpsRepos:
		return r.ManifestRepo != ""
	case GitHubRepos:
		return r.SourceRepo != "" && r.HLDRepo != "" && r.ManifestRepo != ""
	case GitLabRepos:
		return r.SourceProjectID != "" && r.HLDProjectID != "" && r.ManifestProjectID != "" && r.AccessToken != ""
	default:
		return false
	}
}

// CacheRefreshInterval returns the configured refresh interval for cached data.
// The value is read as decimal seconds, leading zeros included.
// A missing or non-numeric value yields DefaultCacheRefreshInterval.
func CacheRefreshInterval(src Source) time.Duration {
	raw := strings.TrimSpace(src.GetString(EnvCacheRefreshInterval))
	if raw == "" {
		return DefaultCacheRefreshInterval
	}

	seconds, err := cast.ToInt64E(trimLeadingZeros(raw))
	if err != nil {
		return DefaultCacheRefreshInterval
	}
	return time.Duration(seconds) * time.Second
}

// trimLeadingZeros drops leading zeros so cast cannot read the value as
// octal, hex or binary. "0x1e" becomes "x1e" and is rejected.
func trimLeadingZeros(raw string) string {
	sign := ""
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		sign, raw = raw[:1], raw[1:]
	}

	trimmed := strings.TrimLeft(raw, "0")
	if trimmed == "" || trimmed[0] == '.' {
		trimmed = "0" + trimmed
	}
	return sign + trimmed
}

// Redacted returns a copy of the configuration with secrets masked for display
func (c *Config) Redacted() *Config {
	out := *c

	switch p := c.Pipeline.(type) {
	case AzureDevOpsPipeline:
		p.AccessToken = mask(p.AccessToken)
		out.Pipeline = p
	case GitHubActionsPipeline:
		p.AccessToken = mask(p.AccessToken)
		out.Pipeline = p
	case GitLabPipeline:
		p.AccessToken = mask(p.AccessToken)
		out.Pipeline = p
	}

	switch r := c.Repo.(type) {
	case AzureDevOpsRepos:
		r.AccessToken = mask(r.AccessToken)
		out.Repo = r
	case GitHubRepos:
		r.AccessToken = mask(r.AccessToken)
		out.Repo = r
	case GitLabRepos:
		r.AccessToken = mask(r.AccessToken)
		out.Repo = r
	}

	out.StorageAccessKey = mask(c.StorageAccessKey)
	return &out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

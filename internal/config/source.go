/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Environment variable names
const (
	EnvOrg         = "ORG"
	EnvProject     = "PROJECT"
	EnvAccessToken = "ACCESS_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvGitLabToken = "GITLAB_TOKEN"

	EnvManifestRepo = "MANIFEST_REPO"

	EnvGitHubSourceRepo   = "GITHUB_SOURCE_REPO"
	EnvGitHubHLDRepo      = "GITHUB_HLD_REPO"
	EnvGitHubManifestRepo = "GITHUB_MANIFEST_REPO"

	EnvSourceProjectID   = "SOURCE_PROJECT_ID"
	EnvHLDProjectID      = "HLD_PROJECT_ID"
	EnvManifestProjectID = "MANIFEST_PROJECT_ID"

	EnvStorageAccountName  = "ACCOUNT_NAME"
	EnvStorageAccessKey    = "ACCESS_KEY"
	EnvStorageTableName    = "TABLE_NAME"
	EnvStoragePartitionKey = "PARTITION_KEY"

	EnvCacheRefreshInterval = "CACHE_REFRESH_INTERVAL_IN_SEC"
	EnvRedisAddress         = "REDIS_ADDR"
)

// EnvSource reads values from the process environment on every lookup,
// optionally layered over a dotenv file
type EnvSource struct {
	v *viper.Viper
}

// NewEnvSource creates a Source backed by the process environment.
// When envFile is non-empty its KEY=value pairs are used for keys the environment leaves unset.
func NewEnvSource(envFile string) (*EnvSource, error) {
	v := viper.New()
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w", envFile, err)
		}
	}

	return &EnvSource{v: v}, nil
}

// GetString returns the value for key, or "" when unset
func (s *EnvSource) GetString(key string) string {
	return s.v.GetString(key)
}

// MapSource is a static Source, useful for tests and embedding
type MapSource map[string]string

// GetString returns the value for key, or "" when unset
func (m MapSource) GetString(key string) string {
	return m[key]
}

/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Config(ctx context.Context) (*Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Config), args.Error(1)
}

// NewTestAzdoSource returns a source that fully configures Azure DevOps, storage included
func NewTestAzdoSource() MapSource {
	return MapSource{
		EnvOrg:          "contoso",
		EnvProject:      "fabrikam",
		EnvAccessToken:  "azdo-token",
		EnvManifestRepo: "https://dev.azure.com/contoso/fabrikam/_git/manifest",

		EnvStorageAccountName:  "account",
		EnvStorageAccessKey:    "key",
		EnvStorageTableName:    "deployments",
		EnvStoragePartitionKey: "partition",
	}
}

// NewTestGitHubSource returns a source that fully configures GitHub Actions, storage included
func NewTestGitHubSource() MapSource {
	return MapSource{
		EnvGitHubToken:        "gh-token",
		EnvGitHubSourceRepo:   "https://github.com/contoso/app",
		EnvGitHubHLDRepo:      "https://github.com/contoso/app-hld",
		EnvGitHubManifestRepo: "https://github.com/contoso/app-manifest",

		EnvStorageAccountName:  "account",
		EnvStorageAccessKey:    "key",
		EnvStorageTableName:    "deployments",
		EnvStoragePartitionKey: "partition",
	}
}

// NewTestGitLabSource returns a source that fully configures GitLab, storage included
func NewTestGitLabSource() MapSource {
	return MapSource{
		EnvGitLabToken:       "gl-token",
		EnvSourceProjectID:   "101",
		EnvHLDProjectID:      "102",
		EnvManifestProjectID: "103",

		EnvStorageAccountName:  "account",
		EnvStorageAccessKey:    "key",
		EnvStorageTableName:    "deployments",
		EnvStoragePartitionKey: "partition",
	}
}

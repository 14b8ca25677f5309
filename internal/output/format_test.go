/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/orien/spektate/internal/author"
	"github.com/orien/spektate/internal/config"
	"github.com/orien/spektate/internal/model"
	"github.com/orien/spektate/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigReport_Azdo(t *testing.T) {
	src := config.NewTestAzdoSource()
	src[config.EnvCacheRefreshInterval] = "45"

	report, err := NewConfigReport(src)

	require.NoError(t, err)
	assert.Equal(t, config.PipelineAzureDevOps, report.Config.PipelineType)
	assert.True(t, report.Azdo)
	assert.False(t, report.GitHubActions)
	assert.False(t, report.GitLab)
	assert.True(t, report.Valid)
	assert.Equal(t, 45*time.Second, report.CacheRefreshInterval)
}

func TestNewConfigReport_Unresolved(t *testing.T) {
	report, err := NewConfigReport(config.MapSource{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, config.ErrConfigUnresolved)
}

func TestFormatConfig_RedactsSecrets(t *testing.T) {
	report, err := NewConfigReport(config.NewTestGitHubSource())
	require.NoError(t, err)

	result := FormatConfig(NewStyleSet(false), report)

	assert.Contains(t, result, "Pipeline: github")
	assert.Contains(t, result, "Repository: github")
	assert.Contains(t, result, "  Source repo: https://github.com/contoso/app\n")
	assert.Contains(t, result, "  Access token: ***\n")
	assert.Contains(t, result, "  Access key: ***\n")
	assert.Contains(t, result, "  Table name: deployments\n")
	assert.Contains(t, result, "  GitHub Actions: yes\n")
	assert.Contains(t, result, "  Azure DevOps: no\n")
	assert.Contains(t, result, "  Valid: yes\n")
	assert.Contains(t, result, "Cache refresh interval: 30000ms")
	assert.NotContains(t, result, "gh-token")
	assert.NotContains(t, result, "Author cache:")
}

func TestFormatConfig_InvalidWhenStorageMissing(t *testing.T) {
	src := config.NewTestGitLabSource()
	delete(src, config.EnvStorageTableName)
	src[config.EnvRedisAddress] = "localhost:6379"

	report, err := NewConfigReport(src)
	require.NoError(t, err)

	result := FormatConfig(NewStyleSet(false), report)

	assert.Contains(t, result, "  GitLab: yes\n")
	assert.Contains(t, result, "  Valid: no\n")
	assert.Contains(t, result, "  Source project: 101\n")
	assert.NotContains(t, result, "Table name:")
	assert.Contains(t, result, "Author cache: localhost:6379")
}

func TestFormatAuthor_Found(t *testing.T) {
	deployment := model.NewTestDeployment("c1", "h1", repository.GitHub{Username: "contoso", Reponame: "app"})
	found := &author.Author{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Username:   "jdoe",
		CommitTime: time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC),
	}

	result := FormatAuthor(NewStyleSet(false), deployment, found)

	assert.Equal(t, "Deployment: deploy-1\n"+
		"  Service: hello-world\n"+
		"  Environment: dev\n"+
		"  Author: Jane Doe <jane@example.com>\n"+
		"  Username: jdoe\n"+
		"  Committed: 2025-01-15 10:30:45 UTC\n", result)
}

func TestFormatAuthor_Unknown(t *testing.T) {
	deployment := &model.Deployment{DeploymentID: "abc"}

	result := FormatAuthor(NewStyleSet(false), deployment, nil)

	assert.Equal(t, "Deployment: abc\n  Author: unknown\n", result)
}

func TestFormatAuthor_UnknownUsesSubtleStyle(t *testing.T) {
	styles := NewStyleSet(false)
	styles.Subtle = lipgloss.NewStyle().Transform(strings.ToUpper)

	result := FormatAuthor(styles, &model.Deployment{DeploymentID: "abc"}, nil)

	assert.Equal(t, "Deployment: abc\n  Author: UNKNOWN\n", result)
}

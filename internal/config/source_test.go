/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSource_ReadsEnvironmentFresh(t *testing.T) {
	src, err := NewEnvSource("")
	require.NoError(t, err)

	t.Setenv(EnvGitLabToken, "first")
	assert.Equal(t, "first", src.GetString(EnvGitLabToken))

	t.Setenv(EnvGitLabToken, "second")
	assert.Equal(t, "second", src.GetString(EnvGitLabToken))
}

func TestEnvSource_EmptyVariableIsUnset(t *testing.T) {
	src, err := NewEnvSource("")
	require.NoError(t, err)

	t.Setenv(EnvGitHubToken, "")
	assert.Equal(t, "", src.GetString(EnvGitHubToken))
}

func TestEnvSource_EnvFileLayeredUnderEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "spektate.env")
	content := "GITLAB_TOKEN=from-file\nMANIFEST_REPO=file-manifest\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	t.Setenv(EnvGitLabToken, "from-env")

	src, err := NewEnvSource(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-env", src.GetString(EnvGitLabToken), "environment should take precedence")
	assert.Equal(t, "file-manifest", src.GetString(EnvManifestRepo))

	cfg, err := NewEnvProvider(src).Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PipelineGitLab, cfg.PipelineType)
	assert.Equal(t, RepositoryAzureDevOps, cfg.RepositoryType)
}

func TestEnvSource_MissingEnvFile(t *testing.T) {
	src, err := NewEnvSource(filepath.Join(t.TempDir(), "missing.env"))

	assert.Nil(t, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.env")
}

func TestCachedProvider_ReusesUntilIntervalElapses(t *testing.T) {
	ctx := context.Background()
	inner := &MockProvider{}
	first := &Config{PipelineType: PipelineGitHubActions}
	second := &Config{PipelineType: PipelineGitLab}
	inner.On("Config", ctx).Return(first, nil).Once()
	inner.On("Config", ctx).Return(second, nil).Once()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cached := NewCachedProvider(inner, MapSource{EnvCacheRefreshInterval: "10"})
	cached.now = func() time.Time { return now }

	assert.Equal(t, 10*time.Second, cached.Interval())

	cfg, err := cached.Config(ctx)
	require.NoError(t, err)
	assert.Same(t, first, cfg)

	now = now.Add(9 * time.Second)
	cfg, err = cached.Config(ctx)
	require.NoError(t, err)
	assert.Same(t, first, cfg)

	now = now.Add(time.Second)
	cfg, err = cached.Config(ctx)
	require.NoError(t, err)
	assert.Same(t, second, cfg)

	inner.AssertExpectations(t)
}

func TestCachedProvider_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	inner := &MockProvider{}
	expected := &Config{PipelineType: PipelineGitLab}
	inner.On("Config", ctx).Return(nil, ErrConfigUnresolved).Once()
	inner.On("Config", ctx).Return(expected, nil).Once()

	cached := NewCachedProvider(inner, MapSource{})

	_, err := cached.Config(ctx)
	assert.ErrorIs(t, err, ErrConfigUnresolved)

	cfg, err := cached.Config(ctx)
	require.NoError(t, err)
	assert.Same(t, expected, cfg)

	inner.AssertExpectations(t)
}

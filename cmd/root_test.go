/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/orien/spektate/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns the combined output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults between executions of the shared root command
func resetFlags() {
	_ = rootCmd.PersistentFlags().Set("env-file", "")
	_ = rootCmd.PersistentFlags().Set("verbose", "false")
	_ = rootCmd.PersistentFlags().Set("log-format", "console")
	_ = authorCmd.Flags().Set("template", "")
	_ = authorCmd.Flags().Set("no-cache", "false")
}

// findCommand returns the direct subcommand of parent with the given name
func findCommand(parent *cobra.Command, name string) *cobra.Command {
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "spektate", rootCmd.Use)
	assert.Equal(t, "Resolve deployment configuration and commit authors for GitOps pipelines", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "Spektate inspects GitOps deployments")
	assert.Contains(t, rootCmd.Long, "Azure DevOps, GitHub Actions and GitLab CI support")
	assert.Same(t, rootCmd, RootCommand())
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	envFileFlag := flags.Lookup("env-file")
	require.NotNil(t, envFileFlag)
	assert.Equal(t, "", envFileFlag.DefValue)
	assert.Equal(t, "string", envFileFlag.Value.Type())

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "bool", verboseFlag.Value.Type())

	logFormatFlag := flags.Lookup("log-format")
	require.NotNil(t, logFormatFlag)
	assert.Equal(t, "console", logFormatFlag.DefValue)
}

func TestRootCmd_Help(t *testing.T) {
	output, err := executeCommand(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, output, "Spektate inspects GitOps deployments")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "author")
	assert.Contains(t, output, "config")
	assert.Contains(t, output, "--env-file")
	assert.Contains(t, output, "--log-format")
}

func TestRootCmd_Version(t *testing.T) {
	output, err := executeCommand(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, output, "spektate "+version.Short())
	assert.Contains(t, output, "Git commit:")
	assert.Contains(t, output, "Platform:")
}

func TestRootCmd_InvalidFlag(t *testing.T) {
	output, err := executeCommand(t, "--invalid-flag")

	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output+err.Error()), "unknown flag")
}

func TestRootCmd_Subcommands(t *testing.T) {
	assert.NotNil(t, findCommand(rootCmd, "author"), "author command should be registered")

	configCmd := findCommand(rootCmd, "config")
	require.NotNil(t, configCmd, "config command should be registered")
	assert.NotNil(t, findCommand(configCmd, "show"))
	assert.NotNil(t, findCommand(configCmd, "validate"))
}

func TestRootCmd_FlagInheritance(t *testing.T) {
	inherited := authorCmd.InheritedFlags()

	assert.NotNil(t, inherited.Lookup("env-file"))
	assert.NotNil(t, inherited.Lookup("verbose"))
	assert.NotNil(t, inherited.Lookup("log-format"))
}

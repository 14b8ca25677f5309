/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/orien/spektate/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spektate",
	Short: "Resolve deployment configuration and commit authors for GitOps pipelines",
	Long: `Spektate inspects GitOps deployments that flow from a source repository,
through a high level definition (HLD) repository, to a manifest repository.

• Pipeline and repository configuration from environment variables
• Azure DevOps, GitHub Actions and GitLab CI support
• Commit author lookup for deployments
• Optional Redis cache for author lookups

Use spektate to check that an environment is configured correctly and to find
out who authored the change behind each deployment.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// RootCommand returns the root command, for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command through Fang.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.GitCommit),
	)
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file layered under the process environment")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console or json)")
}

/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/orien/spektate/internal/config"
	"github.com/orien/spektate/internal/output"
	"github.com/spf13/cobra"
)

// ErrConfigInvalid is returned by config validate when the configuration is incomplete
var ErrConfigInvalid = errors.New("configuration is not valid")

// configCmd groups the configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the pipeline and repository configuration",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resolved configuration",
	Long: `Display the pipeline, repository and storage configuration resolved from
the environment, with secrets redacted.

The output also reports which provider checks pass and the cache refresh interval.

Examples:
  spektate config show                    # Resolve from the process environment
  spektate config show --env-file .env    # Layer a dotenv file under the environment`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getConfigSource(cmd)
		if err != nil {
			return err
		}

		report, err := output.NewConfigReport(src)
		if err != nil {
			return fmt.Errorf("failed to resolve configuration: %w", err)
		}

		styles := output.NewStyleSet(output.ShouldUseColour())
		fmt.Fprint(cmd.OutOrStdout(), output.FormatConfig(styles, report))
		return nil
	},
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that exactly one provider and the storage settings are configured",
	Long: `Check the configuration resolved from the environment.

The configuration is valid when exactly one of Azure DevOps, GitHub Actions or
GitLab is fully configured and the storage account name, access key, table name
and partition key are all set. The command exits non-zero otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getConfigSource(cmd)
		if err != nil {
			return err
		}

		if !config.IsConfigValid(src) {
			return ErrConfigInvalid
		}

		styles := output.NewStyleSet(output.ShouldUseColour())
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Configuration is valid"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

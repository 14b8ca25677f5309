/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/orien/spektate/internal/model"
	"github.com/orien/spektate/internal/output"
	"github.com/orien/spektate/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// authorCmd represents the author command
var authorCmd = &cobra.Command{
	Use:   "author <deployment-file>",
	Short: "Find the commit author behind each deployment",
	Long: `Find the author of the commit that produced each deployment in a YAML or
JSON deployment file.

The commit is taken from the source-to-docker build, then the HLD-to-manifest
build. The repository comes from the same builds, falling back to the source
and HLD repository URLs. Authors are looked up by reading the repository over
git using the configured access token.

Examples:
  spektate author deployment.yaml
  spektate author deployments.yaml --template '{{ .Author.Name }}'
  spektate author deployment.yaml --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, _ := cmd.Flags().GetString("template")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		return resolveAuthors(cmd, args[0], tmpl, noCache)
	},
}

// resolveAuthors resolves and prints the author of every deployment in filename
func resolveAuthors(cmd *cobra.Command, filename, tmpl string, noCache bool) error {
	ctx := commandContext(cmd)

	log, err := getLogger(cmd)
	if err != nil {
		return err
	}

	log.Debug("resolving authors", append(version.Current().Fields(), zap.String("file", filename))...)

	deployments, err := model.LoadDeployments(filename)
	if err != nil {
		return err
	}

	src, err := getConfigSource(cmd)
	if err != nil {
		return err
	}

	resolver, cleanup := getAuthorResolver(ctx, src, log, noCache)
	defer cleanup()

	styles := output.NewStyleSet(output.ShouldUseColour())
	out := cmd.OutOrStdout()

	var errs []error
	for i, deployment := range deployments {
		found, err := resolver.ResolveAuthor(ctx, deployment)
		if err != nil {
			log.Error("failed to resolve author", zap.String("deployment", deployment.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("deployment %s: %w", deployment.Name(), err))
			continue
		}

		if tmpl != "" {
			rendered, err := output.Render(tmpl, output.AuthorView{Deployment: deployment, Author: found})
			if err != nil {
				log.Error("failed to render template", zap.String("deployment", deployment.Name()), zap.Error(err))
				errs = append(errs, fmt.Errorf("deployment %s: %w", deployment.Name(), err))
				continue
			}
			fmt.Fprintln(out, rendered)
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, output.FormatAuthor(styles, deployment, found))
	}

	return errors.Join(errs...)
}

func init() {
	rootCmd.AddCommand(authorCmd)

	authorCmd.Flags().String("template", "", "Go template (with Sprig functions) rendered for each deployment")
	authorCmd.Flags().Bool("no-cache", false, "skip the author cache")
}

/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package output renders configuration reports and author lookups for the terminal.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/orien/spektate/internal/author"
	"github.com/orien/spektate/internal/config"
	"github.com/orien/spektate/internal/model"
)

// ConfigReport summarises a resolved configuration and its validity checks
type ConfigReport struct {
	Config               *config.Config
	Azdo                 bool
	GitHubActions        bool
	GitLab               bool
	Valid                bool
	CacheRefreshInterval time.Duration
}

// NewConfigReport resolves the configuration from src and evaluates every predicate
func NewConfigReport(src config.Source) (*ConfigReport, error) {
	cfg, err := config.ResolveConfig(src)
	if err != nil {
		return nil, err
	}

	return &ConfigReport{
		Config:               cfg,
		Azdo:                 config.IsAzdo(src),
		GitHubActions:        config.IsGithubActions(src),
		GitLab:               config.IsGitlab(src),
		Valid:                config.IsConfigValid(src),
		CacheRefreshInterval: config.CacheRefreshInterval(src),
	}, nil
}

type field struct {
	key   string
	value string
}

// FormatConfig formats a configuration report with secrets redacted
func FormatConfig(styles *StyleSet, report *ConfigReport) string {
	var output strings.Builder
	cfg := report.Config.Redacted()

	writeTitle(&output, styles, "Pipeline", cfg.PipelineType.String())
	writeFields(&output, styles, pipelineFields(cfg.Pipeline))

	output.WriteString("\n")
	writeTitle(&output, styles, "Repository", cfg.RepositoryType.String())
	writeFields(&output, styles, repoFields(cfg.Repo))

	output.WriteString("\n")
	writeTitle(&output, styles, "Storage", "")
	writeFields(&output, styles, []field{
		{"Account name", cfg.StorageAccountName},
		{"Access key", cfg.StorageAccessKey},
		{"Table name", cfg.StorageTableName},
		{"Partition key", cfg.StoragePartitionKey},
	})

	output.WriteString("\n")
	writeTitle(&output, styles, "Checks", "")
	writeCheck(&output, styles, "Azure DevOps", report.Azdo)
	writeCheck(&output, styles, "GitHub Actions", report.GitHubActions)
	writeCheck(&output, styles, "GitLab", report.GitLab)
	writeCheck(&output, styles, "Valid", report.Valid)

	output.WriteString("\n")
	fmt.Fprintf(&output, "%s %s\n",
		styles.Key.Render("Cache refresh interval:"),
		styles.Value.Render(fmt.Sprintf("%dms", report.CacheRefreshInterval.Milliseconds())))
	if cfg.CacheRedisAddress != "" {
		fmt.Fprintf(&output, "%s %s\n", styles.Key.Render("Author cache:"), styles.Value.Render(cfg.CacheRedisAddress))
	}

	return output.String()
}

// FormatAuthor formats the author lookup for a single deployment
func FormatAuthor(styles *StyleSet, deployment *model.Deployment, found *author.Author) string {
	var output strings.Builder

	writeTitle(&output, styles, "Deployment", deployment.Name())
	if deployment.Service != "" || deployment.Environment != "" {
		writeFields(&output, styles, []field{
			{"Service", deployment.Service},
			{"Environment", deployment.Environment},
		})
	}

	if found == nil {
		fmt.Fprintf(&output, "  %s %s\n", styles.Key.Render("Author:"), styles.Subtle.Render("unknown"))
		return output.String()
	}

	name := found.Name
	if found.Email != "" {
		name = fmt.Sprintf("%s <%s>", found.Name, found.Email)
	}
	fields := []field{{"Author", name}, {"Username", found.Username}, {"Profile", found.URL}}
	if !found.CommitTime.IsZero() {
		fields = append(fields, field{"Committed", formatTime(found.CommitTime)})
	}
	writeFields(&output, styles, fields)

	return output.String()
}

// formatTime formats time in a human-readable format
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

func writeTitle(output *strings.Builder, styles *StyleSet, title, value string) {
	if value == "" {
		fmt.Fprintf(output, "%s\n", styles.Title.Render(title+":"))
		return
	}
	fmt.Fprintf(output, "%s %s\n", styles.Title.Render(title+":"), styles.Value.Render(value))
}

// writeFields writes key-value pairs with indentation, skipping empty values
func writeFields(output *strings.Builder, styles *StyleSet, fields []field) {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(output, "  %s %s\n", styles.Key.Render(f.key+":"), styles.Value.Render(f.value))
	}
}

func writeCheck(output *strings.Builder, styles *StyleSet, name string, ok bool) {
	mark := styles.Error.Render("no")
	if ok {
		mark = styles.Success.Render("yes")
	}
	fmt.Fprintf(output, "  %s %s\n", styles.Key.Render(name+":"), mark)
}

func pipelineFields(p config.PipelineConfig) []field {
	switch p := p.(type) {
	case config.AzureDevOpsPipeline:
		return []field{{"Org", p.Org}, {"Project", p.Project}, {"Access token", p.AccessToken}}
	case config.GitHubActionsPipeline:
		return []field{{"Access token", p.AccessToken}}
	case config.GitLabPipeline:
		return []field{{"Access token", p.AccessToken}}
	default:
		return nil
	}
}

func repoFields(r config.RepoConfig) []field {
	switch r := r.(type) {
	case config.AzureDevOpsRepos:
		return []field{{"Manifest repo", r.ManifestRepo}, {"Access token", r.AccessToken}}
	case config.GitHubRepos:
		return []field{
			{"Source repo", r.SourceRepo},
			{"HLD repo", r.HLDRepo},
			{"Manifest repo", r.ManifestRepo},
			{"Access token", r.AccessToken},
		}
	case config.GitLabRepos:
		return []field{
			{"Source project", r.SourceProjectID},
			{"HLD project", r.HLDProjectID},
			{"Manifest project", r.ManifestProjectID},
			{"Access token", r.AccessToken},
		}
	default:
		return nil
	}
}

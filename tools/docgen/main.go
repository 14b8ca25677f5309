package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	spektatecmd "github.com/orien/spektate/cmd"
	"github.com/orien/spektate/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const (
	formatMarkdown = "markdown"
	formatMan      = "man"
)

func main() {
	if err := newDocgenCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newDocgenCommand() *cobra.Command {
	var outputDir, format string

	cmd := &cobra.Command{
		Use:   "docgen",
		Short: "Generate the spektate CLI reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(spektatecmd.RootCommand(), outputDir, format)
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", filepath.Join("docs", "cli"), "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", formatMarkdown, "output format (markdown or man)")
	return cmd
}

// generate writes the reference for root and its subcommands into dir,
// replacing pages left over from a previous run
func generate(root *cobra.Command, dir, format string) error {
	var ext string
	switch format {
	case formatMarkdown:
		ext = ".md"
	case formatMan:
		ext = ".1"
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatMarkdown, formatMan)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := cleanGenerated(dir, ext); err != nil {
		return fmt.Errorf("failed to clean output directory: %w", err)
	}

	disableAutoGenTag(root)

	if format == formatMan {
		header := &doc.GenManHeader{
			Title:   "SPEKTATE",
			Section: "1",
			Source:  "spektate " + version.Short(),
		}
		if err := doc.GenManTree(root, header, dir); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		return nil
	}

	if err := doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to generate markdown documentation: %w", err)
	}
	return nil
}

func cleanGenerated(dir, ext string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func disableAutoGenTag(cmd *cobra.Command) {
	cmd.DisableAutoGenTag = true
	for _, child := range cmd.Commands() {
		disableAutoGenTag(child)
	}
}

func filePrepender(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("<!-- generated by tools/docgen from the %s command; do not edit -->\n\n", strings.ReplaceAll(name, "_", " "))
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(base, " ", "-")
	return strings.ToLower(base)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *cobra.Command {
	root := &cobra.Command{Use: "spektate", Short: "root command"}
	config := &cobra.Command{Use: "config", Short: "config command"}
	config.AddCommand(&cobra.Command{Use: "show", Short: "show command", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(config)
	return root
}

func TestGenerate_Markdown(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "removed_command.md")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	keep := filepath.Join(dir, "README.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0644))

	require.NoError(t, generate(newTestTree(), dir, formatMarkdown))

	content, err := os.ReadFile(filepath.Join(dir, "spektate_config_show.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "<!-- generated by tools/docgen from the spektate config show command; do not edit -->")
	assert.NotContains(t, string(content), "Auto generated by spf13/cobra")

	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)
}

func TestGenerate_Man(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, generate(newTestTree(), dir, formatMan))

	assert.FileExists(t, filepath.Join(dir, "spektate.1"))
	assert.FileExists(t, filepath.Join(dir, "spektate-config-show.1"))
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	err := generate(newTestTree(), t.TempDir(), "html")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "html"`)
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "spektate_config_show", linkHandler("spektate_config_show.md"))
	assert.Equal(t, "spektate-author", linkHandler("Spektate Author.md"))
}

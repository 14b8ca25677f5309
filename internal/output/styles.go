/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
)

// StyleSet contains the styles used for terminal output
type StyleSet struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style

	useColour bool
}

// NewStyleSet creates a style set from Fang's color scheme so report output
// matches the help and error output.
//
// Color mapping:
//   - Title        -> section titles
//   - Argument     -> keys
//   - Base         -> values
//   - Comment      -> unknown values, hints
//   - Flag         -> valid / found
//   - ErrorDetails -> invalid / errors
func NewStyleSet(useColour bool) *StyleSet {
	s := &StyleSet{useColour: useColour}

	if !useColour {
		plain := lipgloss.NewStyle()
		s.Title = plain
		s.Key = plain
		s.Value = plain
		s.Subtle = plain
		s.Success = plain
		s.Error = plain
		return s
	}

	hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	scheme := fang.DefaultColorScheme(lipgloss.LightDark(hasDark))

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(scheme.Title)
	s.Key = lipgloss.NewStyle().Foreground(scheme.Argument)
	s.Value = lipgloss.NewStyle().Foreground(scheme.Base)
	s.Subtle = lipgloss.NewStyle().Foreground(scheme.Comment)
	s.Success = lipgloss.NewStyle().Foreground(scheme.Flag).Bold(true)
	s.Error = lipgloss.NewStyle().Foreground(scheme.ErrorDetails).Bold(true)

	return s
}

// UseColour reports whether the style set emits colour
func (s *StyleSet) UseColour() bool {
	return s.useColour
}

// ShouldUseColour reports whether stdout is a terminal and NO_COLOR is unset
func ShouldUseColour() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

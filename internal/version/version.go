/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package version exposes build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Set at build time, e.g. -ldflags "-X github.com/orien/spektate/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Details describes the running binary
type Details struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the metadata of the running binary
func Current() Details {
	return Details{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the details as a multi-line block for --version
func (d Details) String() string {
	return fmt.Sprintf(`spektate %s
  Git commit: %s
  Build date: %s
  Go version: %s
  Platform:   %s`, d.Version, d.GitCommit, d.BuildDate, d.GoVersion, d.Platform)
}

// Fields returns the details as structured log fields
func (d Details) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", d.Version),
		zap.String("commit", d.GitCommit),
		zap.String("built", d.BuildDate),
		zap.String("go", d.GoVersion),
		zap.String("platform", d.Platform),
	}
}

// Info returns formatted version information for display to users
func Info() string {
	return Current().String()
}

// Short returns just the version string
func Short() string {
	return Version
}

/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package logging builds the zap logger used by the command line.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New creates a logger writing to stderr. Verbose enables debug output.
func New(verbose bool, format string) (*zap.Logger, error) {
	return NewWithWriter(os.Stderr, verbose, format)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, verbose bool, format string) (*zap.Logger, error) {
	encoder, err := newEncoder(format)
	if err != nil {
		return nil, err
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (want %s or %s)", format, FormatConsole, FormatJSON)
	}
}

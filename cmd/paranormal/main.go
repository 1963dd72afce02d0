// Package main provides the paranormal CLI: inspect registered
// parameter definitions, derive and run their command lines, and
// convert serialized instances between YAML and JSON without
// disturbing key order.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	// Register the demo definitions so the registry-backed commands
	// have types to resolve.
	_ "github.com/caryan/paranormal/examples/sweep"
)

type envConfig struct {
	// ENV: PARANORMAL_LOG_LEVEL one of debug, info, warn, error
	LogLevel string `env:"PARANORMAL_LOG_LEVEL,default=info"`
	// ENV: PARANORMAL_LOG_FORMAT text or json
	LogFormat string `env:"PARANORMAL_LOG_FORMAT,default=text"`
}

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "paranormal",
	Short: "Inspect parameter definitions and their serialized instances",
	Long: `paranormal works with declarative parameter definitions: list the
registered types, print their JSON schema, parse a command line derived
from a definition, resolve serialized instances back into typed values
and transcode instance files between YAML and JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	var cfg envConfig
	_ = envdecode.Decode(&cfg)
	logger = newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds an isolated slog.Logger, no global state.
func newLogger(levelStr, formatStr string, out io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}

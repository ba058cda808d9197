package main

import (
	"hue/internal/config"
	"hue/internal/logging"
	"hue/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hue",
	Short: "hue - color and mascot demo server",
	Long: `hue serves a small set of HTML pages that pair a fixed color registry
with animal mascots read from a JSON data file. The registry is baked into
the binary; the animal file is re-read on every request so edits show up
without a restart.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("hue version {{.Version}}\n")
}

// newLogger builds the logger described by the loaded configuration.
// Load already validated the level and format, so the fallbacks only
// matter for hand-built configs.
func newLogger(cfg *config.Config) *logging.Logger {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.InfoLevel
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		format = logging.HumanFormat
	}

	return logging.NewLogger(logging.Config{
		Format: format,
		Level:  level,
	})
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hue/internal/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hue configuration",
	Long:  "View the hue configuration loaded from config.json and the environment",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the configuration the server would run with.

Examples:
  hue config show                # Pretty-print current config
  hue config show --format json  # Raw JSON output`,
	Run: runConfigShow,
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List supported environment variables",
	Long:  "Display all supported hue environment variable overrides",
	Run:   runConfigEnv,
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "human", "Output format (json, human)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEnvCmd)
	rootCmd.AddCommand(configCmd)
}

// ConfigShowResponse is the response format for config show
type ConfigShowResponse struct {
	ConfigPath   string               `json:"configPath,omitempty"`
	UsedDefaults bool                 `json:"usedDefaults"`
	EnvOverrides []config.EnvOverride `json:"envOverrides,omitempty"`
	Config       *config.Config       `json:"config"`
}

func runConfigShow(cmd *cobra.Command, args []string) {
	result, err := config.LoadWithDetails(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if configFormat == "json" {
		outputConfigJSON(result)
	} else {
		outputConfigHuman(result)
	}
}

func outputConfigJSON(result *config.LoadResult) {
	response := ConfigShowResponse{
		ConfigPath:   result.ConfigPath,
		UsedDefaults: result.UsedDefaults,
		EnvOverrides: result.EnvOverrides,
		Config:       result.Config,
	}

	output, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}

func outputConfigHuman(result *config.LoadResult) {
	fmt.Println("hue Configuration")
	fmt.Println(strings.Repeat("─", 50))

	// Source info
	if result.UsedDefaults {
		fmt.Println("Source: defaults (no config file found)")
	} else if result.ConfigPath != "" {
		fmt.Printf("Source: %s\n", result.ConfigPath)
	}

	// Env overrides
	if len(result.EnvOverrides) > 0 {
		fmt.Println("\nEnvironment Overrides:")
		for _, ov := range result.EnvOverrides {
			fmt.Printf("  %s=%s → %s\n", ov.EnvVar, ov.FromValue, ov.Path)
		}
	}

	fmt.Println()

	cfg := result.Config
	defaults := config.DefaultConfig()

	fmt.Println("server:")
	printConfigSection("  host", cfg.Server.Host, defaults.Server.Host)
	printConfigSection("  port", cfg.Server.Port, defaults.Server.Port)

	fmt.Println("\nmascots:")
	printConfigSection("  source", cfg.Mascots.Source, defaults.Mascots.Source)
	printConfigSection("  cache", cfg.Mascots.Cache, defaults.Mascots.Cache)

	fmt.Println("\nlogging:")
	printConfigSection("  level", cfg.Logging.Level, defaults.Logging.Level)
	printConfigSection("  format", cfg.Logging.Format, defaults.Logging.Format)

	fmt.Println("\nmetrics:")
	printConfigSection("  enabled", cfg.Metrics.Enabled, defaults.Metrics.Enabled)

	fmt.Println()
	fmt.Println("Use 'hue config show --format json' for machine-readable output")
	fmt.Println("Use 'hue config env' to see supported environment variables")
}

func printConfigSection(name string, value, defaultValue interface{}) {
	modified := ""
	if fmt.Sprintf("%v", value) != fmt.Sprintf("%v", defaultValue) {
		modified = fmt.Sprintf(" (default: %v)", defaultValue)
	}
	fmt.Printf("%s: %v%s\n", name, value, modified)
}

func runConfigEnv(cmd *cobra.Command, args []string) {
	fmt.Println("Supported hue Environment Variables")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println()

	descriptions := map[string]string{
		"HUE_CONFIG_PATH":     "Path to config file (string)",
		"HUE_PORT":            "Server listen port (int)",
		"HUE_HOST":            "Server bind address (string)",
		"HUE_MASCOTS":         "Path to the animal data file (string)",
		"HUE_MASCOTS_CACHE":   "Cache the decoded data file (bool)",
		"HUE_LOG_LEVEL":       "Log level (debug, info, warn, error)",
		"HUE_LOG_FORMAT":      "Log format (human, json)",
		"HUE_METRICS_ENABLED": "Expose the /metrics endpoint (bool)",
	}

	for _, name := range config.GetSupportedEnvVars() {
		fmt.Printf("  %-22s %s\n", name, descriptions[name])
	}

	fmt.Println()
	fmt.Println("Example usage:")
	fmt.Println("  HUE_PORT=3000 hue serve")
	fmt.Println("  HUE_LOG_LEVEL=debug hue serve")
	fmt.Println("  HUE_CONFIG_PATH=/etc/hue/config.json hue serve")
}

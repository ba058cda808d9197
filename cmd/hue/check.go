package main

import (
	"fmt"
	"strings"

	"hue/internal/config"
	"hue/internal/mascot"

	"github.com/spf13/cobra"
)

var checkMascots string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the animal data file",
	Long: `Read the animal data file once and report how many records decoded,
how many were skipped, and which variants are available. Exits non-zero
when the file is missing or not valid JSON.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkMascots, "mascots", "", "Path to the animal data file (overrides config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := checkMascots
	if path == "" {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		path = cfg.Mascots.Source
	}

	stats, err := mascot.NewSource(path).Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Animal data: %s\n", path)
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Records:  %d\n", stats.Entries)
	fmt.Printf("Skipped:  %d\n", stats.Skipped)
	if len(stats.Variants) > 0 {
		fmt.Printf("Variants: %s\n", strings.Join(stats.Variants, ", "))
	}

	if stats.Skipped > 0 {
		fmt.Println()
		fmt.Printf("Warning: %d malformed records were ignored\n", stats.Skipped)
	}

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"hue/internal/palette"

	"github.com/spf13/cobra"
)

var colorsFormat string

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the color registry",
	Long: `Print every color in the fixed registry, in registry order. The first
entry is the default the server falls back to.`,
	Run: runColors,
}

func init() {
	colorsCmd.Flags().StringVar(&colorsFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) {
	colors := palette.All()

	if colorsFormat == "json" {
		output, err := json.MarshalIndent(colors, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(output))
		return
	}

	first := palette.First()
	for _, c := range colors {
		marker := ""
		if c.Name == first.Name {
			marker = " (default)"
		}
		fmt.Printf("%-8s %s%s\n", c.Name, c.Hex, marker)
	}
}

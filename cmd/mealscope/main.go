// Package main provides the mealscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions carries the global flags shared by every subcommand.
type rootOptions struct {
	input  string
	config string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mealscope",
		Short: "Dish nutrition and popularity match analysis",
		Long: `MealScope scores a dish catalog with the CD-NDI nutrition index, matches
nutrition against student popularity, and renders reports, scatter charts,
and daily combination picks.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&opts.input, "input", "dishes.json", "Catalog location (path, http(s)://, s3://, gs://)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "Config file (default: .mealscope/config.yaml, searched upwards)")

	rootCmd.AddCommand(
		newAnalyzeCmd(opts),
		newChartCmd(opts),
		newComboCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mealscope version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mealscope " + version)
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

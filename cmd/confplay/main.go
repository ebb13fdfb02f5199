package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/confplay/config"
)

var version = "dev"

var (
	inputFile    string
	jsonOutput   bool
	revealSecret bool
)

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "confplay",
	Short:   "Utility to test out configuration layering",
	Long: `Confplay resolves its settings from four layered sources, lowest to
highest priority:

  1. Baseline config compiled into the binary
  2. Runtime config file at ./configuration/settings.yaml (optional)
  3. Environment variables prefixed with CONFPLAY__ (nested keys joined
     with a double underscore, e.g. CONFPLAY__SOMESTRUCT__SOMEINT)
  4. Command line flags

and prints the result. The secret setting is shown redacted unless
--reveal-secret is given.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(cmd)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.Flags().StringVarP(&inputFile, "input-file", "i", "", "optional input file to process")
	rootCmd.Flags().String("somestring", "", "somestring setting")
	rootCmd.Flags().String("someoptionalstring", "", "someoptionalstring setting")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.Flags().BoolVar(&revealSecret, "reveal-secret", false, "print the secret value in cleartext")

	rootCmd.AddCommand(initCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	settings, err := config.Resolve(nil, cmd.Flags())
	if err != nil {
		return fmt.Errorf("resolve configuration: %w", err)
	}

	if inputFile != "" {
		slog.Info("input file selected", "path", inputFile)
	}
	slog.Debug("configuration resolved",
		"somestring", settings.Somestring,
		"somesecret", settings.Somesecret,
	)

	return printSettings(os.Stdout, settings, jsonOutput, revealSecret)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/confplay/config"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter runtime config file",
	Long: `Write a starter runtime config file to ./configuration/settings.yaml.

The runtime file overrides the baseline compiled into the binary and is in
turn overridden by CONFPLAY__* environment variables and command line
flags. Delete the keys you do not want to override.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing runtime config file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := filepath.FromSlash(config.RuntimeFile)

	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	sample := map[string]any{
		"somestring": "runtime",
		"somestruct": map[string]any{"someint": 42},
	}
	out, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("marshal starter config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

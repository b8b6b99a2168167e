package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"jobpulse/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long:  "Writes the default config to <data-dir>/config.yml (or --config). An existing file is kept as .bak when --force is given.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := initConfig(flagDataDir, flagConfigPath, configInitForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the effective config and report errors and warnings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, res, path, err := resolveConfig(configOptions{DataDir: flagDataDir, ConfigPath: flagConfigPath})
		if err != nil {
			return err
		}
		return reportValidation(cmd.OutOrStdout(), path, res)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config after env and defaults are applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, path, err := resolveConfig(configOptions{DataDir: flagDataDir, ConfigPath: flagConfigPath})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(&cfg); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd, configValidateCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig(dataDir, path string, force bool) (string, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if path == "" {
		path = filepath.Join(dataDir, config.FileName)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	cfg := config.Default()
	cfg.App.DataDir = dataDir
	if err := config.SaveAtomic(path, cfg); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

func reportValidation(w io.Writer, path string, res config.Validation) error {
	for _, e := range res.Errors {
		fmt.Fprintf(w, "error:   %s\n", e)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	if !res.OK() {
		return fmt.Errorf("%s: %d error(s)", path, len(res.Errors))
	}
	fmt.Fprintf(w, "%s: OK (%d warning(s))\n", path, len(res.Warnings))
	return nil
}

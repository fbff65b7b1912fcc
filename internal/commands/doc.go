// Package commands provides the command-line interface for the gotp tool.
//
// It implements commands for:
//   - pad generation
//   - encryption
//   - decryption
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gotp/internal/config"
)

// preRun returns a PreRunE handler that binds flags into cfg, resolves
// positional args into cfg.Files, and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := bind(cfg, cmd); err != nil {
			return err
		}

		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return cfg.Validate()
	}
}

// bind merges root and command flags into cfg via viper.
func bind(cfg *config.Config, cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Root().Flags()); err != nil {
		return fmt.Errorf("binding root flags: %w", err)
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

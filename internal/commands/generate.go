package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/gotp/internal/config"
	"github.com/idelchi/gotp/internal/padfile"
	"github.com/idelchi/gotp/pkg/otp"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a one-time pad",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bind(cfg, cmd); err != nil {
				return err
			}

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			pad, err := otp.GeneratePad(cfg.Length)
			if err != nil {
				return fmt.Errorf("generating pad: %w", err)
			}

			if cfg.Out != "" {
				return padfile.Write(cfg.Out, pad)
			}

			fmt.Println(hex.EncodeToString(pad)) //nolint:forbidigo

			return nil
		},
	}

	cmd.Flags().IntP("length", "l", 32, "Pad length in bytes")
	cmd.Flags().StringP("out", "o", "", "Write the raw pad to a file instead of printing hex")

	return cmd
}

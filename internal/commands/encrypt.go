package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gotp/internal/config"
	"github.com/idelchi/gotp/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt files with fresh one-time pads",
		Long: `Encrypt files with fresh one-time pads.
Each file gets its own pad of exactly the body length, written alongside the
ciphertext. Zero-byte files are rejected: there is nothing for a pad to cover.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}

package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gotp/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gotp [flags] command [flags]"
	root.Short = "One-time-pad file encryption utility"
	root.Long = `A one-time-pad file encryption utility.
Each file is encrypted with a fresh random pad of exactly its own length,
written alongside the ciphertext. The same pad decrypts the file and must
never be reused for another message.`

	root.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().BoolP("delete", "d", false, "Delete the original file (and, on decryption, its consumed pad) after success")
	root.Flags().Bool("dry", false, "Preview the files that would be processed")
	root.Flags().Bool("stats", false, "Print processing statistics")
	root.Flags().Bool("preserve-timestamps", false, "Preserve the source file's modification time on the output")

	root.Flags().StringSliceP("include", "i", nil, "Glob patterns to include when walking directories")
	root.Flags().StringSliceP("exclude", "e", nil, "Glob patterns to exclude when walking directories")
	root.Flags().String("include-from", "", "Path to a JSONC file with include patterns")
	root.Flags().String("exclude-from", "", "Path to a JSONC file with exclude patterns")

	root.Flags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	root.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
	root.Flags().String("pad-ext", ".pad", "Suffix for pad files written alongside encrypted files")

	root.Flags().String("pad-hex", "", "Hex-encoded pad for a single file, instead of pad files")
	root.Flags().String("pad-file", "", "Path to a raw pad file for a single file, instead of derived pad paths")

	root.AddCommand(NewGenerateCommand(cfg), NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}

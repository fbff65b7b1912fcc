// Command gotp encrypts and decrypts files with one-time pads.
package main

import (
	"os"

	"github.com/idelchi/gotp/internal/commands"
	"github.com/idelchi/gotp/internal/config"
)

// version is set at build time.
//
//nolint:gochecknoglobals
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}

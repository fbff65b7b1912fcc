package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Pad holds the two mutually exclusive ways to supply an existing pad for
// single-file decryption.
type Pad struct {
	// Hex is a hex-encoded pad passed directly on the command line.
	Hex string `mapstructure:"pad-hex" validate:"omitempty,hexadecimal,exclusive=File"`

	// File is the path to a raw pad file.
	File string `mapstructure:"pad-file"`
}

// Suffixes holds the file extensions applied during processing.
type Suffixes struct {
	// Encrypt is appended to encrypted files.
	Encrypt string `mapstructure:"encrypt-ext" validate:"required"`

	// Decrypt is appended to decrypted files, after stripping the encrypted suffix.
	Decrypt string `mapstructure:"decrypt-ext"`

	// Pad is appended to pad files written alongside encrypted output.
	Pad string `mapstructure:"pad-ext" validate:"required,nefield=Encrypt"`
}

// Config holds the application configuration.
type Config struct {
	// Common flags
	Parallel           int `validate:"min=1"`
	Quiet              bool
	Delete             bool
	Dry                bool
	Stats              bool
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	Pad      Pad      `mapstructure:",squash"`
	Suffixes Suffixes `mapstructure:",squash"`

	// File selection
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from"`
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Generate-specific flags
	Length int `validate:"min=0"`
	Out    string

	// Set by the subcommands
	Decrypt bool

	// Positional arguments
	Files []string
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// Package padfile reads and writes raw one-time pad files.
//
// Pads are key material: files are written atomically with owner-only
// permissions, and buffers can be wiped with Zero once the transform is done.
package padfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idelchi/gogen/pkg/key"
)

// ErrEmptyPad is returned when a pad file or hex string decodes to zero bytes.
var ErrEmptyPad = errors.New("pad is empty")

// Read loads a raw pad file.
func Read(path string) ([]byte, error) {
	pad, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading pad file %q: %w", path, err)
	}

	if len(pad) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPad, path)
	}

	return pad, nil
}

// FromHex decodes a hex-encoded pad supplied on the command line.
func FromHex(padHex string) ([]byte, error) {
	pad, err := key.FromHex(padHex)
	if err != nil {
		return nil, fmt.Errorf("decoding hex pad: %w", err)
	}

	if len(pad) == 0 {
		return nil, ErrEmptyPad
	}

	return pad, nil
}

// Write writes the pad to path atomically with owner read/write permissions.
func Write(path string, pad []byte) (err error) {
	const ownerReadWrite = 0o600

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pad-*")
	if err != nil {
		return fmt.Errorf("creating temporary pad file: %w", err)
	}

	defer func() {
		tmp.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmp.Name()) //nolint:gosec // best-effort cleanup
		}
	}()

	if err = os.Chmod(tmp.Name(), ownerReadWrite); err != nil {
		return fmt.Errorf("setting pad file permissions: %w", err)
	}

	if _, err = tmp.Write(pad); err != nil {
		return fmt.Errorf("writing pad file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing pad file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming pad file: %w", err)
	}

	return nil
}

// Zero wipes the pad in place with a doubling copy.
func Zero(pad []byte) {
	if len(pad) == 0 {
		return
	}

	pad[0] = 0

	for ofs := 1; ofs < len(pad); ofs *= 2 {
		copy(pad[ofs:], pad[:ofs])
	}
}

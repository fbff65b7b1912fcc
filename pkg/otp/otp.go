package otp

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Reader is the entropy source used by GeneratePad. It defaults to the
// operating system's CSPRNG and is a variable so tests can simulate a failing
// source.
//
//nolint:gochecknoglobals
var Reader io.Reader = rand.Reader

// GeneratePad returns a pad of exactly length bytes filled from the secure
// random source. A length of zero yields an empty pad without error; the
// transform functions reject empty buffers instead.
func GeneratePad(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("pad length must be non-negative, got %d", length)
	}

	pad := make([]byte, length)

	if _, err := io.ReadFull(Reader, pad); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return pad, nil
}

// Encrypt combines pad and plaintext byte-wise with XOR, returning a freshly
// allocated ciphertext of the same length. Neither input is mutated.
func Encrypt(pad, plaintext []byte) ([]byte, error) {
	return combine(pad, plaintext)
}

// Decrypt recovers the plaintext from ciphertext using the same pad that
// encrypted it. It is the identical operation to Encrypt, so
// Decrypt(pad, Encrypt(pad, x)) == x for any equal-length nonzero pair.
func Decrypt(pad, ciphertext []byte) ([]byte, error) {
	return combine(pad, ciphertext)
}

// Transform writes pad XOR data into dst, which must be the same length as
// the inputs. Every index is independent, so callers may partition a large
// buffer and run Transform on disjoint dst/pad/data slices concurrently.
func Transform(dst, pad, data []byte) error {
	if err := check(pad, data); err != nil {
		return err
	}

	if len(dst) != len(data) {
		return fmt.Errorf("%w: dst %d bytes, data %d bytes", ErrLengthMismatch, len(dst), len(data))
	}

	xorBytes(dst, pad, data)

	return nil
}

// combine validates the inputs and XORs them into a new buffer.
func combine(pad, data []byte) ([]byte, error) {
	if err := check(pad, data); err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	xorBytes(out, pad, data)

	return out, nil
}

// check enforces the shared preconditions of all transform operations.
// Emptiness is checked before length so that an empty input always surfaces
// as ErrEmptyBuffer, even against a non-empty peer.
func check(pad, data []byte) error {
	if len(pad) == 0 || len(data) == 0 {
		return ErrEmptyBuffer
	}

	if len(pad) != len(data) {
		return fmt.Errorf("%w: pad %d bytes, data %d bytes", ErrLengthMismatch, len(pad), len(data))
	}

	return nil
}

// xorBytes assumes all three slices share the same length.
func xorBytes(dst, pad, data []byte) {
	for i := range data {
		dst[i] = pad[i] ^ data[i]
	}
}

package encryption

import "errors"

var (
	// ErrEnvelope indicates a malformed or unsupported envelope header.
	ErrEnvelope = errors.New("envelope processing error")
	// ErrPadShared is returned when a fixed pad is supplied for more than one file.
	ErrPadShared = errors.New("a pad must not be shared across files")
	// ErrEmptyFile is returned for zero-byte inputs: a pad must match the
	// body length exactly, so there is nothing to encrypt or decrypt.
	ErrEmptyFile = errors.New("file is empty")
)

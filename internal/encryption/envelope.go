package encryption

import (
	"bytes"
	"fmt"
)

const (
	envelopeMagic   = "GOTP"
	envelopeVersion = byte(1)

	envelopeFlagExec = 0x01
)

type envelopeMode byte

// modePad is the only mode: the body is pad XOR data.
const modePad envelopeMode = 0x01

const envelopeHeaderSize = len(envelopeMagic) + 3

// newEnvelopeHeader builds the fixed-size header prepended to every
// encrypted file. The pad covers only the body, never the header.
func newEnvelopeHeader(executable bool) []byte {
	header := make([]byte, envelopeHeaderSize)
	copy(header, []byte(envelopeMagic))

	header[len(envelopeMagic)] = envelopeVersion

	var flags byte

	if executable {
		flags |= envelopeFlagExec
	}

	header[len(envelopeMagic)+1] = flags
	header[len(envelopeMagic)+2] = byte(modePad)

	return header
}

// parseEnvelopeHeader validates the header and returns the executable flag.
func parseEnvelopeHeader(header []byte) (bool, error) {
	if len(header) != envelopeHeaderSize {
		return false, fmt.Errorf("%w: envelope header too short", ErrEnvelope)
	}

	if !bytes.Equal(header[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return false, fmt.Errorf("%w: invalid envelope magic", ErrEnvelope)
	}

	version := header[len(envelopeMagic)]
	if version != envelopeVersion {
		return false, fmt.Errorf("%w: unsupported envelope version %d", ErrEnvelope, version)
	}

	flags := header[len(envelopeMagic)+1]

	if mode := envelopeMode(header[len(envelopeMagic)+2]); mode != modePad {
		return false, fmt.Errorf("%w: unsupported envelope mode %d", ErrEnvelope, mode)
	}

	executable := flags&envelopeFlagExec != 0

	return executable, nil
}

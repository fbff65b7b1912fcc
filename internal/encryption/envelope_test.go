package encryption

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeHeaderRoundTrip(t *testing.T) {
	for _, executable := range []bool{false, true} {
		header := newEnvelopeHeader(executable)
		require.Len(t, header, envelopeHeaderSize)

		exec, err := parseEnvelopeHeader(header)
		require.NoError(t, err)
		require.Equal(t, executable, exec)
	}
}

func TestParseEnvelopeHeaderRejects(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := parseEnvelopeHeader([]byte("GOT"))
		require.ErrorIs(t, err, ErrEnvelope)
	})

	t.Run("bad magic", func(t *testing.T) {
		header := newEnvelopeHeader(false)
		header[0] = 'X'

		_, err := parseEnvelopeHeader(header)
		require.ErrorIs(t, err, ErrEnvelope)
	})

	t.Run("unknown version", func(t *testing.T) {
		header := newEnvelopeHeader(false)
		header[len(envelopeMagic)] = 99

		_, err := parseEnvelopeHeader(header)
		require.ErrorIs(t, err, ErrEnvelope)
	})

	t.Run("unknown mode", func(t *testing.T) {
		header := newEnvelopeHeader(false)
		header[len(envelopeMagic)+2] = 0xee

		_, err := parseEnvelopeHeader(header)
		require.ErrorIs(t, err, ErrEnvelope)
	})
}

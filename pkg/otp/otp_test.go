package otp_test

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"testing/iotest"

	"github.com/idelchi/gotp/pkg/otp"
)

func randomData(t *testing.T, length int) []byte {
	t.Helper()

	data, err := otp.GeneratePad(length)
	if err != nil {
		t.Fatalf("generating random data: %v", err)
	}

	return data
}

func TestGeneratePadFillsBuffer(t *testing.T) {
	empty := make([]byte, 64)

	pad, err := otp.GeneratePad(64)
	if err != nil {
		t.Fatalf("GeneratePad: %v", err)
	}

	if len(pad) != 64 {
		t.Fatalf("pad length = %d, want 64", len(pad))
	}

	if bytes.Equal(pad, empty) {
		t.Error("64-byte pad equals the all-zero buffer")
	}
}

func TestGeneratePadsDiffer(t *testing.T) {
	first, err := otp.GeneratePad(64)
	if err != nil {
		t.Fatalf("GeneratePad: %v", err)
	}

	second, err := otp.GeneratePad(64)
	if err != nil {
		t.Fatalf("GeneratePad: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("two generated pads are identical")
	}
}

func TestGeneratePadZeroLength(t *testing.T) {
	pad, err := otp.GeneratePad(0)
	if err != nil {
		t.Fatalf("GeneratePad(0): %v", err)
	}

	if len(pad) != 0 {
		t.Errorf("pad length = %d, want 0", len(pad))
	}
}

func TestGeneratePadNegativeLength(t *testing.T) {
	if _, err := otp.GeneratePad(-1); err == nil {
		t.Error("GeneratePad(-1) succeeded, want error")
	}
}

func TestGeneratePadSourceFailure(t *testing.T) {
	orig := otp.Reader

	otp.Reader = iotest.ErrReader(errors.New("entropy pool exhausted"))

	defer func() { otp.Reader = orig }()

	_, err := otp.GeneratePad(16)
	if !errors.Is(err, otp.ErrRandomSource) {
		t.Errorf("error = %v, want ErrRandomSource", err)
	}
}

func TestEncryptThenDecrypt(t *testing.T) {
	plaintext := []byte{1, 2, 3, 4, 5, 6, 7}
	pad := []byte{7, 6, 5, 4, 3, 2, 1}

	ciphertext, err := otp.Encrypt(pad, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if bytes.Equal(ciphertext, plaintext) {
		t.Error("ciphertext equals plaintext")
	}

	decrypted, err := otp.Decrypt(pad, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if bytes.Equal(ciphertext, decrypted) {
		t.Error("ciphertext equals decrypted output")
	}

	if !bytes.Equal(plaintext, decrypted) {
		t.Errorf("round trip = %v, want %v", decrypted, plaintext)
	}
}

func TestKnownVector(t *testing.T) {
	pad := []byte{0, 1, 255, 0, 1, 255, 0, 1, 255}
	plaintext := []byte{0, 0, 0, 1, 1, 1, 255, 255, 255}
	want := []byte{0, 1, 255, 1, 0, 254, 255, 254, 0}

	got, err := otp.Encrypt(pad, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("Encrypt = %v, want %v", got, want)
	}
}

func TestRoundTripSizes(t *testing.T) {
	for _, size := range []int{1, 10, 1000, 100000} {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			plaintext := randomData(t, size)

			pad, err := otp.GeneratePad(size)
			if err != nil {
				t.Fatalf("GeneratePad: %v", err)
			}

			ciphertext, err := otp.Encrypt(pad, plaintext)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}

			if len(ciphertext) != size {
				t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), size)
			}

			decrypted, err := otp.Decrypt(pad, ciphertext)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}

			if !bytes.Equal(plaintext, decrypted) {
				t.Error("round trip did not recover the plaintext")
			}
		})
	}
}

func TestPadIndependence(t *testing.T) {
	plaintext := randomData(t, 1000)

	pad, err := otp.GeneratePad(1000)
	if err != nil {
		t.Fatalf("GeneratePad: %v", err)
	}

	ciphertext, err := otp.Encrypt(pad, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	decrypted, err := otp.Decrypt(pad, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	newPad, err := otp.GeneratePad(1000)
	if err != nil {
		t.Fatalf("GeneratePad: %v", err)
	}

	newCiphertext, err := otp.Encrypt(newPad, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	newDecrypted, err := otp.Decrypt(newPad, newCiphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(decrypted, newDecrypted) {
		t.Error("decrypting with each pad recovered different plaintexts")
	}
}

func TestRejection(t *testing.T) {
	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := otp.Encrypt([]byte{7, 6, 5}, []byte{1, 2})
		if !errors.Is(err, otp.ErrLengthMismatch) {
			t.Errorf("error = %v, want ErrLengthMismatch", err)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		_, err := otp.Encrypt([]byte{}, []byte{})
		if !errors.Is(err, otp.ErrEmptyBuffer) {
			t.Errorf("error = %v, want ErrEmptyBuffer", err)
		}
	})

	t.Run("empty pad", func(t *testing.T) {
		_, err := otp.Encrypt(nil, []byte{1})
		if !errors.Is(err, otp.ErrEmptyBuffer) {
			t.Errorf("error = %v, want ErrEmptyBuffer", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := otp.Decrypt([]byte{1}, nil)
		if !errors.Is(err, otp.ErrEmptyBuffer) {
			t.Errorf("error = %v, want ErrEmptyBuffer", err)
		}
	})
}

func TestInputsNotMutated(t *testing.T) {
	pad := []byte{1, 2, 3, 4}
	data := []byte{5, 6, 7, 8}

	padCopy := bytes.Clone(pad)
	dataCopy := bytes.Clone(data)

	if _, err := otp.Encrypt(pad, data); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if !bytes.Equal(pad, padCopy) {
		t.Error("Encrypt mutated the pad")
	}

	if !bytes.Equal(data, dataCopy) {
		t.Error("Encrypt mutated the data")
	}
}

func TestTransformDisjointSlices(t *testing.T) {
	pad := randomData(t, 4096)
	data := randomData(t, 4096)

	want, err := otp.Encrypt(pad, data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got := make([]byte, 4096)
	half := len(data) / 2

	done := make(chan error, 2)

	go func() { done <- otp.Transform(got[:half], pad[:half], data[:half]) }()
	go func() { done <- otp.Transform(got[half:], pad[half:], data[half:]) }()

	for range 2 {
		if err := <-done; err != nil {
			t.Fatalf("Transform: %v", err)
		}
	}

	if !bytes.Equal(got, want) {
		t.Error("partitioned Transform differs from Encrypt")
	}
}

func TestTransformDstLength(t *testing.T) {
	err := otp.Transform(make([]byte, 3), []byte{1, 2}, []byte{3, 4})
	if !errors.Is(err, otp.ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}
}

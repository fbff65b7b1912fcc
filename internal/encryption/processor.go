package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gotp/internal/config"
	"github.com/idelchi/gotp/internal/fileutil"
	"github.com/idelchi/gotp/internal/padfile"
	"github.com/idelchi/gotp/pkg/otp"
)

// transformShardSize is the body size above which the XOR is partitioned
// across goroutines writing disjoint output ranges.
const transformShardSize = 1 << 20

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// pad is a fixed pad from --pad-hex or --pad-file; nil when pads are
	// generated (encrypt) or located next to the input (decrypt)
	pad []byte

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration,
// loading the fixed pad if one was supplied.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	var (
		pad []byte
		err error
	)

	switch {
	case cfg.Pad.Hex != "":
		pad, err = padfile.FromHex(cfg.Pad.Hex)
	case cfg.Pad.File != "":
		pad, err = padfile.Read(cfg.Pad.File)
	}

	if err != nil {
		return nil, fmt.Errorf("loading pad: %w", err)
	}

	// A pad protects exactly one message. Reusing it across files would
	// break the cipher, so a fixed pad is restricted to a single file.
	if pad != nil && len(cfg.Files) > 1 {
		return nil, fmt.Errorf("%w: %d files given", ErrPadShared, len(cfg.Files))
	}

	return &Processor{
		cfg:     cfg,
		pad:     pad,
		results: make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					if result.Pad != "" && !p.cfg.Decrypt {
						fmt.Printf("Processed %q -> %q (pad %q)\n", result.Input, result.Output, result.Pad) //nolint:forbidigo
					} else {
						fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
					}
				}
			}

			if p.cfg.Delete && result.Error == nil {
				targets := []string{result.Input}

				// A consumed pad is useless and dangerous to keep around.
				if p.cfg.Decrypt && result.Pad != "" {
					targets = append(targets, result.Pad)
				}

				for _, target := range targets {
					if err := os.Remove(target); err != nil {
						fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", target, err)
					} else if !p.cfg.Quiet {
						fmt.Printf("Deleted %q\n", target) //nolint:forbidigo
					}
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			size, padPath, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, Pad: padPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	padfile.Zero(p.pad)

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile handles the encryption or decryption of a single file.
// It writes output through a temporary file and renames it on completion.
//
//nolint:cyclop
func (p *Processor) processFile(filename, outPath string) (size int64, padPath string, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, "", fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	// A pad without its ciphertext must not survive a failed encryption.
	defer func() {
		if err != nil && padPath != "" && !p.cfg.Decrypt {
			os.Remove(padPath) //nolint:gosec // best-effort cleanup

			padPath = ""
		}
	}()

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, "", fmt.Errorf("reading input file: %w", err)
	}

	var exec bool

	if p.cfg.Decrypt {
		exec, padPath, err = p.decrypt(filename, data, tc)
	} else {
		exec = tc.IsExec
		padPath, err = p.encrypt(filename, data, tc)
	}

	if err != nil {
		return 0, "", err
	}

	const ownerReadWrite = 0o600

	perm := os.FileMode(ownerReadWrite)

	if exec {
		perm |= 0o111
	}

	if err = os.Chmod(tc.TmpName, perm); err != nil {
		return 0, "", fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tc.TmpFile.Close(); err != nil {
		return 0, "", fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tc.TmpName, outPath); err != nil {
		return 0, "", fmt.Errorf("renaming output file: %w", err)
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, "", fmt.Errorf("finalizing output: %w", err)
	}

	return size, padPath, nil
}

// encrypt generates a pad for the file body, writes header plus ciphertext to
// the temp file, and stores the pad. Returns the pad file path, empty when a
// fixed pad was supplied.
func (p *Processor) encrypt(filename string, data []byte, tc *fileutil.TempContext) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %q", ErrEmptyFile, filename)
	}

	pad := p.pad

	if pad == nil {
		var err error

		pad, err = otp.GeneratePad(len(data))
		if err != nil {
			return "", fmt.Errorf("generating pad: %w", err)
		}

		defer padfile.Zero(pad)
	}

	ciphertext, err := transform(pad, data)
	if err != nil {
		return "", fmt.Errorf("encrypting file: %w", err)
	}

	if _, err := tc.TmpFile.Write(newEnvelopeHeader(tc.IsExec)); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}

	if _, err := tc.TmpFile.Write(ciphertext); err != nil {
		return "", fmt.Errorf("writing ciphertext: %w", err)
	}

	if p.pad != nil {
		return "", nil
	}

	padPath := p.padPath(filename)

	if err := padfile.Write(padPath, pad); err != nil {
		return "", err
	}

	return padPath, nil
}

// decrypt parses the envelope, loads the pad, and writes the recovered
// plaintext to the temp file. Returns the executable flag and the pad file
// path, empty when a fixed pad was supplied.
func (p *Processor) decrypt(filename string, data []byte, tc *fileutil.TempContext) (bool, string, error) {
	if len(data) < envelopeHeaderSize {
		return false, "", fmt.Errorf("%w: file too short", ErrEnvelope)
	}

	exec, err := parseEnvelopeHeader(data[:envelopeHeaderSize])
	if err != nil {
		return false, "", err
	}

	body := data[envelopeHeaderSize:]

	if len(body) == 0 {
		return false, "", fmt.Errorf("%w: %q holds no ciphertext", ErrEmptyFile, filename)
	}

	pad := p.pad
	padPath := ""

	if pad == nil {
		padPath = p.padPath(filename)

		pad, err = padfile.Read(padPath)
		if err != nil {
			return false, "", err
		}

		defer padfile.Zero(pad)
	}

	plaintext, err := transform(pad, body)
	if err != nil {
		return false, "", fmt.Errorf("decrypting file: %w", err)
	}

	if _, err := tc.TmpFile.Write(plaintext); err != nil {
		return false, "", fmt.Errorf("writing plaintext: %w", err)
	}

	return exec, padPath, nil
}

// transform XORs pad and data into a fresh buffer. Bodies above
// transformShardSize are split into disjoint shards processed concurrently;
// small or invalid inputs take the direct path so validation errors surface
// from the core.
func transform(pad, data []byte) ([]byte, error) {
	if len(pad) != len(data) || len(data) <= transformShardSize {
		return otp.Encrypt(pad, data)
	}

	out := make([]byte, len(data))

	group := errgroup.Group{}

	for start := 0; start < len(data); start += transformShardSize {
		end := min(start+transformShardSize, len(data))

		group.Go(func() error {
			return otp.Transform(out[start:end], pad[start:end], data[start:end])
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}

// padPath derives the pad file path for an input file: the encrypted suffix
// is stripped (a no-op when encrypting) and the pad suffix appended, so
// "a.txt" and "a.txt.enc" both map to "a.txt.pad".
func (p *Processor) padPath(filename string) string {
	base := strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(base)+p.cfg.Suffixes.Pad)
}

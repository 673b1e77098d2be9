package verification

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/verify/internal/adapters/checksum"
	"github.com/iamNilotpal/verify/internal/adapters/compression"
	"github.com/iamNilotpal/verify/internal/core/domain"
	"github.com/iamNilotpal/verify/internal/core/ports"
	"github.com/iamNilotpal/verify/pkg/errors"
	"github.com/iamNilotpal/verify/pkg/logger"
	"github.com/iamNilotpal/verify/pkg/pool"
	"go.uber.org/zap"
)

// Verifier checks the size or digest of byte streams against expected values.
// It keeps no per-call state: every verification takes its own hash instance
// and read chunk, so one Verifier may be shared by concurrent callers as long
// as each call uses its own stream.
//
// Streams are read from their current position to EOF and are never rewound.
type Verifier struct {
	options      *domain.VerifyOptions   // Configuration controlling read behavior.
	log          *zap.SugaredLogger      // Structured logger for verification outcomes.
	chunks       *pool.ChunkPool         // Reusable read buffers of options.ChunkSize bytes.
	decompressor ports.DecompressionPort // Nil unless compressed input is enabled.
}

// New creates a Verifier. A nil opts uses the defaults; a nil log discards output.
func New(opts *domain.VerifyOptions, log *zap.SugaredLogger) (*Verifier, error) {
	if opts == nil {
		opts = &domain.VerifyOptions{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNop()
	}

	v := Verifier{
		log:     log,
		options: opts,
		chunks:  pool.NewChunkPool(int(opts.ChunkSize)),
	}

	if opts.CompressionOptions.Enable {
		z, err := compression.NewZstdDecompression(opts.CompressionOptions)
		if err != nil {
			return nil, err
		}
		v.decompressor = z
		log.Debugw(
			"decompression enabled",
			"compression", z.Name(), "decoder_concurrency", opts.CompressionOptions.DecoderConcurrency,
		)
	}

	return &v, nil
}

// SanitizeChecksumType normalizes raw to a canonical checksum type.
func (v *Verifier) SanitizeChecksumType(raw string) (domain.ChecksumType, error) {
	return checksum.Sanitize(raw)
}

// VerifySize reads r to EOF and fails with a VerificationError unless exactly
// expected bytes were read. Read errors are returned unchanged.
func (v *Verifier) VerifySize(r io.Reader, expected uint64) error {
	actual, err := v.consume(r, io.Discard)
	if err != nil {
		return err
	}

	if actual != expected {
		v.log.Warnw("size mismatch", "expected", expected, "actual", actual)
		return errors.NewSizeMismatchError(expected, actual)
	}

	v.log.Debugw("size verified", "size", actual)
	return nil
}

// VerifyChecksum hashes r with the algorithm named by checksumType and compares
// the lowercase hex digest to expected. An unsupported checksumType fails with
// an InvalidChecksumTypeError before anything is read.
func (v *Verifier) VerifyChecksum(r io.Reader, checksumType string, expected string) error {
	t, err := checksum.Sanitize(checksumType)
	if err != nil {
		return err
	}

	actual, size, err := v.sum(r, t)
	if err != nil {
		return err
	}

	if actual != expected {
		v.log.Warnw(
			"checksum mismatch", "algorithm", t, "expected", expected, "actual", actual, "size", size,
		)
		return errors.NewChecksumMismatchError(string(t), expected, actual)
	}

	v.log.Debugw("checksum verified", "algorithm", t, "checksum", actual, "size", size)
	return nil
}

// Sum returns the lowercase hex digest of r for checksumType.
func (v *Verifier) Sum(r io.Reader, checksumType string) (string, error) {
	t, err := checksum.Sanitize(checksumType)
	if err != nil {
		return "", err
	}

	digest, _, err := v.sum(r, t)
	return digest, err
}

func (v *Verifier) sum(r io.Reader, t domain.ChecksumType) (string, uint64, error) {
	hasher, err := checksum.Lookup(t)
	if err != nil {
		return "", 0, err
	}

	h := hasher.New()
	size, err := v.consume(r, h)
	if err != nil {
		return "", size, err
	}

	hexDigest := digest(h)
	v.log.Debugw("digest computed", "algorithm", hasher.Name(), "digest_size", hasher.Size(), "size", size)
	return hexDigest, size, nil
}

// consume copies r into w one chunk at a time and returns the byte count.
// When decompression is enabled the count and the bytes written to w refer
// to the decompressed payload.
func (v *Verifier) consume(r io.Reader, w io.Writer) (uint64, error) {
	if v.decompressor != nil {
		dr, err := v.decompressor.NewReader(r)
		if err != nil {
			return 0, err
		}
		defer dr.Close()
		r = dr
	}

	chunk := v.chunks.Get()
	defer v.chunks.Put(chunk)
	buf := *chunk

	var total uint64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += uint64(n)
			// hash.Hash and io.Discard never return an error from Write.
			w.Write(buf[:n])
		}

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func digest(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}

// ChunkSize reports the configured read chunk size in bytes.
func (v *Verifier) ChunkSize() int {
	return v.chunks.Size()
}

// Decompressing reports whether input streams are decompressed before measuring.
func (v *Verifier) Decompressing() bool {
	return v.decompressor != nil
}

// Package compression provides streaming decompression using the zstd algorithm,
// so compressed artifacts can be verified against their decompressed payload.
package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/verify/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// ZstdDecompression implements DecompressionPort. It holds no decoder state;
// every call to NewReader starts an independent streaming decoder, so one
// instance can serve concurrent verifications.
type ZstdDecompression struct {
	concurrency uint8
}

// NewZstdDecompression validates opts and returns a decompressor.
func NewZstdDecompression(opts *domain.CompressionOptions) (*ZstdDecompression, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}
	return &ZstdDecompression{concurrency: opts.DecoderConcurrency}, nil
}

// NewReader returns a reader yielding the decompressed contents of r.
// Decoding errors surface from Read. The caller must Close the reader to
// release decoder goroutines.
func (z *ZstdDecompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	opts := []zstd.DOption{}
	if z.concurrency > 0 {
		opts = append(opts, zstd.WithDecoderConcurrency(int(z.concurrency)))
	}

	decoder, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return decoder.IOReadCloser(), nil
}

func (z *ZstdDecompression) Name() string {
	return "zstd"
}

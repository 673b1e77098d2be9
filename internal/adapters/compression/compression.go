package compression

import (
	"fmt"

	"github.com/iamNilotpal/verify/internal/core/domain"
)

// MaxDecoderConcurrency bounds the goroutines a single decoder may start.
const MaxDecoderConcurrency uint8 = 16

// Returns CompressionOptions with decompression disabled. Streams are
// verified as-is unless a caller opts in.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             false,
		DecoderConcurrency: 0,
	}
}

// Checks that decoder settings are within their allowed ranges.
func Validate(input *domain.CompressionOptions) error {
	if input.DecoderConcurrency > MaxDecoderConcurrency {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", MaxDecoderConcurrency, input.DecoderConcurrency,
		)
	}
	return nil
}

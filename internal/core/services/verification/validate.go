package verification

import (
	"fmt"

	"github.com/iamNilotpal/verify/internal/adapters/compression"
	"github.com/iamNilotpal/verify/internal/core/domain"
	"github.com/iamNilotpal/verify/pkg/errors"
)

func Validate(opts *domain.VerifyOptions) error {
	if err := validateChunkSize(opts.ChunkSize); err != nil {
		return errors.NewValidationError("ChunkSize", opts.ChunkSize, err)
	}

	if opts.CompressionOptions != nil {
		if err := compression.Validate(opts.CompressionOptions); err != nil {
			return errors.NewValidationError(
				"CompressionOptions.DecoderConcurrency", opts.CompressionOptions.DecoderConcurrency, err,
			)
		}
	}

	return nil
}

func validateChunkSize(size uint32) error {
	if size < MinChunkSize {
		return fmt.Errorf("chunk size must be at least 4KB (4096 bytes), got %d bytes", size)
	}

	if size > MaxChunkSize {
		return fmt.Errorf("chunk size must not exceed 16MB (16777216 bytes), got %d bytes", size)
	}

	if size&(size-1) != 0 {
		return fmt.Errorf("chunk size must be a power of 2, got %d bytes", size)
	}

	return nil
}

package verification

import (
	"github.com/iamNilotpal/verify/internal/adapters/compression"
	"github.com/iamNilotpal/verify/internal/core/domain"
)

const (
	DefaultChunkSize = 65536 // 64KB

	MinChunkSize = 4096     // 4KB
	MaxChunkSize = 16777216 // 16MB
)

func prepareDefaults(opts *domain.VerifyOptions) *domain.VerifyOptions {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
	}

	return opts
}

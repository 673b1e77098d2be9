// Package domain defines the core types and options for stream verification.
package domain

// VerifyOptions defines the configuration parameters for a Verifier.
type VerifyOptions struct {
	// ChunkSize controls how many bytes are read from the stream per call
	// and fed into the hash. Larger chunks mean fewer reads but more memory
	// per verification. Must be a power of two between 4KB and 16MB.
	//
	// Default: 64KB
	ChunkSize uint32

	// CompressionOptions configures decompression of input streams.
	CompressionOptions *CompressionOptions
}

package domain

// CompressionOptions configures how compressed input streams are handled.
// When enabled, the verifier measures the decompressed payload instead of
// the raw bytes read from the stream.
type CompressionOptions struct {
	// Enable treats every input stream as a zstd frame sequence.
	//
	// Default: false
	Enable bool

	// DecoderConcurrency specifies the number of goroutines the zstd decoder
	// may use. Must be between 0 and 16. Zero lets the decoder pick.
	DecoderConcurrency uint8
}

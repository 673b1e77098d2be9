package ports

import "io"

// DecompressionPort turns a compressed stream into its decompressed payload.
// This allows us to swap compression formats without changing core logic.
type DecompressionPort interface {
	// NewReader wraps r. The returned reader must be closed by the caller.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Name returns the compression format name.
	Name() string
}

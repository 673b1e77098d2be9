package system

import (
	"context"
	"io"
)

// ContextReader bounds reads from an underlying reader by a context. Once the
// context is done, every Read returns the context's error without touching the
// underlying reader.
//
// A Read already blocked in the underlying reader is not interrupted; the
// error is reported on the next call. Readers that support deadlines (network
// connections, pipes) should set one as well.
type ContextReader struct {
	ctx context.Context
	r   io.Reader
}

// NewContextReader wraps r so that reads stop once ctx is done.
func NewContextReader(ctx context.Context, r io.Reader) *ContextReader {
	return &ContextReader{ctx: ctx, r: r}
}

func (cr *ContextReader) Read(p []byte) (int, error) {
	// Check before reading to provide fast feedback if the operation was
	// cancelled while the previous chunk was being processed.
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

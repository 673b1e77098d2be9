package pool

import (
	"sync"
)

// ChunkPool manages a pool of fixed size read buffers.
type ChunkPool struct {
	size int       // Size of each chunk.
	pool sync.Pool // Thread-safe pool of chunks.
}

// Creates a new chunk pool handing out buffers of the given size.
func NewChunkPool(size int) *ChunkPool {
	return &ChunkPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a chunk from the pool. len(*chunk) == Size().
func (cp *ChunkPool) Get() *[]byte {
	return cp.pool.Get().(*[]byte)
}

// Returns a chunk to the pool.
func (cp *ChunkPool) Put(buf *[]byte) {
	// Don't pool chunks that were resized by the caller.
	if buf == nil || len(*buf) != cp.size {
		return
	}
	cp.pool.Put(buf)
}

// Size returns the length of the chunks handed out by the pool.
func (cp *ChunkPool) Size() int {
	return cp.size
}

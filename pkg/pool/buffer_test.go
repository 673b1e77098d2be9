package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkPool(t *testing.T) {
	cp := NewChunkPool(4096)
	assert.Equal(t, 4096, cp.Size())

	buf := cp.Get()
	assert.Len(t, *buf, 4096)
	cp.Put(buf)

	again := cp.Get()
	assert.Len(t, *again, 4096)
}

func TestChunkPoolDropsResized(t *testing.T) {
	cp := NewChunkPool(4096)

	small := make([]byte, 16)
	cp.Put(&small)
	cp.Put(nil)

	assert.Len(t, *cp.Get(), 4096)
}

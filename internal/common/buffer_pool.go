package common

import (
	"bytes"
	"sync"
)

// BufferPool manages a pool of byte buffers to reduce allocations
type BufferPool struct {
	pool        sync.Pool
	maxCapacity int
}

// NewBufferPool creates a pool whose buffers start with initialCapacity.
// Buffers that grew beyond maxCapacity are dropped instead of being kept
// alive by the pool; zero keeps every buffer.
func NewBufferPool(initialCapacity, maxCapacity int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, initialCapacity))
			},
		},
		maxCapacity: maxCapacity,
	}
}

// Get retrieves an empty buffer from the pool
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.pool.Get().(*bytes.Buffer)
}

// Put returns a buffer to the pool after resetting it
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if bp.maxCapacity > 0 && buf.Cap() > bp.maxCapacity {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}

// Package bufpool pools byte slices used for element body staging (the
// matroska package's Crc32/Void child buffers), adapted from
// scigolib-hdf5's internal/utils buffer pool.
package bufpool

import "sync"

var pool = sync.Pool{
	New: func() any {
		return make([]byte, 0, 4096)
	},
}

// Get returns a slice of length size, reused from the pool when possible.
func Get(size int) []byte {
	buf := pool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// Put returns buf to the pool for reuse.
func Put(buf []byte) {
	pool.Put(buf[:0]) //nolint:staticcheck // sync.Pool wants the zero-length descriptor back
}

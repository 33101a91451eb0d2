// Package pool provides a sync.Pool-backed reusable byte buffer for the
// logpack encode path, adapted from the teacher's internal/pool
// ByteBufferPool. The teacher pools two buffer tiers sized for its
// columnar metric blobs and blob sets; logpack has neither concept, so
// this keeps only the single reusable-buffer idea, sized instead for a
// typical encoded log record, and drops the Blob/BlobSet naming and
// two-tier thresholds that only made sense for columnar storage.
package pool

import "sync"

// DefaultSize is the initial capacity of a pooled Buffer, sized for a
// typical encoded log record rather than a metric blob.
const DefaultSize = 256

// MaxRetainedSize caps what Put keeps in the pool. A Buffer grown past
// this (e.g. for one unusually large record) is dropped instead of
// pinning that memory for the life of the pool.
const MaxRetainedSize = 64 * 1024

// Buffer is a reusable byte slice. Grow ensures capacity for a total
// length of n bytes, the same "grow to fit, never shrink" contract the
// teacher's ByteBuffer uses.
type Buffer struct {
	B []byte
}

func newBuffer() *Buffer {
	return &Buffer{B: make([]byte, 0, DefaultSize)}
}

// Grow ensures cap(b.B) >= n and sets len(b.B) == n.
func (b *Buffer) Grow(n int) {
	if cap(b.B) < n {
		b.B = make([]byte, n)
		return
	}
	b.B = b.B[:n]
}

// Reset zeroes the buffer's bytes and sets it back to zero length
// without releasing capacity.
func (b *Buffer) Reset() {
	clear(b.B)
	b.B = b.B[:0]
}

var defaultPool = sync.Pool{New: func() any { return newBuffer() }}

// Get returns a Buffer from the pool grown to exactly n bytes. The
// returned Buffer must be released with Put once the caller is done
// with its contents.
func Get(n int) *Buffer {
	b := defaultPool.Get().(*Buffer)
	b.Grow(n)
	return b
}

// Put returns b to the pool. Buffers grown past MaxRetainedSize are
// discarded rather than retained, so one oversized record doesn't pin
// that memory in the pool indefinitely.
func Put(b *Buffer) {
	if cap(b.B) > MaxRetainedSize {
		return
	}
	b.Reset()
	defaultPool.Put(b)
}

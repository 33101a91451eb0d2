// Package wire implements the bounded byte-cursor buffers and the
// fixed-width/variable-length primitive codec that sit under the
// logpack binary format (spec.md §4.1, §4.2).
//
// All multi-byte integers on the wire are little-endian; there is no
// alignment requirement. Writer and Reader never own their backing
// storage — both borrow a []byte for the lifetime of the buffer value,
// same as the teacher's internal/pool.ByteBuffer borrows its slice.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/logpack-go/logpack/errs"
)

// Writer is a bounded cursor over a mutable byte span.
//
// Writer is not safe for concurrent use; callers serialize access the
// same way a single goroutine owns a *bytes.Buffer.
type Writer struct {
	buf      []byte
	position int
}

// NewWriter wraps buf with a write cursor starting at offset 0. The wire
// format is always little-endian (spec.md §4.1), so Writer has no
// configurable byte order — every multi-byte write goes straight through
// encoding/binary.LittleEndian.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Len returns the total capacity of the underlying span.
func (w *Writer) Len() int { return len(w.buf) }

// Remaining returns the number of bytes left before the cursor.
func (w *Writer) Remaining() int { return len(w.buf) - w.position }

// Content returns the written prefix, i.e. buf[:position].
func (w *Writer) Content() []byte { return w.buf[:w.position] }

// require checks that size bytes remain and, if so, returns the
// pre-advance cursor offset. On failure the cursor is left untouched.
func (w *Writer) require(size int) (int, error) {
	remaining := w.Remaining()
	if remaining < size {
		return 0, errs.NewBufferError(remaining, size)
	}

	pos := w.position
	w.position += size
	return pos, nil
}

// AppendBytes copies src into the buffer, advancing the cursor by
// len(src). It fails atomically if insufficient space remains.
func (w *Writer) AppendBytes(src []byte) error {
	pos, err := w.require(len(src))
	if err != nil {
		return err
	}
	copy(w.buf[pos:pos+len(src)], src)
	return nil
}

// ReserveBytes advances the cursor by n and returns the writable
// sub-region the caller may fill in directly.
func (w *Writer) ReserveBytes(n int) ([]byte, error) {
	pos, err := w.require(n)
	if err != nil {
		return nil, err
	}
	return w.buf[pos : pos+n], nil
}

// PutUint8 writes a single byte.
func (w *Writer) PutUint8(v uint8) error {
	pos, err := w.require(1)
	if err != nil {
		return err
	}
	w.buf[pos] = v
	return nil
}

// PutBool writes a bool as a single byte (0 or 1).
func (w *Writer) PutBool(v bool) error {
	if v {
		return w.PutUint8(1)
	}
	return w.PutUint8(0)
}

// PutUint16 writes v as 2 little-endian bytes.
func (w *Writer) PutUint16(v uint16) error {
	pos, err := w.require(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(w.buf[pos:pos+2], v)
	return nil
}

// PutUint32 writes v as 4 little-endian bytes.
func (w *Writer) PutUint32(v uint32) error {
	pos, err := w.require(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], v)
	return nil
}

// PutUint64 writes v as 8 little-endian bytes.
func (w *Writer) PutUint64(v uint64) error {
	pos, err := w.require(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.buf[pos:pos+8], v)
	return nil
}

func (w *Writer) PutInt8(v int8) error   { return w.PutUint8(uint8(v)) }
func (w *Writer) PutInt16(v int16) error { return w.PutUint16(uint16(v)) }
func (w *Writer) PutInt32(v int32) error { return w.PutUint32(uint32(v)) }
func (w *Writer) PutInt64(v int64) error { return w.PutUint64(uint64(v)) }

// PutFloat64 writes v as its IEEE-754 bit pattern, 8 little-endian bytes.
func (w *Writer) PutFloat64(v float64) error {
	return w.PutUint64(math.Float64bits(v))
}

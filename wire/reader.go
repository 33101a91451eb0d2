package wire

import (
	"encoding/binary"
	"math"

	"github.com/logpack-go/logpack/errs"
)

// Reader is a bounded cursor over an immutable byte span.
//
// Reader is not safe for concurrent use.
type Reader struct {
	buf      []byte
	position int
}

// NewReader wraps buf with a read cursor starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total size of the underlying span.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.position }

func (r *Reader) require(size int) (int, error) {
	remaining := r.Remaining()
	if remaining < size {
		return 0, errs.NewBufferError(remaining, size)
	}

	pos := r.position
	r.position += size
	return pos, nil
}

// GetSlice returns the next n bytes without copying and advances the
// cursor by n.
func (r *Reader) GetSlice(n int) ([]byte, error) {
	pos, err := r.require(n)
	if err != nil {
		return nil, err
	}
	return r.buf[pos : pos+n], nil
}

// GetRemaining returns every unread byte and advances the cursor to the
// end of the span.
func (r *Reader) GetRemaining() []byte {
	rest := r.buf[r.position:]
	r.position = len(r.buf)
	return rest
}

// GetUint8 reads a single byte.
func (r *Reader) GetUint8() (uint8, error) {
	pos, err := r.require(1)
	if err != nil {
		return 0, err
	}
	return r.buf[pos], nil
}

// GetBool reads a single byte as a bool (non-zero is true). The logpack
// wire format only ever writes 0/1 for bool; any non-zero byte still
// decodes as true here, matching Rust's bool-from-byte cast semantics
// the original relies on via a raw memory read.
func (r *Reader) GetBool() (bool, error) {
	v, err := r.GetUint8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// GetUint16 reads 2 little-endian bytes.
func (r *Reader) GetUint16() (uint16, error) {
	pos, err := r.require(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[pos : pos+2]), nil
}

// GetUint32 reads 4 little-endian bytes.
func (r *Reader) GetUint32() (uint32, error) {
	pos, err := r.require(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[pos : pos+4]), nil
}

// GetUint64 reads 8 little-endian bytes.
func (r *Reader) GetUint64() (uint64, error) {
	pos, err := r.require(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.buf[pos : pos+8]), nil
}

func (r *Reader) GetInt8() (int8, error) {
	v, err := r.GetUint8()
	return int8(v), err
}

func (r *Reader) GetInt16() (int16, error) {
	v, err := r.GetUint16()
	return int16(v), err
}

func (r *Reader) GetInt32() (int32, error) {
	v, err := r.GetUint32()
	return int32(v), err
}

func (r *Reader) GetInt64() (int64, error) {
	v, err := r.GetUint64()
	return int64(v), err
}

// GetFloat64 reads 8 little-endian bytes and reinterprets them as an
// IEEE-754 float64.
func (r *Reader) GetFloat64() (float64, error) {
	v, err := r.GetUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

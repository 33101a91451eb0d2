package wire

import (
	"unicode/utf8"

	"github.com/logpack-go/logpack/errs"
)

// StringHeaderLen returns the number of header bytes (1, 2, 4, or 8) the
// smallest legal width tag needs to carry the given byte length, per the
// table in spec.md §4.2.
func StringHeaderLen(byteLen int) int {
	switch {
	case byteLen < 1<<6:
		return 1
	case byteLen < 1<<14:
		return 2
	case byteLen < 1<<30:
		return 4
	default:
		return 8
	}
}

// EncodedStringLen returns the exact number of bytes PutString will write
// for s: the variable-width length header plus the UTF-8 byte length.
func EncodedStringLen(s string) int {
	return StringHeaderLen(len(s)) + len(s)
}

// PutString writes a string as <len-header><bytes>. The encoder always
// picks the smallest legal header width for the value's length
// (spec.md §4.2 "Encoders must choose the smallest tag that fits").
func (w *Writer) PutString(s string) error {
	size := len(s)

	switch {
	case size < 1<<6:
		if err := w.PutUint8(uint8(size) << 2); err != nil {
			return err
		}
	case size < 1<<14:
		if err := w.PutUint16(1 | (uint16(size) << 2)); err != nil {
			return err
		}
	case size < 1<<30:
		if err := w.PutUint32(2 | (uint32(size) << 2)); err != nil {
			return err
		}
	case uint64(size) < 1<<62:
		if err := w.PutUint64(3 | (uint64(size) << 2)); err != nil {
			return err
		}
	default:
		// Unreachable for any string Go can hold in memory; matches the
		// original's panic on the "length too large" arm.
		panic("wire: string length out of range")
	}

	space, err := w.ReserveBytes(size)
	if err != nil {
		return err
	}
	copy(space, s)
	return nil
}

// GetString reads a <len-header><bytes> string, validating that the
// payload is well-formed UTF-8.
//
// The length header's first byte carries a 2-bit width tag in its low
// bits; the remaining bits of the header (spread across up to 8 bytes)
// hold the length itself. Decoders accept any legal tag, not just the
// narrowest one a conforming encoder would have chosen (spec.md §4.2).
func (r *Reader) GetString() (string, error) {
	f0, err := r.GetUint8()
	if err != nil {
		return "", err
	}

	var length uint64
	switch f0 & 0x3 {
	case 0:
		length = uint64(f0 >> 2)
	case 1:
		f1, err := r.GetUint8()
		if err != nil {
			return "", err
		}
		length = (uint64(f1) << 6) | uint64(f0>>2)
	case 2:
		f1, err := r.GetUint8()
		if err != nil {
			return "", err
		}
		f2, err := r.GetUint16()
		if err != nil {
			return "", err
		}
		length = (uint64(f2) << 14) | (uint64(f1) << 6) | uint64(f0>>2)
	case 3:
		f1, err := r.GetUint8()
		if err != nil {
			return "", err
		}
		f2, err := r.GetUint16()
		if err != nil {
			return "", err
		}
		f3, err := r.GetUint32()
		if err != nil {
			return "", err
		}
		length = (uint64(f3) << 30) | (uint64(f2) << 14) | (uint64(f1) << 6) | uint64(f0>>2)
	}

	raw, err := r.GetSlice(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &errs.ErrUTF8{Cause: errInvalidUTF8}
	}

	return string(raw), nil
}

var errInvalidUTF8 = stringErr("wire: invalid utf-8 in string payload")

type stringErr string

func (e stringErr) Error() string { return string(e) }

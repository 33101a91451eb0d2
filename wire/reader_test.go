package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderGetUint32(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x1e, 0x00, 0x00, 0x00})
	v, err := r.GetUint32()
	require.NoError(err)
	require.Equal(uint32(30), v)
	require.Equal(0, r.Remaining())
}

func TestReaderUnderflowLeavesCursor(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x01})
	before := r.Remaining()

	_, err := r.GetUint32()
	require.Error(err)

	be := asBufferError(t, err)
	require.Equal(1, be.Remaining)
	require.Equal(4, be.Required)
	require.Equal(before, r.Remaining())
}

func TestReaderGetSlice(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{1, 2, 3, 4, 5})
	s, err := r.GetSlice(3)
	require.NoError(err)
	require.Equal([]byte{1, 2, 3}, s)

	rest := r.GetRemaining()
	require.Equal([]byte{4, 5}, rest)
	require.Equal(0, r.Remaining())
}

func TestRoundTripFixedWidth(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 64)
	w := NewWriter(buf)

	require.NoError(w.PutUint8(0xAB))
	require.NoError(w.PutUint16(0x1234))
	require.NoError(w.PutUint32(0xDEADBEEF))
	require.NoError(w.PutUint64(0x0123456789ABCDEF))
	require.NoError(w.PutBool(true))
	require.NoError(w.PutInt8(-5))
	require.NoError(w.PutFloat64(3.5))

	r := NewReader(w.Content())

	u8, err := r.GetUint8()
	require.NoError(err)
	require.Equal(uint8(0xAB), u8)

	u16, err := r.GetUint16()
	require.NoError(err)
	require.Equal(uint16(0x1234), u16)

	u32, err := r.GetUint32()
	require.NoError(err)
	require.Equal(uint32(0xDEADBEEF), u32)

	u64, err := r.GetUint64()
	require.NoError(err)
	require.Equal(uint64(0x0123456789ABCDEF), u64)

	b, err := r.GetBool()
	require.NoError(err)
	require.True(b)

	i8, err := r.GetInt8()
	require.NoError(err)
	require.Equal(int8(-5), i8)

	f64, err := r.GetFloat64()
	require.NoError(err)
	require.InDelta(3.5, f64, 0)

	require.Equal(0, r.Remaining())
}

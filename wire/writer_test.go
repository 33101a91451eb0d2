package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterPutUint32(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 4)
	w := NewWriter(buf)

	require.NoError(w.PutUint32(0x1e))
	require.Equal([]byte{0x1e, 0x00, 0x00, 0x00}, w.Content())
	require.Equal(0, w.Remaining())
}

func TestWriterAtomicFailure(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 2)
	w := NewWriter(buf)

	require.NoError(w.PutUint8(0xff))
	before := w.Remaining()

	err := w.PutUint32(1)
	require.Error(err)

	be := asBufferError(t, err)
	require.Equal(1, be.Remaining)
	require.Equal(4, be.Required)

	// cursor must be unchanged by the failed write (spec.md §8 invariant 7)
	require.Equal(before, w.Remaining())
}

func TestWriterReserveBytes(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 4)
	w := NewWriter(buf)

	space, err := w.ReserveBytes(3)
	require.NoError(err)
	copy(space, []byte{1, 2, 3})

	require.NoError(w.PutUint8(9))
	require.Equal([]byte{1, 2, 3, 9}, w.Content())
}

func TestWriterAppendBytes(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 3)
	w := NewWriter(buf)
	require.NoError(w.AppendBytes([]byte{1, 2, 3}))
	require.Equal([]byte{1, 2, 3}, w.Content())

	err := w.AppendBytes([]byte{4})
	require.Error(err)
}

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagWidth(t *testing.T) {
	require := require.New(t)

	require.Equal(1, TagWidth(1))
	require.Equal(1, TagWidth(255))
	require.Equal(2, TagWidth(256))
	require.Equal(2, TagWidth(65535))
	require.Equal(4, TagWidth(65536))
}

func TestTagRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, cardinality := range []int{1, 255, 256, 65535, 65536} {
		buf := make([]byte, 4)
		w := NewWriter(buf)
		require.NoError(w.PutTag(0, cardinality))

		r := NewReader(w.Content())
		idx, err := r.GetTag(cardinality)
		require.NoError(err)
		require.Equal(0, idx)
	}
}

func TestTagScenario1And2(t *testing.T) {
	require := require.New(t)

	// Unit-variant enum SimpleEnum::WithUnit, first variant of a <256
	// variant enum. Wire: 00 (spec.md §8 scenario 1).
	buf := make([]byte, 1)
	w := NewWriter(buf)
	require.NoError(w.PutTag(0, 4))
	require.Equal([]byte{0x00}, w.Content())

	// TupleField(30u32) at variant index 1: wire 01 1e 00 00 00
	// (spec.md §8 scenario 2).
	buf2 := make([]byte, 5)
	w2 := NewWriter(buf2)
	require.NoError(w2.PutTag(1, 4))
	require.NoError(w2.PutUint32(30))
	require.Equal([]byte{0x01, 0x1e, 0x00, 0x00, 0x00}, w2.Content())
}

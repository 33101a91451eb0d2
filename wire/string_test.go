package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutStringScenario3(t *testing.T) {
	require := require.New(t)

	// "test" has length 4, fits the 1-byte header (tag 0): header byte
	// is (4<<2)|0 = 0x10 (spec.md §8, scenario 3).
	buf := make([]byte, 16)
	w := NewWriter(buf)
	require.NoError(w.PutString("test"))
	require.Equal([]byte{0x10, 't', 'e', 's', 't'}, w.Content())
}

func TestStringHeaderWidths(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		name   string
		length int
		width  int
	}{
		{"tag0 max", (1 << 6) - 1, 1},
		{"tag1 min", 1 << 6, 2},
		{"tag1 max", (1 << 14) - 1, 2},
		{"tag2 min", 1 << 14, 4},
		{"tag2 max", (1 << 30) - 1, 4},
		{"tag3 min", 1 << 30, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(c.width, StringHeaderLen(c.length), "length=%d", c.length)
		})
	}
}

func TestStringRoundTripAllWidths(t *testing.T) {
	require := require.New(t)

	lengths := []int{0, 1, 63, 64, 16383, 16384}
	for _, n := range lengths {
		s := strings.Repeat("a", n)

		size := EncodedStringLen(s)
		buf := make([]byte, size)
		w := NewWriter(buf)
		require.NoError(w.PutString(s))
		require.Equal(size, len(w.Content()), "size prediction must match bytes written")

		r := NewReader(w.Content())
		got, err := r.GetString()
		require.NoError(err)
		require.Equal(s, got)
		require.Equal(0, r.Remaining())
	}
}

func TestGetStringAcceptsAnyLegalWidth(t *testing.T) {
	require := require.New(t)

	// A 2-byte-header encoding of "ok" (length 2), even though 2 fits
	// the narrower 1-byte header too. Decoders must accept any legal
	// tag (spec.md §4.2).
	buf := make([]byte, 16)
	w := NewWriter(buf)
	require.NoError(w.PutUint16(1 | (2 << 2)))
	require.NoError(w.AppendBytes([]byte("ok")))

	r := NewReader(w.Content())
	got, err := r.GetString()
	require.NoError(err)
	require.Equal("ok", got)
}

func TestGetStringInvalidUTF8(t *testing.T) {
	require := require.New(t)

	buf := []byte{0x08, 0xff, 0xfe} // header says length 2, bytes are invalid UTF-8
	r := NewReader(buf)
	_, err := r.GetString()
	require.Error(err)
}

package logpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/codec"
	"github.com/logpack-go/logpack/describe"
)

func TestSessionRoundTripScalar(t *testing.T) {
	require := require.New(t)

	s := NewSession()
	desc := Describe(s, describe.U32, uint32(42))

	buf := make([]byte, SizeOf(codec.U32, uint32(42)))
	written, err := Encode(codec.U32, uint32(42), buf)
	require.NoError(err)

	fed, err := s.Feed(desc)
	require.NoError(err)

	out, err := Render(s, fed, written)
	require.NoError(err)
	require.Equal("42", out)
}

func TestEncodePooledMatchesEncode(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, SizeOf(codec.U32, uint32(42)))
	want, err := Encode(codec.U32, uint32(42), buf)
	require.NoError(err)

	got, release, err := EncodePooled(codec.U32, uint32(42))
	require.NoError(err)
	defer release()
	require.Equal(want, got)
}

func TestEncodePooledReusesBackingArray(t *testing.T) {
	require := require.New(t)

	first, release, err := EncodePooled(codec.U32, uint32(1))
	require.NoError(err)
	firstPtr := &first[0]
	release()

	second, release2, err := EncodePooled(codec.U32, uint32(2))
	require.NoError(err)
	defer release2()
	require.Same(firstPtr, &second[0], "pooled buffer should be reused after release")
}

func TestSessionRoundTripANSI(t *testing.T) {
	require := require.New(t)

	s := NewSession()
	desc := Describe(s, describe.U8, uint8(5))

	buf := make([]byte, SizeOf(codec.U8, uint8(5)))
	written, err := Encode(codec.U8, uint8(5), buf)
	require.NoError(err)

	fed, err := s.Feed(desc)
	require.NoError(err)

	out, err := RenderANSI(s, fed, written)
	require.NoError(err)
	require.Contains(out, "5")
}

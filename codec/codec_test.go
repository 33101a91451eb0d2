package codec

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/wire"
)

func encodeAndCheck[T any](t *testing.T, enc Encoder[T], v T) []byte {
	t.Helper()
	require := require.New(t)

	size := enc.SizeOf(v)
	buf := make([]byte, size)
	w := wire.NewWriter(buf)
	require.NoError(enc.Encode(v, w))
	require.Equal(size, len(w.Content()), "SizeOf must match bytes actually written")
	return w.Content()
}

func TestScalarSizeInvariant(t *testing.T) {
	encodeAndCheck(t, U32, uint32(30))
	encodeAndCheck(t, I64, int64(-5))
	encodeAndCheck(t, Bool, true)
	encodeAndCheck(t, String, "hello")
	encodeAndCheck(t, Float, 3.5)
}

func TestOptionNoneAndSome(t *testing.T) {
	require := require.New(t)

	opt := Option(U32)

	var none *uint32
	bytes := encodeAndCheck(t, opt, none)
	require.Equal([]byte{0x00}, bytes)

	v := uint32(7)
	bytes = encodeAndCheck(t, opt, &v)
	require.Equal(byte(0x01), bytes[0])
}

func TestResultOkAndErr(t *testing.T) {
	require := require.New(t)

	res := Result[uint32, string](U32, String)

	okBytes := encodeAndCheck(t, res, OkValue[uint32, string](30))
	require.Equal(byte(0x00), okBytes[0])

	errBytes := encodeAndCheck(t, res, ErrValue[uint32, string]("bad"))
	require.Equal(byte(0x01), errBytes[0])
}

func TestSliceSizerIsLengthPrefixPlusElements(t *testing.T) {
	require := require.New(t)

	enc := Slice(U32)
	v := []uint32{1, 2, 3}

	require.Equal(8+3*4, enc.SizeOf(v))
	encodeAndCheck(t, enc, v)

	require.Equal(8, enc.SizeOf(nil))
}

func TestArrayEncodesNoLengthPrefix(t *testing.T) {
	require := require.New(t)

	enc := Array(3, U8)
	v := []uint8{1, 2, 3}

	require.Equal(3, enc.SizeOf(v))
	bytes := encodeAndCheck(t, enc, v)
	require.Equal([]byte{1, 2, 3}, bytes)
}

func TestArrayLengthMismatchErrors(t *testing.T) {
	require := require.New(t)

	enc := Array(3, U8)
	_, err := func() ([]byte, error) {
		buf := make([]byte, 3)
		w := wire.NewWriter(buf)
		return nil, enc.Encode([]uint8{1, 2}, w)
	}()
	require.Error(err)
}

func TestTuple3RoundTripSize(t *testing.T) {
	enc := Tuple3(U32, Bool, String)
	v := T3[uint32, bool, string]{V0: 1, V1: true, V2: "hi"}
	bytes := encodeAndCheck(t, enc, v)
	if len(bytes) != 4+1+(1+2) {
		t.Fatalf("unexpected length %d", len(bytes))
	}
}

func TestDurationEncodesSecsThenNanos(t *testing.T) {
	require := require.New(t)

	bytes := encodeAndCheck(t, DurationCodec, time.Second+500*time.Nanosecond)
	require.Len(bytes, 12)
	require.Equal(uint32(1), binary.LittleEndian.Uint32(bytes[:4]))
	require.Equal(uint32(500), binary.LittleEndian.Uint32(bytes[8:12]))
}

func TestTimeEncodesUnixSecsThenNanos(t *testing.T) {
	require := require.New(t)

	tm := time.Date(2026, 1, 1, 0, 0, 0, 250, time.UTC)
	bytes := encodeAndCheck(t, TimeCodec, tm)
	require.Len(bytes, 12)
	require.Equal(uint64(tm.Unix()), binary.LittleEndian.Uint64(bytes[:8]))
	require.Equal(uint32(250), binary.LittleEndian.Uint32(bytes[8:12]))
}

func TestRawPtrEncodesAsU64(t *testing.T) {
	require := require.New(t)

	bytes := encodeAndCheck(t, RawPtr, uintptr(0xdeadbeef))
	require.Len(bytes, 8)
}

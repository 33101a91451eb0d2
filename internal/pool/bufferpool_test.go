package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetGrowsToRequestedLength(t *testing.T) {
	require := require.New(t)

	b := Get(16)
	require.Len(b.B, 16)
	require.GreaterOrEqual(cap(b.B), 16)
	Put(b)
}

func TestPutResetsAndReuses(t *testing.T) {
	require := require.New(t)

	b := Get(32)
	b.B[0] = 0xFF
	Put(b)

	b2 := Get(4)
	require.Len(b2.B, 4)
	require.NotEqual(byte(0xFF), b2.B[0], "reused buffer must be reset before reuse")
	Put(b2)
}

func TestPutDiscardsOversizedBuffer(t *testing.T) {
	require := require.New(t)

	big := Get(MaxRetainedSize + 1)
	Put(big)

	// A fresh Get after discarding an oversized buffer must not somehow
	// hand back a buffer larger than what was requested.
	small := Get(8)
	require.Len(small.B, 8)
	Put(small)
}

func TestGrowPreservesCapacityWhenSufficient(t *testing.T) {
	require := require.New(t)

	b := &Buffer{B: make([]byte, 0, 100)}
	b.Grow(50)
	require.Equal(100, cap(b.B))
	require.Len(b.B, 50)
}

package wire

import (
	"testing"

	"github.com/logpack-go/logpack/errs"
	"github.com/stretchr/testify/require"
)

func asBufferError(t *testing.T, err error) *errs.BufferError {
	t.Helper()
	be, ok := err.(*errs.BufferError)
	require.True(t, ok, "expected *errs.BufferError, got %T", err)
	return be
}

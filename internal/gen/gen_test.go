package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpIfEnabledNoopWhenUnset(t *testing.T) {
	require := require.New(t)

	require.NoError(DumpIfEnabled("snippet.txt", []byte("hello")))
}

func TestDumpIfEnabledWritesUnderDir(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	t.Setenv(envDir, dir)

	require.NoError(DumpIfEnabled("snippet.txt", []byte("hello")))

	got, err := os.ReadFile(filepath.Join(dir, "snippet.txt"))
	require.NoError(err)
	require.Equal("hello", string(got))
}

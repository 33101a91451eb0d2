// Package gen is a non-core, implementation-time convenience: it lets
// test fixtures and hand-authored glue dump themselves to a directory
// for manual inspection, the way a developer might eyeball a
// troublesome Describe/Encode pairing while chasing down a wire-format
// mismatch. It is never on a hot path and nothing in the library calls
// it unconditionally.
package gen

import (
	"os"
	"path/filepath"
)

// envDir is the environment variable naming the dump directory. No
// third-party env/config library turns up anywhere in the example
// corpus with source available to ground against, so this reads it
// directly with os.Getenv.
const envDir = "LOGPACK_GEN_DIR"

// DumpIfEnabled writes content under name to the directory named by
// LOGPACK_GEN_DIR, if that variable is set. It is a no-op (returning
// nil) when the variable is unset, so call sites can sprinkle it into
// tests unconditionally without an extra guard.
func DumpIfEnabled(name string, content []byte) error {
	dir := os.Getenv(envDir)
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), content, 0o644)
}

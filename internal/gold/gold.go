// Package gold implements golden files.
package gold

import (
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// WriteFile writes golden file, creating directories if needed.
func WriteFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("golden dir: %+v", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}
}

// Str checks s against golden text file.
func Str(t testing.TB, s string, elems ...string) {
	t.Helper()

	if Update {
		WriteFile(t, []byte(s), elems...)
		return
	}

	require.Equal(t, string(ReadFile(t, elems...)), s, "golden file %s mismatch", path.Join(elems...))
}

// Bytes checks data against golden binary file.
func Bytes(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	if len(elems) == 0 {
		elems = []string{t.Name() + ".bin"}
	}
	if Update {
		WriteFile(t, data, elems...)
		return
	}

	require.Equal(t, ReadFile(t, elems...), data, "golden file %s mismatch", path.Join(elems...))
}

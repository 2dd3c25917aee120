package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/redart/internal/errors"
)

// runSource writes src to a scratch file and runs it to completion,
// returning everything `print` wrote. Any fatal diagnostic is raised
// as a panic (errors.Debug forced true for the call) so a caller can
// assert it with a deferred recover.
func runSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.dart")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing scratch fixture: %v", err)
	}

	prevDebug := errors.Debug
	errors.Debug = true
	defer func() { errors.Debug = prevDebug }()

	var buf bytes.Buffer
	state := New(&buf)
	Run(state, path)
	return buf.String()
}

// expectFatal runs src and asserts it raises a fatal diagnostic
// (a panic, since errors.Debug is forced true by runSource).
func expectFatal(t *testing.T, src string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal diagnostic, program ran to completion")
		}
	}()
	runSource(t, src)
}

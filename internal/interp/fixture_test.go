package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every `<name>.dart` under testdata/tests (two
// directories up from this package) to completion and checks its
// stdout: against the sibling `<name>.expected` file when one exists,
// otherwise against a go-snaps snapshot, the way the teacher's
// fixture_test.go snapshots DWScript fixture output.
func TestFixtures(t *testing.T) {
	dir := "../../testdata/tests"
	entries, err := filepath.Glob(filepath.Join(dir, "*.dart"))
	if err != nil {
		t.Fatalf("globbing %s: %v", dir, err)
	}
	if len(entries) == 0 {
		t.Skipf("no fixtures found under %s", dir)
	}

	for _, path := range entries {
		name := strings.TrimSuffix(filepath.Base(path), ".dart")
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			state := New(&buf)
			Run(state, path)

			if expected, err := os.ReadFile(strings.TrimSuffix(path, ".dart") + ".expected"); err == nil {
				if buf.String() != string(expected) {
					t.Errorf("output mismatch for %s:\nwant: %qgot:  %q", name, expected, buf.String())
				}
				return
			}
			snaps.MatchSnapshot(t, name+"_output", buf.String())
		})
	}
}

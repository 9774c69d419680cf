package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GoldenString compares a console transcript against testdata/<name>.golden.
// With GOLDEN_UPDATE set, the file is rewritten instead.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll("testdata", 0o755); err != nil {
			t.Fatalf("creating testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("updating golden file: %v", err)
		}
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file %s: %v\nGot:\n%s", path, err, got)
	}
	want := string(raw)
	if got == want {
		return
	}

	line, w, g := firstDiff(want, got)
	t.Errorf("transcript %s differs at line %d\nwant: %q\n got: %q\nFull output:\n%s", name, line, w, g, got)
}

// firstDiff returns the 1-based number of the first differing line and both versions of it.
func firstDiff(want, got string) (int, string, string) {
	wl := strings.Split(want, "\n")
	gl := strings.Split(got, "\n")
	for i := 0; i < len(wl) || i < len(gl); i++ {
		var w, g string
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if w != g || i >= len(wl) || i >= len(gl) {
			return i + 1, w, g
		}
	}
	return 0, "", ""
}

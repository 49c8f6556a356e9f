package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStringsFile(t *testing.T, dir string, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "Localizable.strings")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	path := writeStringsFile(t, dir, `
// greeting
"hello" = "hello, world";
"farewell" = "goodbye, world";
`)

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}

	v, ok := tbl.Lookup("hello")
	if !ok || v != "hello, world" {
		t.Fatalf("Lookup(hello) = %q,%v, want %q,true", v, ok, "hello, world")
	}
	v, ok = tbl.Lookup("farewell")
	if !ok || v != "goodbye, world" {
		t.Fatalf("Lookup(farewell) = %q,%v, want %q,true", v, ok, "goodbye, world")
	}
	if _, ok := tbl.Lookup("missing"); ok {
		t.Fatalf("Lookup(missing) reported a hit")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.strings")); err == nil {
		t.Fatalf("Load on a missing file did not error")
	}
}

func TestLoadRejectsRemoteScheme(t *testing.T) {
	if _, err := Load("https://example.com/Localizable.strings"); err == nil {
		t.Fatalf("Load on an https:// path did not error")
	}
}

func TestRegistryRegisterAndAt(t *testing.T) {
	r := &Registry{}
	dir := t.TempDir()
	path := writeStringsFile(t, dir, `"k" = "v";`)
	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	idx := r.Register(tbl)
	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", r.Count())
	}
	if r.At(idx) != tbl {
		t.Fatalf("At(idx) did not return the registered table")
	}
	if r.At(idx+1) != nil {
		t.Fatalf("At(out-of-range) did not return nil")
	}
}

package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

// buildTree writes a small directory layout: two files at the root, one
// nested file, and an empty subdirectory.
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]int{
		filepath.Join(root, "a.pdf"):          100,
		filepath.Join(root, "b"):              50,
		filepath.Join(root, "sub", "c.mp3"):   200,
		filepath.Join(root, "sub", "d.txt"):   10,
		filepath.Join(root, "sub", "in", "e"): 1,
	}
	for path, size := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir empty: %v", err)
	}
	return root
}

func baseNames(t *testing.T, root string, recursive bool) []string {
	t.Helper()
	files, err := Collect(root, recursive)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.Base(f.Path)
	}
	sort.Strings(out)
	return out
}

func TestCollectNonRecursive(t *testing.T) {
	root := buildTree(t)

	got := baseNames(t, root, false)
	want := []string{"a.pdf", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
}

func TestCollectRecursive(t *testing.T) {
	root := buildTree(t)

	got := baseNames(t, root, true)
	want := []string{"a.pdf", "b", "c.mp3", "d.txt", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
}

func TestCollectReportsSizes(t *testing.T) {
	root := buildTree(t)

	files, err := Collect(root, false)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	sizes := make(map[string]int64, len(files))
	for _, f := range files {
		sizes[filepath.Base(f.Path)] = f.Size
	}
	if sizes["a.pdf"] != 100 || sizes["b"] != 50 {
		t.Errorf("sizes = %v", sizes)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	if _, err := Collect(missing, false); err == nil {
		t.Error("non-recursive Collect accepted a missing root")
	}
	if _, err := Collect(missing, true); err == nil {
		t.Error("recursive Collect accepted a missing root")
	}
}

func TestCollectSkipsSymlinks(t *testing.T) {
	root := buildTree(t)
	target := filepath.Join(root, "a.pdf")
	link := filepath.Join(root, "link.pdf")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := baseNames(t, root, false)
	for _, name := range got {
		if name == "link.pdf" {
			t.Errorf("symlink collected: %v", got)
		}
	}
}

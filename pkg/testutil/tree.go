package testutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/spf13/afero"
)

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteTree creates every file in files (relative path -> content) under
// root on the OS filesystem, creating parent directories as needed
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	WriteTreeFS(t, filesystem.NewOS(), root, files)
}

// WriteTreeFS is WriteTree against an arbitrary types.FS
func WriteTreeFS(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", path, err)
		}
		w, err := fsys.Create(path, 0644)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
		if _, err := io.WriteString(w, content); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Failed to close %s: %v", path, err)
		}
	}
}

// ReadTree returns every regular file under root as slash-separated
// relative path -> content
func ReadTree(t *testing.T, root string) map[string]string {
	t.Helper()
	return ReadTreeFS(t, filesystem.NewOS(), root)
}

// ReadTreeFS is ReadTree against an arbitrary types.FS
func ReadTreeFS(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", dir, err)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(path)
				continue
			}
			r, err := fsys.Open(path)
			if err != nil {
				t.Fatalf("Failed to open %s: %v", path, err)
			}
			data, err := io.ReadAll(r)
			_ = r.Close()
			if err != nil {
				t.Fatalf("Failed to read %s: %v", path, err)
			}
			rel, _ := filepath.Rel(root, path)
			out[filepath.ToSlash(rel)] = string(data)
		}
	}
	walk(root)
	return out
}

// IsSymlink reports whether path is a symlink on the OS filesystem
func IsSymlink(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateProject creates an empty Xcode project bundle (<dir>/<name>) and
// returns its absolute path.
func CreateProject(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(p, 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	write(t, filepath.Join(p, "project.pbxproj"), "// !$*UTF8*$!\n{\n}\n")
	return p
}

// WriteManifest writes podws.yaml into dir and returns its path.
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "podws.yaml")
	write(t, p, content)
	return p
}

// WriteFile writes content to dir/rel, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	write(t, p, content)
	return p
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ModTime returns the modification time of path in nanoseconds.
func ModTime(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.ModTime().UnixNano()
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

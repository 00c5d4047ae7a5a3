package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

func FixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(FixtureDir(t), name)
}

func ReadGolden(t *testing.T, name string) string {
	t.Helper()
	path := FixturePath(t, filepath.Join("golden", name))
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	return string(b)
}

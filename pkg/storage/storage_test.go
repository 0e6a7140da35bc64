package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirAndSaveFile(t *testing.T) {
	s := &Storage{}
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := s.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}
	// Idempotent on an existing directory.
	if err := s.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir returned error: %v", err)
	}

	path := filepath.Join(dir, "file.bin")
	if s.HasFile(path) {
		t.Fatal("HasFile true before file exists")
	}

	if err := s.SaveFile(path, []byte("first")); err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile false after save")
	}

	// Overwrite replaces content.
	if err := s.SaveFile(path, []byte("second")); err != nil {
		t.Fatalf("second SaveFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}
}

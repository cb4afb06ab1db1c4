package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFile_CreatesDirectoriesAndOverwrites(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "data", "primes.json")

	if err := s.SaveFile(path, []byte(`{"version":"auto"}`)); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	if err := s.SaveFile(path, []byte(`{"version":"auto","second":true}`)); err != nil {
		t.Fatalf("SaveFile() overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back failed: %v", err)
	}
	if string(data) != `{"version":"auto","second":true}` {
		t.Errorf("file content = %s, want the second write only", data)
	}
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.json")

	if s.HasFile(path) {
		t.Error("HasFile() = true before the file exists")
	}
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() = false for an existing file")
	}
}

func TestReadFile_Missing(t *testing.T) {
	s := &Storage{}
	if _, err := s.ReadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ReadFile() succeeded on a missing file, want error")
	}
}

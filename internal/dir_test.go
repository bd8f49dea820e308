package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirExists(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Pictures", "wallpapers")

	created, err := EnsureDirExists(dir)
	if err != nil {
		t.Fatalf("EnsureDirExists() error = %v", err)
	}
	if !created {
		t.Errorf("EnsureDirExists() created = false on first call")
	}

	created, err = EnsureDirExists(dir)
	if err != nil {
		t.Fatalf("EnsureDirExists() second call error = %v", err)
	}
	if created {
		t.Errorf("EnsureDirExists() created = true on second call")
	}
}

func TestEnsureDirExistsOverFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "Downloads")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := EnsureDirExists(f); err == nil {
		t.Errorf("EnsureDirExists() expected error for regular file")
	}
}

func TestEnsureDirAbsent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rofi")
	if err := os.MkdirAll(filepath.Join(dir, "files"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDirAbsent(dir); err != nil {
		t.Fatalf("EnsureDirAbsent() error = %v", err)
	}
	if exists, _ := PathExists(dir); exists {
		t.Errorf("EnsureDirAbsent() left %s behind", dir)
	}
	if err := EnsureDirAbsent(dir); err != nil {
		t.Errorf("EnsureDirAbsent() on missing dir error = %v", err)
	}
}

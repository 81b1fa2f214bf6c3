package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "hand.phh")

	err := WriteAtomic(target, 0o640, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "variant = %q\n", "NT")
		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "variant = \"NT\"\n" {
		t.Errorf("File content mismatch: got %q", string(data))
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0o640)
	}

	assertOnlyFile(t, tmpDir, "hand.phh")
}

func TestWriteAtomicFailedWriteKeepsOldFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "hand.phh")
	if err := WriteFileAtomic(target, []byte("original"), 0o644); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}

	boom := errors.New("encoder exploded")
	err := WriteAtomic(target, 0o644, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped encoder error, got %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("target changed after failed write: %q", string(data))
	}

	assertOnlyFile(t, tmpDir, "hand.phh")
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "test.txt")
	if err := WriteFileAtomic(target, []byte("initial"), 0o644); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}
	if err := WriteFileAtomic(target, []byte("updated content"), 0o644); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "updated content" {
		t.Errorf("File content mismatch: got %q", string(data))
	}
}

func TestWriteFileAtomicInvalidDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "test.txt"), []byte("data"), 0o644)
	if err == nil {
		t.Error("Expected error when writing to non-existent directory")
	}
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != name {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

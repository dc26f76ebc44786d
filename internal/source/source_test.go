package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.mft")

	testData := make([]byte, 1024*4)
	for i := range testData {
		testData[i] = byte(i % 256)
	}
	if err := os.WriteFile(tmpFile, testData, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	src, err := Open(tmpFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	got := src.Bytes()
	if len(got) != len(testData) {
		t.Fatalf("Bytes() len = %d, want %d", len(got), len(testData))
	}
	if got[0] != testData[0] || got[len(got)-1] != testData[len(testData)-1] {
		t.Errorf("Bytes() content mismatch")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "empty.mft")

	if err := os.WriteFile(tmpFile, nil, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	src, err := Open(tmpFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if len(src.Bytes()) != 0 {
		t.Errorf("Bytes() len = %d, want 0", len(src.Bytes()))
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.mft"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

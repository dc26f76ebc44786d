package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shubham/mfte/internal/ntfs"
)

func TestWriteCSVHeaderAndRows(t *testing.T) {
	records := []ntfs.MFTRecord{{EntryNumber: 7, FileName: "note.txt"}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ntfs.KindMFT, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (header+row)", len(lines))
	}
	if !strings.Contains(lines[1], "note.txt") {
		t.Errorf("row missing filename: %q", lines[1])
	}
}

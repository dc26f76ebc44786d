package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shubham/mfte/internal/ntfs"
)

func TestWriteBodyfileMFT(t *testing.T) {
	records := []ntfs.MFTRecord{{EntryNumber: 5, FileName: "file.log", FileSize: 10}}

	var buf bytes.Buffer
	if err := WriteBodyfile(&buf, ntfs.KindMFT, records, "C"); err != nil {
		t.Fatalf("WriteBodyfile: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	fields := strings.Split(line, "|")
	if len(fields) != 11 {
		t.Fatalf("got %d pipe-delimited fields, want 11: %q", len(fields), line)
	}
	if !strings.Contains(fields[1], "C:/file.log") {
		t.Errorf("name field = %q, want to contain C:/file.log", fields[1])
	}
}

func TestWriteBodyfileUnsupportedKind(t *testing.T) {
	err := WriteBodyfile(&bytes.Buffer{}, ntfs.KindBoot, &ntfs.BootSector{}, "C")
	if err == nil {
		t.Fatal("expected error for unsupported kind")
	}
}

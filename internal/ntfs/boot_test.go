package ntfs

import (
	"encoding/binary"
	"testing"
)

// buildBootSector builds a minimal 512-byte boot sector per scenario S6.
func buildBootSector() []byte {
	buf := make([]byte, 512)
	copy(buf[3:11], "NTFS    ")
	binary.LittleEndian.PutUint16(buf[11:13], 512)
	buf[13] = 8
	binary.LittleEndian.PutUint64(buf[40:48], 1953525167)
	binary.LittleEndian.PutUint64(buf[48:56], 786432)
	buf[64] = 0xF6 // int8(-10) in two's complement
	return buf
}

func TestParseBootSector(t *testing.T) {
	buf := buildBootSector()

	boot, err := ParseBootSector(buf)
	if err != nil {
		t.Fatalf("ParseBootSector: %v", err)
	}

	if boot.BytesPerSector != 512 {
		t.Errorf("BytesPerSector = %d, want 512", boot.BytesPerSector)
	}
	if boot.SectorsPerCluster != 8 {
		t.Errorf("SectorsPerCluster = %d, want 8", boot.SectorsPerCluster)
	}
	if boot.TotalSectors != 1953525167 {
		t.Errorf("TotalSectors = %d, want 1953525167", boot.TotalSectors)
	}
	if boot.MFTStartCluster != 786432 {
		t.Errorf("MFTStartCluster = %d, want 786432", boot.MFTStartCluster)
	}
	if boot.ClustersPerMFTRecord != -10 {
		t.Errorf("ClustersPerMFTRecord = %d, want -10", boot.ClustersPerMFTRecord)
	}
	if boot.OEMID != "NTFS" {
		t.Errorf("OEMID = %q, want %q", boot.OEMID, "NTFS")
	}
}

func TestParseBootSectorTooSmall(t *testing.T) {
	_, err := ParseBootSector(make([]byte, 100))
	if err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}

func TestDetect(t *testing.T) {
	mft := make([]byte, MFTRecordSize)
	copy(mft, MFTSignature)

	i30 := make([]byte, 64)
	copy(i30, I30Signature)

	boot := buildBootSector()

	usn := make([]byte, 64)
	binary.LittleEndian.PutUint32(usn[0:4], 120)

	tests := []struct {
		name string
		data []byte
		want Kind
	}{
		{"mft", mft, KindMFT},
		{"i30", i30, KindI30},
		{"boot", boot, KindBoot},
		{"usn", usn, KindUSN},
		{"unknown", []byte{0, 0, 0, 0}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data); got != tt.want {
				t.Errorf("Detect(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

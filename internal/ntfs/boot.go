package ntfs

import (
	"encoding/binary"
	"strings"
)

// ParseBootSector decodes the first 512 bytes of an NTFS volume. It is a
// single-shot decoder: there is no streaming state, unlike the other
// artifact parsers.
func ParseBootSector(data []byte) (*BootSector, error) {
	if len(data) < 512 {
		return nil, errAt(0, "boot sector buffer too small: got %d bytes, need 512", len(data))
	}

	oemID := strings.TrimRight(string(data[3:11]), "\x00 ")

	boot := &BootSector{
		OEMID:                  oemID,
		BytesPerSector:         binary.LittleEndian.Uint16(data[11:13]),
		SectorsPerCluster:      data[13],
		TotalSectors:           binary.LittleEndian.Uint64(data[40:48]),
		MFTStartCluster:        binary.LittleEndian.Uint64(data[48:56]),
		MFTMirrorStartCluster:  binary.LittleEndian.Uint64(data[56:64]),
		ClustersPerMFTRecord:   int8(data[64]),
		ClustersPerIndexBuffer: int8(data[68]),
		VolumeSerialNumber:     binary.LittleEndian.Uint64(data[72:80]),
	}

	return boot, nil
}

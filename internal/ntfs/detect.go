package ntfs

import "encoding/binary"

// Detect sniffs the artifact kind from a buffer's leading bytes. $SDS has
// no reliable discriminator and is never returned; callers must declare
// it explicitly.
//
// The USN heuristic (a leading record_length in (60, 65536)) overlaps
// with many non-USN binaries that happen to start with a small positive
// 32-bit value — this is a known, intentionally unfixed weakness carried
// over from the source tool. A caller that needs certainty should attempt
// NewUSNParser(...).Parse() and treat a stream-level error as "not USN".
func Detect(data []byte) Kind {
	if len(data) >= 4 {
		switch string(data[0:4]) {
		case MFTSignature:
			return KindMFT
		case I30Signature:
			return KindI30
		}
	}

	if len(data) >= 512 && string(data[3:11]) == "NTFS    " {
		return KindBoot
	}

	if len(data) >= 60 {
		recordLength := binary.LittleEndian.Uint32(data[0:4])
		if recordLength > 60 && recordLength < 0x10000 {
			return KindUSN
		}
	}

	return KindUnknown
}

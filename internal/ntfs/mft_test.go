package ntfs

import (
	"encoding/binary"
	"unicode/utf16"
)

const firstAttrOffset = 0x38 // 56

func putUint16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func putUint32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putUint64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

func encodeUTF16LEBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[i*2:], u)
	}
	return out
}

// buildStandardInformationAttr builds a full $STANDARD_INFORMATION (0x10)
// resident attribute, common header included.
func buildStandardInformationAttr(created, modified, changed, accessed uint64, siFlags uint32) []byte {
	const bodySize = 8 + 32 + 4
	total := 16 + bodySize
	buf := make([]byte, total)

	putUint32(buf, 0, attrStandardInformation)
	putUint32(buf, 4, uint32(total))
	buf[8] = 0  // non_resident
	buf[9] = 0  // name_length
	putUint16(buf, 10, 0) // name_offset
	putUint16(buf, 12, 0) // flags
	putUint16(buf, 14, 0) // attribute_id

	body := buf[16:]
	putUint32(body, 0, bodySize) // content_size
	putUint16(body, 4, 8)        // content_offset
	// 2 bytes reserved at body[6:8]

	putUint64(body, 8, created)
	putUint64(body, 16, modified)
	putUint64(body, 24, changed)
	putUint64(body, 32, accessed)
	putUint32(body, 40, siFlags)

	return buf
}

// buildFileNameAttr builds a full $FILE_NAME (0x30) resident attribute.
func buildFileNameAttr(parentRef uint64, created, modified, changed, accessed, realSize uint64, nameType byte, name string) []byte {
	nameBytes := encodeUTF16LEBytes(name)
	const fixedBody = 8 + 32 + 8 + 8 + 4 + 4 + 1 + 1
	bodySize := fixedBody + len(nameBytes)

	// Common header (16) + resident header (8) + body.
	buf := make([]byte, 16+8+bodySize)
	total := len(buf)

	putUint32(buf, 0, attrFileName)
	putUint32(buf, 4, uint32(total))
	buf[8] = 0
	buf[9] = 0
	putUint16(buf, 10, 0)
	putUint16(buf, 12, 0)
	putUint16(buf, 14, 0)

	residentHeader := buf[16:24]
	putUint32(residentHeader, 0, uint32(bodySize))
	putUint16(residentHeader, 4, 24)

	body := buf[24:]
	putUint64(body, 0, parentRef)
	putUint64(body, 8, created)
	putUint64(body, 16, modified)
	putUint64(body, 24, changed)
	putUint64(body, 32, accessed)
	putUint64(body, 40, 0) // allocated size
	putUint64(body, 48, realSize)
	putUint32(body, 56, 0) // flags
	putUint32(body, 60, 0) // reparse value
	body[64] = byte(len(nameBytes) / 2)
	body[65] = nameType
	copy(body[66:], nameBytes)

	return buf
}

// buildMFTSlot builds one 1024-byte FILE record slot with the given
// attributes concatenated starting at firstAttrOffset, terminated with
// the 0xFFFFFFFF end marker.
func buildMFTSlot(flags uint16, attrs ...[]byte) []byte {
	slot := make([]byte, MFTRecordSize)
	copy(slot, MFTSignature)
	putUint16(slot, 16, 1) // sequence_number
	putUint16(slot, 20, firstAttrOffset)
	putUint16(slot, 22, flags)

	offset := firstAttrOffset
	for _, a := range attrs {
		copy(slot[offset:], a)
		offset += len(a)
	}
	putUint32(slot, offset, attrListTerminator)

	return slot
}

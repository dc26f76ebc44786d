package ntfs

import (
	"encoding/binary"
	"log"
)

const (
	// MFTRecordSize is the typical on-disk size of one FILE record slot.
	MFTRecordSize = 1024

	// MFTSignature marks the start of a valid FILE record.
	MFTSignature = "FILE"

	attrStandardInformation = 0x10
	attrFileName            = 0x30
	attrData                = 0x80
	attrListTerminator      = 0xFFFFFFFF

	maxPathDepth      = 100
	pathTooDeepMarker = "...[path too deep]"
	parentNotFound    = "...[parent not found]"
	invalidIndex      = "...[invalid index]"

	rootEntryNumber = 5
)

// MFTParser decodes a $MFT file's fixed 1024-byte FILE records and
// resolves each record's parent_path from the parent-chain references
// embedded in its $FILE_NAME attribute.
type MFTParser struct {
	data       []byte
	records    []MFTRecord
	entryIndex map[uint32]int
}

// NewMFTParser constructs a parser over data. data's length need not be
// an exact multiple of MFTRecordSize; any trailing partial slot is
// ignored.
func NewMFTParser(data []byte) *MFTParser {
	return &MFTParser{data: data}
}

// Parse streams through data in MFTRecordSize slots, decoding every slot
// that begins with the FILE signature, then resolves parent paths across
// the whole record set. An unused slot is skipped silently and a slot
// that fails to parse is logged and skipped; parsing always continues at the next slot boundary, so one bad slot
// never aborts the run.
func (p *MFTParser) Parse() error {
	p.records = nil
	p.entryIndex = make(map[uint32]int)

	for offset := 0; offset+MFTRecordSize <= len(p.data); offset += MFTRecordSize {
		slot := p.data[offset : offset+MFTRecordSize]

		record, err := p.parseSlot(slot, offset)
		if err != nil {
			log.Printf("ntfs: skipping MFT slot at offset 0x%x: %v", offset, err)
			continue
		}
		if record == nil {
			continue // unused slot, not an error
		}

		p.entryIndex[record.EntryNumber] = len(p.records)
		p.records = append(p.records, *record)
	}

	p.resolveParentPaths()

	return nil
}

// Records returns the parsed MFT records in slot order.
func (p *MFTParser) Records() []MFTRecord {
	return p.records
}

func (p *MFTParser) parseSlot(slot []byte, offset int) (*MFTRecord, error) {
	if len(slot) < 4 || string(slot[0:4]) != MFTSignature {
		return nil, nil
	}
	if len(slot) < 24 {
		return nil, errAt(offset, "MFT slot shorter than fixed header")
	}

	seqNumber := binary.LittleEndian.Uint16(slot[16:18])
	firstAttrOffset := binary.LittleEndian.Uint16(slot[20:22])
	flags := binary.LittleEndian.Uint16(slot[22:24])

	record := &MFTRecord{
		EntryNumber: uint32(offset / MFTRecordSize),
		SeqNumber:   seqNumber,
		InUse:       flags&0x01 != 0,
		IsDirectory: flags&0x02 != 0,
	}

	p.walkAttributes(slot, firstAttrOffset, record)

	return record, nil
}

func (p *MFTParser) walkAttributes(slot []byte, firstAttrOffset uint16, record *MFTRecord) {
	offset := int(firstAttrOffset)

	for offset+16 <= len(slot) {
		attrType := binary.LittleEndian.Uint32(slot[offset:])
		if attrType == attrListTerminator {
			break
		}

		totalLength := binary.LittleEndian.Uint32(slot[offset+4:])
		if totalLength == 0 {
			break
		}

		attrEnd := offset + int(totalLength)
		if attrEnd > len(slot) || attrEnd <= offset {
			break
		}
		attrBody := slot[offset:attrEnd]

		switch attrType {
		case attrStandardInformation:
			parseStandardInformation(attrBody, record)
		case attrFileName:
			parseFileNameAttr(attrBody, record)
		case attrData:
			// Presence noted only; named $DATA streams are not
			// surfaced as a has_ads flag (see SPEC_FULL.md §4).
		}

		offset = attrEnd
	}
}

// parseStandardInformation decodes the resident $STANDARD_INFORMATION
// (0x10) body, which begins at the 16-byte common attribute header.
func parseStandardInformation(attr []byte, record *MFTRecord) {
	const residentHeaderSize = 16 + 8 // common header + content_size/content_offset/reserved
	if len(attr) < residentHeaderSize+32+4 {
		return
	}

	body := attr[residentHeaderSize:]
	record.Created0x10 = decodeFiletime(binary.LittleEndian.Uint64(body[0:8]))
	record.Modified0x10 = decodeFiletime(binary.LittleEndian.Uint64(body[8:16]))
	record.RecordChanged0x10 = decodeFiletime(binary.LittleEndian.Uint64(body[16:24]))
	record.Accessed0x10 = decodeFiletime(binary.LittleEndian.Uint64(body[24:32]))
	record.SIFlags = binary.LittleEndian.Uint32(body[32:36])
}

// parseFileNameAttr decodes a resident $FILE_NAME (0x30) body. When a
// record carries more than one $FILE_NAME (common: a Win32 long name
// plus a DOS 8.3 short name), the last one decoded wins, matching the
// source tool's behavior; callers that want to exclude DOS short names
// filter on NameType themselves.
func parseFileNameAttr(attr []byte, record *MFTRecord) {
	const residentHeaderSize = 16 + 8
	const fixedBodySize = 8 + 32 + 8 + 8 + 4 + 4 + 1 + 1 // parent ref..name_type
	if len(attr) < residentHeaderSize+fixedBodySize {
		return
	}

	body := attr[residentHeaderSize:]

	parentRef := binary.LittleEndian.Uint64(body[0:8])
	parentEntry, parentSeq := splitFileReference(parentRef)
	record.ParentEntryNumber = parentEntry
	record.ParentSeqNumber = &parentSeq

	record.Created0x30 = decodeFiletime(binary.LittleEndian.Uint64(body[8:16]))
	record.Modified0x30 = decodeFiletime(binary.LittleEndian.Uint64(body[16:24]))
	record.RecordChanged0x30 = decodeFiletime(binary.LittleEndian.Uint64(body[24:32]))
	record.Accessed0x30 = decodeFiletime(binary.LittleEndian.Uint64(body[32:40]))

	// allocated size at body[40:48] is ignored
	record.FileSize = binary.LittleEndian.Uint64(body[48:56])
	// flags at body[56:60] and reparse value at body[60:64] are ignored

	nameLength := body[64]
	record.NameType = NameType(body[65])

	nameBytesLen := int(nameLength) * 2
	if fixedBodySize+nameBytesLen > len(body) {
		return
	}
	nameBytes := body[fixedBodySize : fixedBodySize+nameBytesLen]

	name := decodeUTF16LE(nameBytes)
	record.FileName = name
	record.Extension = extensionOf(name)
}

// resolveParentPaths runs the second pass over a completed record set,
// populating ParentPath without holding any reference into p.records
// across the mutation: it reads through the immutable entryIndex and
// writes back by index.
func (p *MFTParser) resolveParentPaths() {
	for i := range p.records {
		parent := p.records[i].ParentEntryNumber

		switch {
		case parent == rootEntryNumber:
			p.records[i].ParentPath = ""
		case parent == p.records[i].EntryNumber:
			// Self-parent: orphaned, leave ParentPath empty and do not
			// recurse.
		default:
			p.records[i].ParentPath = p.buildPath(parent, 0)
		}
	}
}

func (p *MFTParser) buildPath(entryNumber uint32, depth int) string {
	if depth > maxPathDepth {
		return pathTooDeepMarker
	}
	if entryNumber == rootEntryNumber {
		return ""
	}

	index, ok := p.entryIndex[entryNumber]
	if !ok {
		return parentNotFound
	}
	if index < 0 || index >= len(p.records) {
		return invalidIndex
	}

	record := p.records[index]

	var prefix string
	if record.ParentEntryNumber == rootEntryNumber {
		prefix = ""
	} else if record.ParentEntryNumber == record.EntryNumber {
		prefix = ""
	} else {
		prefix = p.buildPath(record.ParentEntryNumber, depth+1)
	}

	if prefix == "" {
		return record.FileName
	}
	return prefix + "/" + record.FileName
}

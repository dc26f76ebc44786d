package ntfs

import "encoding/binary"

// I30Signature marks the start of an INDX index-allocation block.
const I30Signature = "INDX"

const i30HeaderSize = 24 // signature..VCN, before the index header

// I30Parser decodes one INDX block's index header and entry stream.
type I30Parser struct {
	data    []byte
	entries []IndexEntry
}

// NewI30Parser constructs a parser over data.
func NewI30Parser(data []byte) *I30Parser {
	return &I30Parser{data: data}
}

// Parse decodes the INDX header and walks its entries. A missing or
// mismatched "INDX" signature is a stream-level error.
func (p *I30Parser) Parse() error {
	p.entries = nil

	if len(p.data) < i30HeaderSize+16 {
		return errAt(0, "I30 buffer too small for header")
	}
	if string(p.data[0:4]) != I30Signature {
		return errAt(0, "missing INDX signature")
	}

	entriesOffset := binary.LittleEndian.Uint32(p.data[i30HeaderSize:])

	offset := i30HeaderSize + int(entriesOffset)
	for offset+16 <= len(p.data) {
		entry, next, ok := p.parseEntry(offset)
		if !ok {
			break
		}
		p.entries = append(p.entries, entry)
		offset = next
	}

	return nil
}

func (p *I30Parser) parseEntry(start int) (IndexEntry, int, bool) {
	const fixedHeaderSize = 8 + 2 + 2 + 4 // file ref, entry_length, filename_length, flags
	if start+fixedHeaderSize > len(p.data) {
		return IndexEntry{}, 0, false
	}

	fileRef := binary.LittleEndian.Uint64(p.data[start:])
	entryNumber, seqNumber := splitFileReference(fileRef)

	entryLength := binary.LittleEndian.Uint16(p.data[start+8:])
	flags := binary.LittleEndian.Uint32(p.data[start+12:])

	if entryLength == 0 || flags&0x02 != 0 {
		return IndexEntry{}, 0, false
	}

	end := start + int(entryLength)
	if end > len(p.data) || end <= start {
		return IndexEntry{}, 0, false
	}
	body := p.data[start+fixedHeaderSize:]

	const fixedBodySize = 8 + 8 + 8 + 8 + 8 + 8 + 8 + 4 + 4 + 1 + 1 // parent ref, 4 filetimes, allocated, file_size..name_type
	if len(body) < fixedBodySize {
		return IndexEntry{}, 0, false
	}

	parentRef := binary.LittleEndian.Uint64(body[0:8])
	parentEntry, parentSeq := splitFileReference(parentRef)

	created := binary.LittleEndian.Uint64(body[8:16])
	modified := binary.LittleEndian.Uint64(body[16:24])
	// record_changed at body[24:32] is ignored
	accessed := binary.LittleEndian.Uint64(body[32:40])
	// allocated size at body[40:48] is ignored
	fileSize := binary.LittleEndian.Uint64(body[48:56])
	attributes := binary.LittleEndian.Uint32(body[56:60])
	// reparse value at body[60:64] is ignored

	nameLength := body[64]
	// name_type at body[65] is not retained on IndexEntry

	nameBytesLen := int(nameLength) * 2
	nameStart := fixedBodySize
	nameEnd := nameStart + nameBytesLen
	var fileName string
	if nameEnd > len(body) {
		fileName = invalidName
	} else {
		fileName = decodeUTF16LE(body[nameStart:nameEnd])
	}

	entry := IndexEntry{
		EntryNumber: entryNumber,
		SeqNumber:   seqNumber,
		ParentEntry: parentEntry,
		ParentSeq:   parentSeq,
		FileName:    fileName,
		FileSize:    fileSize,
		IsDirectory: attributes&0x10 != 0,
		Created:     decodeFiletime(created),
		Modified:    decodeFiletime(modified),
		Accessed:    decodeFiletime(accessed),
		Attributes:  attributes,
	}

	return entry, end, true
}

// Records returns the parsed index entries in stream order.
func (p *I30Parser) Records() []IndexEntry {
	return p.entries
}

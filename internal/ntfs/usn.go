package ntfs

import (
	"encoding/binary"
	"fmt"
	"log"
	"strings"
)

// usnReasonFlag pairs a reason bit with its token, in the fixed table
// order the output string must preserve.
type usnReasonFlag struct {
	bit   uint32
	token string
}

var usnReasonTable = []usnReasonFlag{
	{0x00000001, "DATA_OVERWRITE"},
	{0x00000002, "DATA_EXTEND"},
	{0x00000004, "DATA_TRUNCATION"},
	{0x00000010, "NAMED_DATA_OVERWRITE"},
	{0x00000020, "NAMED_DATA_EXTEND"},
	{0x00000040, "NAMED_DATA_TRUNCATION"},
	{0x00000100, "FILE_CREATE"},
	{0x00000200, "FILE_DELETE"},
	{0x00000400, "EA_CHANGE"},
	{0x00000800, "SECURITY_CHANGE"},
	{0x00001000, "RENAME_OLD_NAME"},
	{0x00002000, "RENAME_NEW_NAME"},
	{0x00004000, "INDEXABLE_CHANGE"},
	{0x00008000, "BASIC_INFO_CHANGE"},
	{0x00010000, "HARD_LINK_CHANGE"},
	{0x00020000, "COMPRESSION_CHANGE"},
	{0x00040000, "ENCRYPTION_CHANGE"},
	{0x00080000, "OBJECT_ID_CHANGE"},
	{0x00100000, "REPARSE_POINT_CHANGE"},
	{0x00200000, "STREAM_CHANGE"},
	{0x80000000, "CLOSE"},
}

// formatUSNReason joins every known flag set in reason, in table order,
// with " | ". A reason with no recognized bits yields UNKNOWN(0x%08x).
func formatUSNReason(reason uint32) string {
	var tokens []string
	for _, f := range usnReasonTable {
		if reason&f.bit != 0 {
			tokens = append(tokens, f.token)
		}
	}
	if len(tokens) == 0 {
		return fmt.Sprintf("UNKNOWN(0x%08x)", reason)
	}
	return strings.Join(tokens, " | ")
}

const usnMinRecordHeader = 60

// USNParser decodes a $UsnJrnl:$J body into an ordered sequence of
// change-journal entries.
type USNParser struct {
	data    []byte
	entries []UsnEntry
}

// NewUSNParser constructs a parser over data.
func NewUSNParser(data []byte) *USNParser {
	return &USNParser{data: data}
}

// Parse reads variable-length, length-prefixed records starting at
// offset 0. A record_length of 0 marks end-of-stream and is not itself
// consumed. Advancement that fails to move forward (record_length too
// small to cover the fixed header) is a stream-level error.
func (p *USNParser) Parse() error {
	p.entries = nil

	offset := 0
	for offset < len(p.data) {
		if offset+4 > len(p.data) {
			break
		}

		recordLength := binary.LittleEndian.Uint32(p.data[offset:])
		if recordLength == 0 {
			break
		}

		entry, err := p.parseRecord(offset, int(recordLength))
		if err != nil {
			log.Printf("ntfs: stopping USN parse at offset 0x%x: %v", offset, err)
			return err
		}

		p.entries = append(p.entries, *entry)
		offset += int(recordLength)
	}

	return nil
}

func (p *USNParser) parseRecord(start, recordLength int) (*UsnEntry, error) {
	if recordLength < usnMinRecordHeader {
		return nil, errAt(start, "USN record_length %d too small to advance past the fixed header", recordLength)
	}
	end := start + recordLength
	if end > len(p.data) {
		return nil, errAt(start, "USN record_length %d exceeds remaining buffer", recordLength)
	}

	rec := p.data[start:end]

	majorMinorEnd := 4 + 2 + 2
	fileRef := binary.LittleEndian.Uint64(rec[majorMinorEnd : majorMinorEnd+8])
	entryNumber, seqNumber := splitFileReference(fileRef)

	parentRef := binary.LittleEndian.Uint64(rec[majorMinorEnd+8 : majorMinorEnd+16])
	parentEntry, parentSeq := splitFileReference(parentRef)

	usn := binary.LittleEndian.Uint64(rec[majorMinorEnd+16 : majorMinorEnd+24])
	timestamp := binary.LittleEndian.Uint64(rec[majorMinorEnd+24 : majorMinorEnd+32])
	reason := binary.LittleEndian.Uint32(rec[majorMinorEnd+32 : majorMinorEnd+36])
	// source_info at +36:+40 and security_id at +40:+44 are ignored
	fileAttributes := binary.LittleEndian.Uint32(rec[majorMinorEnd+44 : majorMinorEnd+48])
	fileNameLength := binary.LittleEndian.Uint16(rec[majorMinorEnd+48 : majorMinorEnd+50])
	fileNameOffset := binary.LittleEndian.Uint16(rec[majorMinorEnd+50 : majorMinorEnd+52])

	nameStart := int(fileNameOffset)
	nameEnd := nameStart + int(fileNameLength)
	var fileName string
	if nameStart < 0 || nameEnd > len(rec) || nameStart > nameEnd {
		fileName = invalidName
	} else {
		fileName = decodeUTF16LE(rec[nameStart:nameEnd])
	}

	return &UsnEntry{
		Offset:         uint64(start),
		USN:            usn,
		Timestamp:      decodeFiletime(timestamp),
		EntryNumber:    entryNumber,
		SeqNumber:      seqNumber,
		ParentEntry:    parentEntry,
		ParentSeq:      parentSeq,
		FileName:       fileName,
		Extension:      extensionOf(fileName),
		Reason:         formatUSNReason(reason),
		FileAttributes: fileAttributes,
	}, nil
}

// Records returns the parsed USN entries in stream order.
func (p *USNParser) Records() []UsnEntry {
	return p.entries
}

package ntfs

import (
	"encoding/binary"
	"log"
)

const (
	sdsHeaderSize   = 20
	sdsMaxDescLen   = 0x10000
)

// SDSParser iterates the variable-length entries of a $Secure:$SDS
// stream. Real NTFS pads entries to 16-byte alignment within 256 KiB
// blocks and duplicates each descriptor; this decoder treats the stream
// as tightly packed and will mis-align on a real volume's $SDS — a known,
// intentionally unfixed simplification carried over from the source tool.
type SDSParser struct {
	data        []byte
	descriptors []SecurityDescriptor
}

// NewSDSParser constructs a parser over data.
func NewSDSParser(data []byte) *SDSParser {
	return &SDSParser{data: data}
}

// Parse reads descriptors until the buffer is exhausted, a length of 0 is
// seen, or a length exceeding the 64 KiB sanity bound is seen — either of
// which ends the stream without error.
func (p *SDSParser) Parse() error {
	p.descriptors = nil

	offset := 0
	for offset+sdsHeaderSize <= len(p.data) {
		start := offset

		hash := binary.LittleEndian.Uint32(p.data[offset:])
		id := binary.LittleEndian.Uint32(p.data[offset+4:])
		length := binary.LittleEndian.Uint32(p.data[offset+16:])

		if length == 0 || length > sdsMaxDescLen {
			break
		}

		bodyStart := offset + sdsHeaderSize
		bodyEnd := bodyStart + int(length)
		if bodyEnd > len(p.data) {
			log.Printf("ntfs: SDS descriptor at offset 0x%x claims %d bytes past end of buffer", start, length)
			break
		}

		descriptor := make([]byte, length)
		copy(descriptor, p.data[bodyStart:bodyEnd])

		p.descriptors = append(p.descriptors, SecurityDescriptor{
			Hash:       hash,
			ID:         id,
			Offset:     uint64(start),
			Length:     length,
			Descriptor: descriptor,
		})

		offset = bodyEnd
	}

	return nil
}

// Records returns the parsed security descriptors in stream order.
func (p *SDSParser) Records() []SecurityDescriptor {
	return p.descriptors
}

// FindByID returns the first descriptor with the given id, if any.
func (p *SDSParser) FindByID(id uint32) (SecurityDescriptor, bool) {
	for _, d := range p.descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return SecurityDescriptor{}, false
}

// Package source loads an NTFS artifact file into the contiguous byte
// view the ntfs package's decoders require.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Source owns the byte view backing one decoded artifact file.
type Source struct {
	file    *os.File
	mapping mmap.MMap
	data    []byte
}

// Open maps path read-only. Regular, non-empty files are backed by an
// mmap.MMap; inputs that report a zero size (empty files, named pipes)
// are read from the open file into a plain buffer, and anything mmap.Map
// rejects (some triage-tool exports) falls back to a plain os.ReadFile
// buffer so callers never have to special-case the input shape.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat artifact: %w", err)
	}

	if stat.Size() == 0 {
		buf, rerr := io.ReadAll(file)
		file.Close()
		if rerr != nil {
			return nil, fmt.Errorf("failed to read artifact: %w", rerr)
		}
		return &Source{data: buf}, nil
	}

	m, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		buf, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, fmt.Errorf("failed to read artifact: %w", rerr)
		}
		return &Source{data: buf}, nil
	}

	return &Source{file: file, mapping: m, data: []byte(m)}, nil
}

// Bytes returns the contiguous byte view of the artifact. The slice is
// only valid until Close.
func (s *Source) Bytes() []byte {
	return s.data
}

// Close unmaps the file, or is a no-op for the os.ReadFile fallback.
func (s *Source) Close() error {
	if s.mapping != nil {
		if err := s.mapping.Unmap(); err != nil {
			s.file.Close()
			return fmt.Errorf("failed to unmap artifact: %w", err)
		}
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

package ingest

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/rowcrunch/onebrc/internal/debug"
	"github.com/rowcrunch/onebrc/internal/errors"
)

// FileMap owns a read-only, whole-file memory mapping. It is the sole
// owner of the mapping for the duration of processing: every worker's
// StationTable keys and every reduced result alias into Bytes(), so the
// mapping must outlive all of them.
type FileMap struct {
	f   *os.File
	mm  mmap.MMap
	len int
}

// Open acquires a read-only mapping of path. It is a fatal error (in the
// spec.md §7 sense) if the file does not exist, is not a regular file, or
// cannot be mapped.
func Open(path string) (*FileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Fatalf("opening input file: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Fatalf("statting input file: %v", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, errors.Fatalf("input path %q is not a regular file", path)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, errors.Fatalf("input file %q is empty", path)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Fatalf("mapping input file: %v", err)
	}

	if mm[len(mm)-1] != '\n' {
		_ = mm.Unmap()
		f.Close()
		return nil, errors.Fatal("input file does not end with a newline")
	}

	debug.Log("mapped %d bytes from %s", len(mm), path)

	return &FileMap{f: f, mm: mm, len: len(mm)}, nil
}

// Bytes returns the whole file as a read-only byte slice, safe for
// concurrent access by any number of readers without locking.
func (m *FileMap) Bytes() []byte {
	return m.mm
}

// Len returns the mapped length.
func (m *FileMap) Len() int {
	return m.len
}

// Close releases the mapping. Callers that want to hide munmap latency
// behind the canonical result (spec.md §5 "Teardown latency") should defer
// this until after the formatted output has been written.
func (m *FileMap) Close() error {
	if err := m.mm.Unmap(); err != nil {
		return errors.Wrap(err, "unmapping input file")
	}
	return m.f.Close()
}

package wordlist

import (
	"fmt"
	"math"
	"os"
)

// File is an open word source backing an Index.
//
// On unix platforms the file is memory-mapped read-only; elsewhere it is
// read into memory. Either way Bytes returns the full contents, and the
// buffer stays valid until Close. Close before the derived Index is
// released invalidates every word slice the Index handed out.
type File struct {
	f      *os.File
	data   []byte
	mapped bool
}

// Open opens a wordlist file and makes its contents available as a byte
// buffer. It fails with an error wrapping ErrEmptySource if the file is
// zero-length.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := st.Size()
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySource)
	}
	if size > math.MaxInt {
		f.Close()
		return nil, fmt.Errorf("%s: file too large to map", path)
	}

	data, mapped, err := load(f, int(size))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &File{f: f, data: data, mapped: mapped}, nil
}

// Bytes returns the file contents. The slice is valid until Close.
func (w *File) Bytes() []byte {
	return w.data
}

// Close releases the mapping (or buffer) and the file descriptor.
func (w *File) Close() error {
	var err error
	if w.mapped {
		err = unload(w.data)
	}
	w.data = nil

	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}

//go:build unix

package wordlist

import (
	"os"

	"golang.org/x/sys/unix"
)

// load maps the file read-only. Indexing scans the buffer front to
// back, so readahead is hinted sequential; the hint failing is harmless.
func load(f *os.File, size int) ([]byte, bool, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, err
	}

	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return data, true, nil
}

// unload releases a mapping created by load.
func unload(data []byte) error {
	return unix.Munmap(data)
}

//go:build !unix

package wordlist

import (
	"io"
	"os"
)

// load reads the whole file on platforms without the unix mmap API.
func load(f *os.File, _ int) ([]byte, bool, error) {
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, false, err
	}
	return buf, false, nil
}

// unload is a no-op for heap-backed buffers.
func unload(data []byte) error {
	return nil
}

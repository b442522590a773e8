// Package wordlist indexes newline-delimited word sources for random
// access.
//
// An Index records one (offset, length) entry per line of a byte buffer
// without copying word bytes. The buffer is typically a memory-mapped
// wordlist file opened with Open, but any caller-owned buffer works as
// long as it outlives the Index.
package wordlist

// Index is a random-access table over the words of a source buffer.
//
// Word order matches file order: index 0 is the first line. Both \n and
// \r\n line endings are accepted; a trailing \r is stripped from each
// entry's length. An empty line still counts as a zero-length word, and
// a final line without a terminator counts as one word.
//
// An Index is immutable after NewIndex returns and safe to share across
// goroutines.
type Index struct {
	data    []byte
	offsets []uint64
	lengths []uint32
}

// NewIndex scans data and builds the word table in two O(n) passes: the
// first counts words to size the table up front, the second records the
// entries. It fails with ErrEmptySource if data contains no words.
//
// The Index references data directly; the caller must keep the buffer
// alive and unmodified for the lifetime of the Index.
func NewIndex(data []byte) (*Index, error) {
	count := countWords(data)
	if count == 0 {
		return nil, ErrEmptySource
	}

	idx := &Index{
		data:    data,
		offsets: make([]uint64, 0, count),
		lengths: make([]uint32, 0, count),
	}

	lineStart := 0
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			idx.record(lineStart, i)
			lineStart = i + 1
		}
	}

	// Final line without a terminator.
	if lineStart < len(data) {
		idx.record(lineStart, len(data))
	}

	return idx, nil
}

// record adds one entry for data[start:end], end exclusive of the line
// terminator, stripping a trailing carriage return.
func (x *Index) record(start, end int) {
	if end > start && x.data[end-1] == '\r' {
		end--
	}
	x.offsets = append(x.offsets, uint64(start))
	x.lengths = append(x.lengths, uint32(end-start))
}

// countWords counts line terminators, plus one if the buffer does not
// end with one.
func countWords(data []byte) uint64 {
	var count uint64
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		count++
	}
	return count
}

// Count returns the number of words in the source.
func (x *Index) Count() uint64 {
	return uint64(len(x.offsets))
}

// Word returns the bytes of word i as a slice into the source buffer.
// The returned slice must not be modified.
func (x *Index) Word(i uint64) []byte {
	off := x.offsets[i]
	return x.data[off : off+uint64(x.lengths[i])]
}

// SourceLen returns the byte length of the indexed buffer.
func (x *Index) SourceLen() int {
	return len(x.data)
}

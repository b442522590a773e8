package maskdict

import "github.com/coregx/maskdict/pattern"

// Cursor enumerates candidates over a Generator's keyspace.
//
// The cursor tracks a (word index, mask index) pair plus the decoded
// per-position character indices and the absolute offset, with the
// invariant offset == wordIndex*MaskKeyspace + maskIndex. The mask
// positions advance in odometer order: the last position cycles
// fastest, and the word changes only after the mask combinations are
// exhausted for it.
//
// A Cursor is exclusively owned by one goroutine. Workers partition the
// keyspace by creating independent cursors and seeking each to its own
// start offset; no cross-cursor synchronization is needed.
type Cursor struct {
	gen *Generator

	wordIdx uint64
	maskIdx uint64
	offset  uint64

	indices [pattern.MaxPositions]uint32

	buf []byte
}

// NewCursor returns a cursor positioned at absolute offset 0.
func (g *Generator) NewCursor() *Cursor {
	c := &Cursor{
		gen: g,
		buf: make([]byte, g.maxCandidateLen),
	}
	c.setIndices(0)
	return c
}

// setIndices decodes maskIdx into per-position character indices,
// treating the non-word positions in reverse order as digits of a
// mixed-radix number. The last mask position is the least significant
// digit; the word slot contributes no digit and gets index 0.
func (c *Cursor) setIndices(maskIdx uint64) {
	ps := c.gen.pat.Positions
	remaining := maskIdx

	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Kind == pattern.KindWord {
			c.indices[i] = 0
			continue
		}

		w := ps[i].Width()
		c.indices[i] = uint32(remaining % w)
		remaining /= w
	}
}

// maskIndex folds the per-position indices back into a linear mask
// offset. Inverse of setIndices.
func (c *Cursor) maskIndex() uint64 {
	ps := c.gen.pat.Positions
	var idx uint64

	for i := 0; i < len(ps); i++ {
		if ps[i].Kind == pattern.KindWord {
			continue
		}
		idx = idx*ps[i].Width() + uint64(c.indices[i])
	}

	return idx
}

// Exhausted reports whether the cursor has produced every candidate.
func (c *Cursor) Exhausted() bool {
	return c.wordIdx >= c.gen.words.Count()
}

// Offset returns the cursor's absolute offset in the total keyspace.
func (c *Cursor) Offset() uint64 {
	return c.offset
}

// WordIndex returns the index of the current dictionary word.
func (c *Cursor) WordIndex() uint64 {
	return c.wordIdx
}

// MaskIndex returns the linear offset within the mask keyspace.
func (c *Cursor) MaskIndex() uint64 {
	return c.maskIdx
}

// Next renders the current candidate into out and advances the cursor.
// It returns the number of bytes written and false once the keyspace is
// exhausted. Candidates longer than out are silently truncated.
func (c *Cursor) Next(out []byte) (int, bool) {
	if c.Exhausted() {
		return 0, false
	}

	n := c.Render(out)
	c.advance()

	return n, true
}

// NextCandidate is Next rendering into the cursor's own buffer, sized
// by Config.MaxCandidateLen. The returned slice is valid until the next
// call on this cursor.
func (c *Cursor) NextCandidate() ([]byte, bool) {
	n, ok := c.Next(c.buf)
	if !ok {
		return nil, false
	}
	return c.buf[:n], true
}

// advance steps to the next combination: the mask index increments and
// wraps into the next word at the mask keyspace boundary. Index
// recomputation is skipped once the cursor is exhausted; the absolute
// offset increments unconditionally.
func (c *Cursor) advance() {
	c.maskIdx++
	if c.maskIdx >= c.gen.maskKeyspace {
		c.maskIdx = 0
		c.wordIdx++
	}

	if c.wordIdx < c.gen.words.Count() {
		c.setIndices(c.maskIdx)
	}

	c.offset++
}

// Seek repositions the cursor at an absolute offset in O(1), without
// iterating. It fails with an error wrapping ErrOutOfRange if offset is
// at or past the total keyspace, leaving the cursor unchanged.
func (c *Cursor) Seek(offset uint64) error {
	if offset >= c.gen.totalKeyspace {
		return &SeekError{Offset: offset, Keyspace: c.gen.totalKeyspace}
	}

	c.wordIdx = offset / c.gen.maskKeyspace
	c.maskIdx = offset % c.gen.maskKeyspace
	c.offset = offset
	c.setIndices(c.maskIdx)

	return nil
}

package maskdict

// Render writes the current candidate into out and returns the number
// of bytes written, without advancing the cursor.
//
// The candidate is assembled in order: one byte per prefix position,
// the current word copied from the source buffer, then one byte per
// suffix position. Render never fails and never writes past len(out):
// the word is truncated to the remaining capacity and suffix positions
// are skipped once the buffer is full. An exhausted cursor renders
// nothing.
func (c *Cursor) Render(out []byte) int {
	if c.Exhausted() {
		return 0
	}

	ps := c.gen.pat.Positions
	wordPos := c.gen.pat.WordPos
	word := c.gen.words.Word(c.wordIdx)

	n := 0

	for i := 0; i < wordPos; i++ {
		if n >= len(out) {
			return n
		}
		out[n] = ps[i].ByteAt(c.indices[i])
		n++
	}

	if n+len(word) > len(out) {
		word = word[:len(out)-n]
	}
	n += copy(out[n:], word)

	for i := wordPos + 1; i < len(ps); i++ {
		if n >= len(out) {
			break
		}
		out[n] = ps[i].ByteAt(c.indices[i])
		n++
	}

	return n
}

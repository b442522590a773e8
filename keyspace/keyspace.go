// Package keyspace computes candidate counts with saturating 64-bit
// arithmetic.
//
// Keyspaces multiply up quickly: eight ?b positions already exceed
// 2^64. Rather than wrapping or failing, every product in this package
// clamps to Max, so an oversized keyspace is reported as an upper bound
// and generation stays well-defined.
package keyspace

import (
	"math"

	"github.com/coregx/maskdict/pattern"
)

// Max is the saturation bound for all keyspace arithmetic.
const Max = math.MaxUint64

// Mask returns the number of combinations produced by the non-word
// positions of a compiled pattern: the product of every position width,
// saturating at Max. Literal positions contribute a factor of 1; the
// word slot contributes nothing.
func Mask(positions []pattern.Position) uint64 {
	ks := uint64(1)

	for _, pos := range positions {
		if pos.Kind == pattern.KindWord {
			continue
		}

		// Widths are at least 1 for any position a successful compile
		// emits, so ks never reaches zero and the bound check is safe.
		w := pos.Width()
		if w > Max/ks {
			return Max
		}
		ks *= w
	}

	return ks
}

// Total returns wordCount * maskKeyspace, saturating at Max.
func Total(wordCount, maskKeyspace uint64) uint64 {
	if wordCount != 0 && maskKeyspace > Max/wordCount {
		return Max
	}
	return wordCount * maskKeyspace
}

// Package pattern compiles mask pattern strings into ordered lists of
// typed positions.
//
// A pattern mixes literal bytes with ?-escapes: ?l ?u ?d ?s ?a ?h ?H ?b
// select built-in character classes, ?1 to ?4 select custom classes from
// a charset.Registry, ?? is a literal question mark, and ?W marks the
// single dictionary-word slot every pattern must contain exactly once.
//
// Compilation is a single left-to-right scan. The same pattern string
// compiled against the same registry state always yields the same
// position list.
package pattern

import (
	"github.com/coregx/maskdict/charset"
)

// MaxPositions is the maximum number of positions a pattern may compile
// to, word slot included.
const MaxPositions = 32

// Kind discriminates the variants of a Position.
type Kind uint8

const (
	// KindClass is a position drawing one byte from a character class.
	KindClass Kind = iota

	// KindLiteral is a position holding exactly one fixed byte.
	KindLiteral

	// KindWord is the dictionary-word slot.
	KindWord
)

// Position is one slot of a compiled pattern.
//
// Exactly one of the variant fields is meaningful, selected by Kind:
// Charset for KindClass, Literal for KindLiteral, neither for KindWord.
type Position struct {
	Kind    Kind
	Charset string
	Literal byte
}

// Width returns the number of character choices at this position.
// Literal positions contribute a single choice; the word slot
// contributes none and reports zero.
func (p Position) Width() uint64 {
	switch p.Kind {
	case KindClass:
		return uint64(len(p.Charset))
	case KindLiteral:
		return 1
	default:
		return 0
	}
}

// ByteAt returns the byte this position produces for character index i.
// i must be below Width; the word slot never reaches here.
func (p Position) ByteAt(i uint32) byte {
	if p.Kind == KindLiteral {
		return p.Literal
	}
	return p.Charset[i]
}

// Pattern is a compiled mask pattern.
//
// A Pattern is immutable after Compile returns and safe to share across
// goroutines. WordPos is the index of the single KindWord position;
// PrefixLen and SuffixLen count the positions before and after it.
type Pattern struct {
	Positions []Position
	WordPos   int
	PrefixLen int
	SuffixLen int

	source string
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Compile compiles a mask pattern string against the given registry.
// A nil registry resolves only the built-in classes.
//
// Compile fails with an error wrapping ErrInvalidPattern when the
// pattern exceeds MaxPositions, ends in an unescaped '?', uses an
// unknown specifier, references an undefined custom charset, or does
// not contain exactly one ?W.
func Compile(source string, reg *charset.Registry) (*Pattern, error) {
	if reg == nil {
		reg = charset.NewRegistry()
	}

	p := &Pattern{
		Positions: make([]Position, 0, len(source)),
		WordPos:   -1,
		source:    source,
	}

	for i := 0; i < len(source); {
		if len(p.Positions) >= MaxPositions {
			return nil, &CompileError{Pattern: source, Message: "too many positions (maximum 32)"}
		}

		if source[i] != '?' {
			p.Positions = append(p.Positions, Position{Kind: KindLiteral, Literal: source[i]})
			i++
			continue
		}

		if i+1 >= len(source) {
			return nil, &CompileError{Pattern: source, Message: "'?' at end of pattern"}
		}

		spec := source[i+1]
		i += 2

		switch spec {
		case '?':
			p.Positions = append(p.Positions, Position{Kind: KindLiteral, Literal: '?'})

		case 'W':
			if p.WordPos >= 0 {
				return nil, &CompileError{Pattern: source, Message: "only one ?W allowed"}
			}
			p.WordPos = len(p.Positions)
			p.Positions = append(p.Positions, Position{Kind: KindWord})

		default:
			cs, ok := reg.Resolve(spec)
			if !ok {
				if spec >= '1' && spec <= '0'+charset.MaxCustom {
					return nil, &CompileError{Pattern: source, Message: "custom charset ?" + string(spec) + " is not defined"}
				}
				return nil, &CompileError{Pattern: source, Message: "unknown specifier ?" + string(spec)}
			}
			p.Positions = append(p.Positions, Position{Kind: KindClass, Charset: cs})
		}
	}

	if p.WordPos < 0 {
		return nil, &CompileError{Pattern: source, Message: "?W (word placeholder) is required"}
	}

	p.PrefixLen = p.WordPos
	p.SuffixLen = len(p.Positions) - p.WordPos - 1

	return p, nil
}

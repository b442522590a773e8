// Package charset defines the built-in character classes used by mask
// patterns and a registry that resolves user-composed custom classes.
//
// Built-in classes follow the hashcat mask conventions: ?l, ?u, ?d, ?s,
// ?a, ?h, ?H and ?b. Up to four custom classes (?1 to ?4) can be composed
// from literals and previously defined classes through DefineCustom.
//
// Charsets are plain strings: ordered, possibly containing duplicates,
// and immutable once built. Compiled patterns hold them by reference,
// so a Registry must not be redefined while patterns built from it are
// in use.
package charset

// Built-in character classes, in hashcat mask order.
const (
	// Lower is the ?l class (a-z).
	Lower = "abcdefghijklmnopqrstuvwxyz"

	// Upper is the ?u class (A-Z).
	Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Digit is the ?d class (0-9).
	Digit = "0123456789"

	// Special is the ?s class: space plus ASCII punctuation.
	Special = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// HexLower is the ?h class (0-9a-f).
	HexLower = "0123456789abcdef"

	// HexUpper is the ?H class (0-9A-F).
	HexUpper = "0123456789ABCDEF"

	// All is the ?a class: Lower, Upper, Digit and Special concatenated
	// in that order.
	All = Lower + Upper + Digit + Special
)

// Binary is the ?b class: every byte value 0x00 through 0xFF in order.
var Binary = func() string {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return string(b)
}()

const (
	// MaxCustom is the number of custom charset slots (?1 to ?4).
	MaxCustom = 4

	// MaxCustomLen caps the expanded length of a custom charset.
	// Appends past the cap are silently discarded.
	MaxCustomLen = 256
)

// Builtin resolves a built-in class specifier (the letter following '?')
// to its charset. It reports false for specifiers it does not know,
// including the custom slot digits and 'W'.
func Builtin(spec byte) (string, bool) {
	switch spec {
	case 'l':
		return Lower, true
	case 'u':
		return Upper, true
	case 'd':
		return Digit, true
	case 's':
		return Special, true
	case 'a':
		return All, true
	case 'h':
		return HexLower, true
	case 'H':
		return HexUpper, true
	case 'b':
		return Binary, true
	}
	return "", false
}

// Registry holds the four user-definable custom charsets alongside the
// built-in classes. The zero value is ready to use with no custom slots
// defined.
//
// A Registry is mutable only through DefineCustom. Once every slot a
// pattern needs has been defined, the Registry is read-only for the rest
// of the run and safe to share across goroutines.
type Registry struct {
	custom  [MaxCustom]string
	defined [MaxCustom]bool
}

// NewRegistry returns an empty registry with no custom slots defined.
func NewRegistry() *Registry {
	return &Registry{}
}

// Custom returns the charset defined for slot (1 to MaxCustom) and
// whether that slot has been defined.
func (r *Registry) Custom(slot int) (string, bool) {
	if slot < 1 || slot > MaxCustom {
		return "", false
	}
	if !r.defined[slot-1] {
		return "", false
	}
	return r.custom[slot-1], true
}

// Resolve maps a pattern specifier to its charset: built-in letters and
// defined custom slot digits. Reports false for anything else.
func (r *Registry) Resolve(spec byte) (string, bool) {
	if cs, ok := Builtin(spec); ok {
		return cs, true
	}
	if spec >= '1' && spec <= '0'+MaxCustom {
		return r.Custom(int(spec - '0'))
	}
	return "", false
}

// DefineCustom parses definition and stores the result in slot
// (1 to MaxCustom). The definition is scanned left to right:
//
//   - ?l ?u ?d ?s ?a ?h ?H ?b append the corresponding built-in class
//   - ?1 to ?4 append an already-defined, strictly earlier slot
//   - ?? appends a literal '?'
//   - any other byte is appended as-is
//
// The expanded charset is capped at MaxCustomLen bytes; bytes appended
// before the cap is reached are kept, the rest are dropped. Slots are
// defined in increasing order: a definition may not reference its own
// slot or a later one.
func (r *Registry) DefineCustom(slot int, definition string) error {
	if slot < 1 || slot > MaxCustom {
		return &DefinitionError{Slot: slot, Message: "no such custom charset slot"}
	}

	buf := make([]byte, 0, MaxCustomLen)

	for i := 0; i < len(definition); {
		if definition[i] != '?' {
			buf = appendCapped(buf, definition[i])
			i++
			continue
		}

		if i+1 >= len(definition) {
			return &DefinitionError{Slot: slot, Message: "'?' at end of definition"}
		}

		spec := definition[i+1]
		i += 2

		switch {
		case spec == '?':
			buf = appendCapped(buf, '?')

		case spec >= '1' && spec <= '0'+MaxCustom:
			ref := int(spec - '0')
			if ref >= slot {
				return &DefinitionError{Slot: slot, Message: refError(ref, "may only reference earlier slots")}
			}
			cs, ok := r.Custom(ref)
			if !ok {
				return &DefinitionError{Slot: slot, Message: refError(ref, "is not defined")}
			}
			buf = appendCappedString(buf, cs)

		default:
			cs, ok := Builtin(spec)
			if !ok {
				return &DefinitionError{Slot: slot, Message: "unknown specifier ?" + string(spec)}
			}
			buf = appendCappedString(buf, cs)
		}
	}

	if len(buf) == 0 {
		return &DefinitionError{Slot: slot, Message: "definition expands to an empty charset"}
	}

	r.custom[slot-1] = string(buf)
	r.defined[slot-1] = true
	return nil
}

func refError(ref int, msg string) string {
	return "reference ?" + string(rune('0'+ref)) + " " + msg
}

// appendCapped appends one byte unless the cap has been reached.
func appendCapped(buf []byte, b byte) []byte {
	if len(buf) >= MaxCustomLen {
		return buf
	}
	return append(buf, b)
}

// appendCappedString appends as much of s as fits under the cap.
func appendCappedString(buf []byte, s string) []byte {
	if room := MaxCustomLen - len(buf); len(s) > room {
		s = s[:room]
	}
	return append(buf, s...)
}

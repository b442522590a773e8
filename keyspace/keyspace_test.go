package keyspace

import (
	"testing"

	"github.com/coregx/maskdict/pattern"
)

func compile(t *testing.T, src string) *pattern.Pattern {
	t.Helper()
	p, err := pattern.Compile(src, nil)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return p
}

func TestMask(t *testing.T) {
	tests := []struct {
		src  string
		want uint64
	}{
		{"?d?d?W?s", 10 * 10 * 33},
		{"?W", 1},
		{"a?W", 1},    // literals contribute a factor of 1
		{"ab?Wcd", 1}, // any number of them
		{"?l?W?d", 26 * 10},
		{"?b?W", 256},
		{"?h?H?W", 16 * 16},
	}

	for _, tt := range tests {
		p := compile(t, tt.src)
		if got := Mask(p.Positions); got != tt.want {
			t.Errorf("Mask(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestMaskSaturates(t *testing.T) {
	// Eight ?b positions are 256^8 = 2^64 combinations, one past the
	// representable range.
	p := compile(t, "?b?b?b?b?b?b?b?b?W")
	if got := Mask(p.Positions); got != Max {
		t.Errorf("Mask = %d, want saturation at Max", got)
	}

	// Seven fit exactly.
	p = compile(t, "?b?b?b?b?b?b?b?W")
	if got := Mask(p.Positions); got != 1<<56 {
		t.Errorf("Mask = %d, want %d", got, uint64(1)<<56)
	}
}

func TestTotal(t *testing.T) {
	if got := Total(2, 3300); got != 6600 {
		t.Errorf("Total(2, 3300) = %d, want 6600", got)
	}
	if got := Total(0, 3300); got != 0 {
		t.Errorf("Total(0, 3300) = %d, want 0", got)
	}
	if got := Total(1, Max); got != Max {
		t.Errorf("Total(1, Max) = %d, want Max", got)
	}
}

func TestTotalSaturates(t *testing.T) {
	if got := Total(3, Max); got != Max {
		t.Errorf("Total(3, Max) = %d, want Max", got)
	}
	if got := Total(Max, 2); got != Max {
		t.Errorf("Total(Max, 2) = %d, want Max", got)
	}
	// 2^32 * 2^32 = 2^64 overflows by one.
	if got := Total(1<<32, 1<<32); got != Max {
		t.Errorf("Total(2^32, 2^32) = %d, want Max", got)
	}
	// 2^32 * (2^32 - 1) fits.
	if got := Total(1<<32, 1<<32-1); got != (1<<32)*(1<<32-1) {
		t.Errorf("Total just under the bound should not saturate, got %d", got)
	}
}

package wordlist

import (
	"errors"
	"testing"
)

func TestNewIndexBasic(t *testing.T) {
	idx, err := NewIndex([]byte("abc\ndef\n"))
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	if idx.Count() != 2 {
		t.Fatalf("Count = %d, want 2", idx.Count())
	}
	if got := string(idx.Word(0)); got != "abc" {
		t.Errorf("Word(0) = %q, want \"abc\"", got)
	}
	if got := string(idx.Word(1)); got != "def" {
		t.Errorf("Word(1) = %q, want \"def\"", got)
	}
	if idx.SourceLen() != 8 {
		t.Errorf("SourceLen = %d, want 8", idx.SourceLen())
	}
}

func TestNewIndexNoTrailingNewline(t *testing.T) {
	idx, err := NewIndex([]byte("abc\ndef"))
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	if idx.Count() != 2 {
		t.Fatalf("Count = %d, want 2", idx.Count())
	}
	if got := string(idx.Word(1)); got != "def" {
		t.Errorf("final partial line = %q, want \"def\"", got)
	}
}

func TestNewIndexStripsCarriageReturn(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"crlf terminated", "abc\r\n", []string{"abc"}},
		{"crlf middle", "abc\r\ndef\r\n", []string{"abc", "def"}},
		{"cr only on final partial line", "abc\ndef\r", []string{"abc", "def"}},
		{"bare cr inside word is kept", "a\rb\n", []string{"a\rb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := NewIndex([]byte(tt.data))
			if err != nil {
				t.Fatalf("NewIndex: %v", err)
			}
			if idx.Count() != uint64(len(tt.want)) {
				t.Fatalf("Count = %d, want %d", idx.Count(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := string(idx.Word(uint64(i))); got != want {
					t.Errorf("Word(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestNewIndexEmptyLines(t *testing.T) {
	idx, err := NewIndex([]byte("abc\n\ndef\n"))
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	if idx.Count() != 3 {
		t.Fatalf("Count = %d, want 3", idx.Count())
	}
	if got := string(idx.Word(1)); got != "" {
		t.Errorf("empty line should index as a zero-length word, got %q", got)
	}

	// A source of only terminators still has words.
	idx, err = NewIndex([]byte("\n\n"))
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	if idx.Count() != 2 {
		t.Errorf("Count = %d, want 2", idx.Count())
	}
}

func TestNewIndexEmptySource(t *testing.T) {
	if _, err := NewIndex(nil); !errors.Is(err, ErrEmptySource) {
		t.Errorf("nil buffer: got %v, want ErrEmptySource", err)
	}
	if _, err := NewIndex([]byte{}); !errors.Is(err, ErrEmptySource) {
		t.Errorf("empty buffer: got %v, want ErrEmptySource", err)
	}
}

func TestIndexBorrowsBuffer(t *testing.T) {
	data := []byte("abc\n")
	idx, err := NewIndex(data)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	// Entries reference the caller's buffer rather than copies.
	w := idx.Word(0)
	if &w[0] != &data[0] {
		t.Error("Word should alias the source buffer, not copy it")
	}
}

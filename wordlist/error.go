package wordlist

import "errors"

// ErrEmptySource indicates the word source contains no words.
var ErrEmptySource = errors.New("wordlist is empty")

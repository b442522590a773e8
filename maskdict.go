// Package maskdict generates password candidates by combining a mask
// pattern with words from a dictionary.
//
// A pattern mixes character-class escapes with a single ?W word slot:
// the pattern "?d?d?W?s" produces "00password ", "00password!", ...,
// "99password~" for every word in the list. Every (mask, word)
// combination is produced exactly once, in a well-defined total order,
// and any candidate can be reached directly by its absolute offset
// without iterating from the start.
//
// Basic usage:
//
//	src, err := wordlist.Open("rockyou.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	gen, err := maskdict.Compile("?d?d?W?s", src.Bytes())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cur := gen.NewCursor()
//	for {
//	    candidate, ok := cur.NextCandidate()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%s\n", candidate)
//	}
//
// Partitioning across workers:
//
//	// Each worker owns an independent cursor and seeks to its slice.
//	cur := gen.NewCursor()
//	if err := cur.Seek(gen.TotalKeyspace() / 2); err != nil {
//	    log.Fatal(err)
//	}
//
// A Generator is immutable after Compile returns and safe to share
// across goroutines; each Cursor belongs to exactly one.
package maskdict

import (
	"time"

	"github.com/coregx/maskdict/charset"
	"github.com/coregx/maskdict/keyspace"
	"github.com/coregx/maskdict/pattern"
	"github.com/coregx/maskdict/wordlist"
)

// Generator is a compiled pattern bound to an indexed word source.
type Generator struct {
	pat   *pattern.Pattern
	words *wordlist.Index

	maskKeyspace    uint64
	totalKeyspace   uint64
	maxCandidateLen int

	stats Stats
}

// Stats reports the counters a hosting program surfaces as cache and
// progress statistics after setup.
type Stats struct {
	// Words is the number of dictionary words indexed.
	Words uint64

	// SourceBytes is the size of the word source buffer.
	SourceBytes int

	// MaskKeyspace is the combination count of the mask positions alone.
	MaskKeyspace uint64

	// TotalKeyspace is Words * MaskKeyspace, saturating at keyspace.Max.
	TotalKeyspace uint64

	// IndexTime is how long building the word index took.
	IndexTime time.Duration
}

// Compile compiles a mask pattern and indexes a word source with the
// default configuration.
//
// The source buffer is borrowed, not copied: it must stay alive and
// unmodified for the lifetime of the Generator and every Cursor and
// candidate slice derived from it.
//
// Example:
//
//	gen, err := maskdict.Compile("?u?W?d?d", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(gen.TotalKeyspace())
func Compile(patternStr string, source []byte) (*Generator, error) {
	return CompileWithConfig(patternStr, source, DefaultConfig())
}

// CompileWithConfig compiles a mask pattern with custom configuration,
// defining the configured custom charsets before compilation.
//
// Setup errors are eager: an invalid config, charset definition, pattern
// or empty source fails here, before any candidate is produced.
//
// Example:
//
//	config := maskdict.DefaultConfig()
//	config.CustomCharsets[0] = "?l?d"  // ?1 = lowercase plus digits
//	gen, err := maskdict.CompileWithConfig("?1?1?W", data, config)
func CompileWithConfig(patternStr string, source []byte, config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	reg := charset.NewRegistry()
	for i, def := range config.CustomCharsets {
		if def == "" {
			continue
		}
		if err := reg.DefineCustom(i+1, def); err != nil {
			return nil, err
		}
	}

	pat, err := pattern.Compile(patternStr, reg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	words, err := wordlist.NewIndex(source)
	if err != nil {
		return nil, err
	}
	indexTime := time.Since(start)

	maskKS := keyspace.Mask(pat.Positions)
	totalKS := keyspace.Total(words.Count(), maskKS)

	return &Generator{
		pat:             pat,
		words:           words,
		maskKeyspace:    maskKS,
		totalKeyspace:   totalKS,
		maxCandidateLen: config.MaxCandidateLen,
		stats: Stats{
			Words:         words.Count(),
			SourceBytes:   words.SourceLen(),
			MaskKeyspace:  maskKS,
			TotalKeyspace: totalKS,
			IndexTime:     indexTime,
		},
	}, nil
}

// Pattern returns the source text of the compiled pattern.
func (g *Generator) Pattern() string {
	return g.pat.String()
}

// WordCount returns the number of dictionary words.
func (g *Generator) WordCount() uint64 {
	return g.words.Count()
}

// MaskKeyspace returns the combination count of the mask positions
// alone, saturating at keyspace.Max.
func (g *Generator) MaskKeyspace() uint64 {
	return g.maskKeyspace
}

// TotalKeyspace returns WordCount * MaskKeyspace, saturating at
// keyspace.Max.
func (g *Generator) TotalKeyspace() uint64 {
	return g.totalKeyspace
}

// Stats returns the setup counters for progress reporting.
func (g *Generator) Stats() Stats {
	return g.stats
}

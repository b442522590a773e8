// Command maskdict streams pattern-dictionary password candidates to
// stdout, one per line.
//
// Usage:
//
//	maskdict [OPTION]... <pattern> <wordlist>
//
// Example:
//
//	maskdict -skip 1000000 -limit 500000 '?d?d?W?s' rockyou.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/coregx/maskdict"
	"github.com/coregx/maskdict/wordlist"
)

// All command-line arguments
var (
	// custom charsets
	Custom1 = flag.String("1", "", "Definition for custom charset ?1 (e.g. \"?l?d\")")
	Custom2 = flag.String("2", "", "Definition for custom charset ?2, may reference ?1")
	Custom3 = flag.String("3", "", "Definition for custom charset ?3, may reference ?1-?2")
	Custom4 = flag.String("4", "", "Definition for custom charset ?4, may reference ?1-?3")

	// work window
	Skip  = flag.Uint64("skip", 0, "Start at absolute offset n in the keyspace (O(1) seek, no iteration)")
	Limit = flag.Uint64("limit", 0, "Stop after emitting n candidates. 0 means no limit")

	// bool flags
	StatsOnly = flag.Bool("stats", false, "Print word count and keyspace statistics, don't generate")
	Quiet     = flag.Bool("q", false, "Don't print statistics to stderr before generating")
)

func usage(exitCode int) {
	flag.Usage()
	os.Exit(exitCode)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "USAGE: %s [OPTION]... <pattern> <wordlist>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		pterm.Info.Printf("Provide a mask pattern and a wordlist path (e.g. \"?d?d?W?s\" rockyou.txt)\nPattern placeholders: ?l (lower) ?u (upper) ?d (digit) ?s (special) ?a (all) ?h (hex) ?H (HEX) ?b (bytes) ?1-?4 (custom) ?W (word)\nSee further usage below\n")
		fmt.Println()
		usage(0)
	}

	patternStr := flag.Arg(0)
	wordlistPath := flag.Arg(1)

	config := maskdict.DefaultConfig()
	config.CustomCharsets[0] = *Custom1
	config.CustomCharsets[1] = *Custom2
	config.CustomCharsets[2] = *Custom3
	config.CustomCharsets[3] = *Custom4

	src, err := wordlist.Open(wordlistPath)
	if err != nil {
		pterm.Error.Printf("failed to open wordlist: %s\n", err)
		os.Exit(1)
	}
	defer src.Close()

	gen, err := maskdict.CompileWithConfig(patternStr, src.Bytes(), config)
	if err != nil {
		pterm.Error.Printf("%s\n", err)
		os.Exit(1)
	}

	// Candidates go to stdout, statistics to stderr, so the candidate
	// stream can be piped downstream untouched.
	info := pterm.Info.WithWriter(os.Stderr)

	if !*Quiet || *StatsOnly {
		stats := gen.Stats()
		info.Printf("Indexed %d words (%d bytes) in %s\n", stats.Words, stats.SourceBytes, stats.IndexTime)
		info.Printf("Mask keyspace %d, total keyspace %d\n", stats.MaskKeyspace, stats.TotalKeyspace)
	}

	if *StatsOnly {
		return
	}

	cur := gen.NewCursor()

	if *Skip != 0 {
		if err := cur.Seek(*Skip); err != nil {
			pterm.Error.Printf("value of -skip is invalid: %s\n", err)
			os.Exit(1)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var emitted uint64
	for *Limit == 0 || emitted < *Limit {
		candidate, ok := cur.NextCandidate()
		if !ok {
			break
		}

		if _, err := out.Write(candidate); err != nil {
			pterm.Error.Printf("write failed: %s\n", err)
			os.Exit(1)
		}
		if err := out.WriteByte('\n'); err != nil {
			pterm.Error.Printf("write failed: %s\n", err)
			os.Exit(1)
		}

		emitted++
	}
}

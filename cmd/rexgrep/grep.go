package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	rex "github.com/marto-nievas/rex-go"
	"github.com/projectdiscovery/gologger"
)

const (
	boldRed = "\x1b[1;31m"
	reset   = "\x1b[0m"
)

// run implements the §6 front-end contract: compile pattern, scan file
// line by line, highlight the longest accepting prefix at each position,
// and apply the -c/-v/-n/-w/-x flags. It returns the process exit code.
func run(opts *options, pattern, path string, w io.Writer) (int, error) {
	var h *rex.Handle
	var err error
	if opts.caseInsensitive {
		h, err = rex.CompileCaseInsensitive([]byte(pattern))
	} else {
		h, err = rex.Compile([]byte(pattern))
	}
	if err != nil {
		return 1, err
	}
	if opts.verbose {
		gologger.Verbose().Msgf("compiled pattern: %s", h.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return 1, err
	}
	defer f.Close()

	matchCount := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		highlighted, matched := scanLine(h, []byte(line), opts)
		if opts.invert {
			matched = !matched
		}
		if !matched {
			continue
		}
		matchCount++

		if opts.count {
			continue
		}
		if opts.lineNumber {
			fmt.Fprintf(w, "%d:", lineNo)
		}
		if opts.invert {
			fmt.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, highlighted)
		}
	}
	if err := scanner.Err(); err != nil {
		return 1, err
	}

	if opts.count {
		fmt.Fprintln(w, matchCount)
	}
	if matchCount > 0 {
		return 0, nil
	}
	return 1, nil
}

// scanLine finds the longest match at each position left to right,
// wrapping it in ANSI highlight codes, and reports whether the line had
// at least one match. For -x it instead requires the whole line to match.
func scanLine(h *rex.Handle, line []byte, opts *options) (string, bool) {
	if opts.wholeLine {
		ok := h.Match(line)
		if ok {
			return boldRed + string(line) + reset, true
		}
		return string(line), false
	}

	if !h.Prefilter(line) {
		return string(line), false
	}

	var out []byte
	pos := 0
	matched := false
	for pos < len(line) {
		length := longestMatch(h, line, pos, opts.wordBoundary)
		if length > 0 {
			out = append(out, boldRed...)
			out = append(out, line[pos:pos+length]...)
			out = append(out, reset...)
			pos += length
			matched = true
			continue
		}
		out = append(out, line[pos])
		pos++
	}
	return string(out), matched
}

// longestMatch returns the length of the longest prefix of line[pos:] that
// Match accepts, honoring word-boundary constraints if wordBoundary is set,
// or 0 if no prefix matches.
func longestMatch(h *rex.Handle, line []byte, pos int, wordBoundary bool) int {
	best := 0
	for length := 1; pos+length <= len(line); length++ {
		if !h.Match(line[pos : pos+length]) {
			continue
		}
		if wordBoundary && !isWordBoundary(line, pos, pos+length) {
			continue
		}
		best = length
	}
	return best
}

func isWordBoundary(line []byte, start, end int) bool {
	if start > 0 && isWordByte(line[start-1]) {
		return false
	}
	if end < len(line) && isWordByte(line[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	default:
		return false
	}
}

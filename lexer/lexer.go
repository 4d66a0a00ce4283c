// Package lexer tokenizes regex pattern text into a token stream, per
// spec.md §4.1. It recognizes the classes-and-`/`-escape dialect: `/n /t /r`
// for newline/tab/CR, `//` for a literal slash, `/X` for any other byte X,
// `[...]` character classes with optional leading `^` negation and `a-b`
// ranges, and implicit concatenation inserted in a second pass.
package lexer

import (
	"fmt"

	"github.com/marto-nievas/rex-go/token"
)

// Error is a lexical error: an unterminated class, a trailing escape, or an
// empty character class. It carries the byte offset for diagnostics.
type Error struct {
	Offset  int
	Message string
	// InvalidClass is true for an empty, unterminated, or escape-truncated
	// character class — spec.md §6 surfaces these under a distinct
	// InvalidClass error kind rather than the generic Syntax kind.
	InvalidClass bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// Lex tokenizes pattern and returns the token list terminated by an End
// token, or an *Error describing the first lexical problem encountered.
func Lex(pattern []byte) ([]token.Token, error) {
	toks, err := scan(pattern)
	if err != nil {
		return nil, err
	}
	return insertConcat(toks), nil
}

func scan(pattern []byte) ([]token.Token, error) {
	toks := make([]token.Token, 0, len(pattern)+1)
	i := 0
	for i < len(pattern) {
		offset := i
		b := pattern[i]
		switch b {
		case '|':
			toks = append(toks, token.Token{Kind: token.Union, Offset: offset})
			i++
		case '*':
			toks = append(toks, token.Token{Kind: token.Star, Offset: offset})
			i++
		case '+':
			toks = append(toks, token.Token{Kind: token.Plus, Offset: offset})
			i++
		case '(':
			toks = append(toks, token.Token{Kind: token.LParen, Offset: offset})
			i++
		case ')':
			toks = append(toks, token.Token{Kind: token.RParen, Offset: offset})
			i++
		case '[':
			cls, n, err := scanClass(pattern[i:], offset)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token.Token{Kind: token.Class, CharClass: cls, Offset: offset})
			i += n
		case '/':
			c, n, err := scanEscape(pattern[i:], offset)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token.Token{Kind: token.Literal, Byte: c, Offset: offset})
			i += n
		default:
			toks = append(toks, token.Token{Kind: token.Literal, Byte: b, Offset: offset})
			i++
		}
	}
	toks = append(toks, token.Token{Kind: token.End, Offset: len(pattern)})
	return toks, nil
}

// scanEscape consumes the `/x` escape starting at s[0] == '/'. Returns the
// resolved literal byte and the number of input bytes consumed.
func scanEscape(s []byte, offset int) (byte, int, error) {
	if len(s) < 2 {
		return 0, 0, &Error{Offset: offset, Message: "trailing escape at end of pattern"}
	}
	switch s[1] {
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case '/':
		return '/', 2, nil
	default:
		return s[1], 2, nil
	}
}

// scanClass consumes a `[...]` character class starting at s[0] == '['.
// Returns the parsed class and the number of input bytes consumed.
func scanClass(s []byte, offset int) (*token.CharClass, int, error) {
	cls := token.NewCharClass()
	i := 1
	negate := false
	if i < len(s) && s[i] == '^' {
		negate = true
		i++
	}

	first := true
	for {
		if i >= len(s) {
			return nil, 0, &Error{Offset: offset, Message: "unterminated character class", InvalidClass: true}
		}
		if s[i] == ']' && !first {
			i++
			break
		}
		first = false

		var b byte
		if s[i] == '/' {
			if i+1 >= len(s) {
				return nil, 0, &Error{Offset: offset + i, Message: "trailing escape in character class", InvalidClass: true}
			}
			switch s[i+1] {
			case 'n':
				b = '\n'
			case 't':
				b = '\t'
			case 'r':
				b = '\r'
			case '/':
				b = '/'
			default:
				b = s[i+1]
			}
			i += 2
		} else if s[i] == ']' {
			// Leading ']' stands for itself (first == true guard above).
			b = ']'
			i++
		} else {
			b = s[i]
			i++
		}

		if i+1 < len(s) && s[i] == '-' && s[i+1] != ']' {
			// Range a-b.
			hi, consumed, err := readRangeEnd(s, i+1, offset)
			if err != nil {
				return nil, 0, err
			}
			if b > hi {
				return nil, 0, &Error{Offset: offset, Message: "invalid range in character class", InvalidClass: true}
			}
			cls.AddRange(b, hi)
			i = consumed
		} else {
			cls.Add(b)
		}
	}

	cls.Negate = negate
	if cls.Empty() {
		return nil, 0, &Error{Offset: offset, Message: "empty character class", InvalidClass: true}
	}
	return cls, i, nil
}

func readRangeEnd(s []byte, i, offset int) (byte, int, error) {
	if i >= len(s) {
		return 0, 0, &Error{Offset: offset, Message: "unterminated character class", InvalidClass: true}
	}
	if s[i] == '/' {
		if i+1 >= len(s) {
			return 0, 0, &Error{Offset: offset, Message: "trailing escape in character class", InvalidClass: true}
		}
		switch s[i+1] {
		case 'n':
			return '\n', i + 2, nil
		case 't':
			return '\t', i + 2, nil
		case 'r':
			return '\r', i + 2, nil
		case '/':
			return '/', i + 2, nil
		default:
			return s[i+1], i + 2, nil
		}
	}
	return s[i], i + 1, nil
}

// insertConcat performs the one forward pass described in spec.md §4.1: a
// Concat token is inserted between every adjacent pair (T1, T2) where
// T1 ∈ {Literal, RParen, Star, Plus, Class} and T2 ∈ {Literal, LParen, Class}.
func insertConcat(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks)*2)
	for i, t := range toks {
		out = append(out, t)
		if i+1 >= len(toks) {
			continue
		}
		next := toks[i+1]
		if needsConcat(t.Kind) && startsAtom(next.Kind) {
			out = append(out, token.Token{Kind: token.Concat, Offset: next.Offset})
		}
	}
	return out
}

func needsConcat(k token.Kind) bool {
	switch k {
	case token.Literal, token.RParen, token.Star, token.Plus, token.Class:
		return true
	}
	return false
}

func startsAtom(k token.Kind) bool {
	switch k {
	case token.Literal, token.LParen, token.Class:
		return true
	}
	return false
}

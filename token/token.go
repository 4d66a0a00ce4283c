// Package token defines the lexical tokens produced by the pattern lexer.
package token

import "fmt"

// Kind identifies the category of a Token. The set is closed: every
// pattern byte resolves to exactly one of these.
type Kind int

const (
	Invalid Kind = iota
	Literal
	Class
	Union
	Concat
	Star
	Plus
	LParen
	RParen
	End
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Literal:
		return "Literal"
	case Class:
		return "Class"
	case Union:
		return "Union"
	case Concat:
		return "Concat"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a tagged value produced by the lexer. Byte is meaningful only
// when Kind == Literal; CharClass is meaningful only when Kind == Class.
// Offset is the byte position in the source pattern where the token began,
// used for error reporting.
type Token struct {
	Kind      Kind
	Byte      byte
	CharClass *CharClass
	Offset    int
}

// CharClass is a 256-bit bitmap over byte values plus a negation flag.
// Membership test is bitmap[b] XOR Negate.
type CharClass struct {
	Bitmap [256]bool
	Negate bool
}

// NewCharClass returns an empty (non-matching, before negation) class.
func NewCharClass() *CharClass {
	return &CharClass{}
}

// Add marks byte b as a member of the class.
func (c *CharClass) Add(b byte) {
	c.Bitmap[b] = true
}

// AddRange marks every byte in [from, to] (inclusive) as a member.
func (c *CharClass) AddRange(from, to byte) {
	for b := int(from); b <= int(to); b++ {
		c.Bitmap[b] = true
	}
}

// Contains reports whether b is matched by the class, accounting for negation.
func (c *CharClass) Contains(b byte) bool {
	return c.Bitmap[b] != c.Negate
}

// Empty reports whether the bitmap has no members set (before negation is
// applied) — the lexer treats this as an error (an empty class matches
// nothing, which is never useful and usually a typo).
func (c *CharClass) Empty() bool {
	for _, set := range c.Bitmap {
		if set {
			return false
		}
	}
	return true
}

// Package ast defines the immutable expression tree produced by the parser.
// The set of node kinds is closed: EmptySet, Epsilon, Literal, Class,
// Concat, Union, Star, Plus. Shared subtrees are permitted since nodes are
// immutable.
package ast

import (
	"fmt"
	"strings"

	"github.com/marto-nievas/rex-go/token"
)

// Node is the marker interface implemented by every expression tree kind.
// The interface is intentionally closed — callers should type-switch over
// the eight variants below rather than add new ones.
type Node interface {
	isNode()
	// Atomic reports whether this node's pretty-printed form needs no
	// surrounding parentheses when it appears as a child of another node.
	Atomic() bool
	String() string
}

// EmptySet is the node for the language ∅ (matches nothing).
type EmptySet struct{}

func (EmptySet) isNode()      {}
func (EmptySet) Atomic() bool { return true }

// String has no round-trippable surface form in the default dialect (no
// explicit ∅ literal, see spec.md §9); EmptySet is reachable only
// algebraically, never produced by the parser.
func (EmptySet) String() string { return "∅" }

// Epsilon is the node for the language {""}.
type Epsilon struct{}

func (Epsilon) isNode()        {}
func (Epsilon) Atomic() bool   { return true }
func (Epsilon) String() string { return "" }

// Literal is the node for the single-byte language {c}.
type Literal struct {
	Byte byte
}

func (Literal) isNode()      {}
func (Literal) Atomic() bool { return true }
func (l Literal) String() string {
	return escapeByte(l.Byte)
}

// Class is the node for "any one byte matched by the class".
type Class struct {
	Bitmap *token.CharClass
}

func (Class) isNode()      {}
func (Class) Atomic() bool { return true }
func (c Class) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if c.Bitmap.Negate {
		b.WriteByte('^')
	}
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if end-start <= 1 {
			b.WriteString(escapeByte(byte(start)))
		} else {
			b.WriteString(escapeByte(byte(start)))
			b.WriteByte('-')
			b.WriteString(escapeByte(byte(end - 1)))
		}
		start = -1
	}
	for i := 0; i < 256; i++ {
		if c.Bitmap.Bitmap[i] {
			if start < 0 {
				start = i
			}
		} else {
			flush(i)
		}
	}
	flush(256)
	b.WriteByte(']')
	return b.String()
}

// Concat is the node for L followed immediately by R.
type Concat struct {
	L, R Node
}

func (Concat) isNode()      {}
func (Concat) Atomic() bool { return false }
func (c Concat) String() string {
	return parenIfNeeded(c.L) + parenIfNeeded(c.R)
}

// Union is the node for L or R.
type Union struct {
	L, R Node
}

func (Union) isNode()      {}
func (Union) Atomic() bool { return false }
func (u Union) String() string {
	return parenIfNeeded(u.L) + "|" + parenIfNeeded(u.R)
}

// Star is the node for zero-or-more repetitions of E.
type Star struct {
	E Node
}

func (Star) isNode()      {}
func (Star) Atomic() bool { return false }
func (s Star) String() string {
	return parenIfNeeded(s.E) + "*"
}

// Plus is the node for one-or-more repetitions of E.
type Plus struct {
	E Node
}

func (Plus) isNode()      {}
func (Plus) Atomic() bool { return false }
func (p Plus) String() string {
	return parenIfNeeded(p.E) + "+"
}

func parenIfNeeded(n Node) string {
	if n.Atomic() {
		return n.String()
	}
	return fmt.Sprintf("(%s)", n.String())
}

func escapeByte(b byte) string {
	switch b {
	case '\n':
		return "/n"
	case '\t':
		return "/t"
	case '\r':
		return "/r"
	case '/':
		return "//"
	}
	if b < 0x20 || b >= 0x7f {
		return fmt.Sprintf("/x%02x", b)
	}
	return string(b)
}

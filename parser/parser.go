// Package parser implements a recursive-descent parser for regex pattern
// token streams, per spec.md §4.2:
//
//	union    := concat ('|' concat)*
//	concat   := star (Concat star)*
//	star     := atom ('*' | '+')*
//	atom     := Literal | Class | '(' union ')'
package parser

import (
	"fmt"

	"github.com/marto-nievas/rex-go/ast"
	"github.com/marto-nievas/rex-go/token"
)

// Error is a parse-time syntax error: residual tokens after the top-level
// union, or a missing ')'. It carries the byte offset for diagnostics.
type Error struct {
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// Parser holds parsing state over a token stream.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a parser over a token stream already terminated by End.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the whole token stream and returns the resulting expression
// tree. Empty input parses to an Epsilon-equivalent tree.
func Parse(tokens []token.Token) (ast.Node, error) {
	p := New(tokens)
	if p.peek().Kind == token.End {
		return ast.Epsilon{}, nil
	}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != token.End {
		return nil, &Error{Offset: p.peek().Offset, Message: "unexpected trailing input"}
	}
	return n, nil
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) parseUnion() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.Union {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = ast.Union{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseConcat() (ast.Node, error) {
	left, err := p.parseStar()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.Concat {
		p.advance()
		right, err := p.parseStar()
		if err != nil {
			return nil, err
		}
		left = ast.Concat{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseStar() (ast.Node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.Star:
			p.advance()
			n = ast.Star{E: n}
		case token.Plus:
			p.advance()
			n = ast.Plus{E: n}
		default:
			return n, nil
		}
	}
}

func (p *Parser) parseAtom() (ast.Node, error) {
	t := p.peek()
	switch t.Kind {
	case token.Literal:
		p.advance()
		return ast.Literal{Byte: t.Byte}, nil
	case token.Class:
		p.advance()
		return ast.Class{Bitmap: t.CharClass}, nil
	case token.LParen:
		p.advance()
		n, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != token.RParen {
			return nil, &Error{Offset: p.peek().Offset, Message: "expected ')'"}
		}
		p.advance()
		return n, nil
	default:
		return nil, &Error{Offset: t.Offset, Message: "expected literal, character class, or '('"}
	}
}

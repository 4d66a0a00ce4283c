// Package rex is the public surface of the regular-expression engine: a
// classical lexer → parser → Thompson NFA → subset construction →
// minimization → dense fast-table pipeline, exposed as Compile/Handle.
package rex

import (
	"sync"

	"github.com/marto-nievas/rex-go/ast"
	"github.com/marto-nievas/rex-go/automata"
	"github.com/marto-nievas/rex-go/lexer"
	"github.com/marto-nievas/rex-go/literal"
	"github.com/marto-nievas/rex-go/parser"
)

// Handle is a compiled pattern. It owns the expression tree and the
// compiled automaton. Handles returned by Compile are fully built and
// immutable, so concurrent Match calls need no synchronization; handles
// returned by CompileLazy build the automaton once, on first Match, behind
// a sync.Once.
type Handle struct {
	tree      ast.Node
	pattern   string
	fast      *automata.FastDFA
	prefilter *literal.Prefilter

	once     sync.Once
	buildErr error
}

// Compile parses pattern and eagerly builds the full automaton pipeline
// (NFA → DFA → minimal DFA → fast table), per spec.md §4.8/§9's
// recommended eager-construction policy. It returns an *Error (never a bare
// error) on any syntax or invariant problem.
func Compile(pattern []byte) (*Handle, error) {
	tree, err := parseTree(pattern)
	if err != nil {
		return nil, err
	}
	return compileTree(tree, pattern)
}

// CompileCaseInsensitive is Compile, except every alphabetic Literal/Class
// byte in the parsed tree is expanded (via ast.FoldCase) to also match its
// opposite case before the automaton is built — spec.md §9's preferred,
// non-allocating alternative to lower-casing input text.
func CompileCaseInsensitive(pattern []byte) (*Handle, error) {
	tree, err := parseTree(pattern)
	if err != nil {
		return nil, err
	}
	return compileTree(ast.FoldCase(tree), pattern)
}

func compileTree(tree ast.Node, pattern []byte) (*Handle, error) {
	h := &Handle{tree: tree, pattern: string(pattern)}
	if err := h.build(); err != nil {
		return nil, err
	}
	return h, nil
}

// CompileLazy parses pattern immediately (so syntax errors surface right
// away) but defers building the automaton until the first Match call,
// guarded by a one-shot initializer so concurrent first callers race
// safely to a single build (spec.md §5).
func CompileLazy(pattern []byte) (*Handle, error) {
	tree, err := parseTree(pattern)
	if err != nil {
		return nil, err
	}
	return &Handle{tree: tree, pattern: string(pattern)}, nil
}

func parseTree(pattern []byte) (ast.Node, error) {
	toks, err := lexer.Lex(pattern)
	if err != nil {
		return nil, translateLexError(err)
	}
	tree, err := parser.Parse(toks)
	if err != nil {
		return nil, translateParseError(err)
	}
	return tree, nil
}

func (h *Handle) build() error {
	nfa := automata.Build(h.tree)
	dfa, err := automata.Determinize(nfa)
	if err != nil {
		return &Error{Kind: KindInvariantViolation, Message: err.Error()}
	}
	min := automata.Minimize(dfa)
	h.fast = automata.Lower(min)

	if required := literal.Extract(h.tree); len(required) > 0 {
		if pf, ok := literal.Build(required); ok {
			h.prefilter = pf
		}
	}
	return nil
}

func (h *Handle) ensureBuilt() error {
	h.once.Do(func() {
		h.buildErr = h.build()
	})
	return h.buildErr
}

// Match reports whether word, in its entirety, is a member of the
// pattern's language. It never fails: bytes that drive the fast table to
// "no transition" simply cause rejection (spec.md §7).
func (h *Handle) Match(word []byte) bool {
	if h.fast == nil {
		if err := h.ensureBuilt(); err != nil {
			return false
		}
	}
	return h.fast.Match(word)
}

// Prefilter reports whether word could possibly contain a match anywhere as
// a substring, using the mandatory-literal prefilter described in
// spec.md §4.9. It is an optimization hint for callers that window over
// word looking for matches (e.g. cmd/rexgrep); it is not part of the
// engine's whole-string Match contract and a true result does not imply a
// match exists.
func (h *Handle) Prefilter(word []byte) bool {
	if h.fast == nil {
		if err := h.ensureBuilt(); err != nil {
			return true
		}
	}
	return h.prefilter.MayMatch(word)
}

// String returns the pretty-printed regex form of the compiled pattern,
// with parentheses inserted around non-atomic subtrees (spec.md §6).
func (h *Handle) String() string {
	return h.tree.String()
}

func translateLexError(err error) error {
	if le, ok := err.(*lexer.Error); ok {
		kind := KindSyntax
		if le.InvalidClass {
			kind = KindInvalidClass
		}
		return &Error{Kind: kind, Offset: le.Offset, Message: le.Message}
	}
	return &Error{Kind: KindSyntax, Message: err.Error()}
}

func translateParseError(err error) error {
	if pe, ok := err.(*parser.Error); ok {
		return &Error{Kind: KindSyntax, Offset: pe.Offset, Message: pe.Message}
	}
	return &Error{Kind: KindSyntax, Message: err.Error()}
}

// Package literal extracts mandatory literal byte runs from a compiled
// expression tree and wraps them in an Aho-Corasick prefilter. This is a
// pure optimization layer: it never changes what Handle.Match answers, only
// how often a caller scanning many windows of a line needs to pay for a
// full fast-table walk before giving up. Grounded on coregx-coregex's
// literal-extraction + Aho-Corasick strategy selection in its meta package.
package literal

import "github.com/marto-nievas/rex-go/ast"

// Extract returns a set of byte strings at least one of which appears, in
// its entirety, somewhere in any word accepted by node — or nil if no such
// requirement could be derived (e.g. the pattern is wholly optional, or
// contains a Star/Plus/Class at a position that breaks exactness).
//
// Only a narrow set of shapes is recognized: a Concat chain of Literal
// nodes yields one required string; a Union of such chains yields one
// required string per branch (useful as multi-pattern input to
// Aho-Corasick, since matching any one branch's literal is then necessary
// for the whole union to match). But if even one top-level union branch
// fails to resolve to a literal chain (a Star, Plus, Class, EmptySet, or
// Epsilon branch, or a nested Concat/Union that isn't a pure literal
// chain), that branch alone could match without containing any of the
// other branches' literals — so the union as a whole contributes no
// requirement, and Extract returns nil rather than the partial set. A
// dropped branch would make the prefilter unsound (a true rejection for a
// word the engine actually accepts), not just less selective.
func Extract(n ast.Node) [][]byte {
	if u, ok := n.(ast.Union); ok {
		lits, ok := branches(u)
		if !ok {
			return nil
		}
		var out [][]byte
		for _, lit := range lits {
			if len(lit) > 0 {
				out = append(out, lit)
			}
		}
		return out
	}
	if lit := literalRun(n); len(lit) > 0 {
		return [][]byte{lit}
	}
	return nil
}

// branches flattens top-level unions into literal byte runs. It returns
// ok == false if any branch fails to resolve to a literal chain, in which
// case the returned slice must be discarded rather than used partially.
func branches(n ast.Node) ([][]byte, bool) {
	if u, ok := n.(ast.Union); ok {
		l, lok := branches(u.L)
		if !lok {
			return nil, false
		}
		r, rok := branches(u.R)
		if !rok {
			return nil, false
		}
		return append(l, r...), true
	}
	lit := literalRun(n)
	if lit == nil {
		return nil, false
	}
	return [][]byte{lit}, true
}

// literalRun returns the exact byte string node matches if node's language
// is the singleton {s} for some s built purely from Literal/Concat nodes,
// or nil otherwise (including for Epsilon, whose singleton is the empty
// string — not useful as an Aho-Corasick pattern).
func literalRun(n ast.Node) []byte {
	switch v := n.(type) {
	case ast.Literal:
		return []byte{v.Byte}
	case ast.Concat:
		l := literalRun(v.L)
		r := literalRun(v.R)
		if l == nil || r == nil {
			return nil
		}
		return append(append([]byte{}, l...), r...)
	default:
		return nil
	}
}

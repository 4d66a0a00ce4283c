package automata

import "github.com/marto-nievas/rex-go/ast"

// Build compiles an expression tree into an ε-NFA via Thompson construction
// (spec.md §4.3). Each node builds a fresh NFA fragment with uniquely-named
// states; composing node kinds rename their children's fragments by
// prefixing ("L_", "R_", "E_") before merging, so no state name ever
// collides across a composition.
func Build(node ast.Node) *NFA {
	switch n := node.(type) {
	case ast.EmptySet:
		return buildEmptySet()
	case ast.Epsilon:
		return buildEpsilon()
	case ast.Literal:
		return buildLiteral(n.Byte)
	case ast.Class:
		return buildClass(n.Bitmap)
	case ast.Concat:
		return buildConcat(n)
	case ast.Union:
		return buildUnion(n)
	case ast.Star:
		return buildStar(n)
	case ast.Plus:
		return buildPlus(n)
	default:
		panic("automata: unknown ast.Node kind")
	}
}

// buildEmptySet: one state, not accepting, no transitions.
func buildEmptySet() *NFA {
	return NewNFA()
}

// buildEpsilon: one state, accepting, no transitions.
func buildEpsilon() *NFA {
	n := NewNFA()
	n.MarkFinal(n.Initial)
	return n
}

// buildLiteral: two states q0 -c-> q1; q1 accepting.
func buildLiteral(c byte) *NFA {
	n := NewNFA()
	q1 := n.AddState()
	n.AddTransition(n.Initial, c, q1)
	n.MarkFinal(q1)
	return n
}

// buildClass: two states q0 -> q1, one edge per byte matched by the class.
// The class is fully expanded to enumerated byte edges; no symbolic class
// survives past this stage.
func buildClass(cls anyCharClass) *NFA {
	n := NewNFA()
	q1 := n.AddState()
	for b := 0; b < 256; b++ {
		if cls.Contains(byte(b)) {
			n.AddTransition(n.Initial, byte(b), q1)
		}
	}
	n.MarkFinal(q1)
	return n
}

// anyCharClass is the minimal interface thompson.go needs from
// token.CharClass, to keep this file decoupled from the token package's
// concrete bitmap layout.
type anyCharClass interface {
	Contains(b byte) bool
}

// buildConcat: union of states; ε-edges from every accepting state of L to
// the initial state of R; initial = L.initial; accepting = R.accepting.
func buildConcat(c ast.Concat) *NFA {
	l := Build(c.L).rename("L_")
	r := Build(c.R).rename("R_")

	out := &NFA{Final: make(map[string]bool), States: make(map[string]*NFAState)}
	out.merge(l)
	out.merge(r)
	out.Initial = l.Initial
	for f := range l.Final {
		out.AddEpsilon(f, r.Initial)
	}
	for f := range r.Final {
		out.Final[f] = true
	}
	return out
}

// buildUnion: new initial q0 with ε-edges to L.initial and R.initial; new
// accepting qf; ε-edges from each accepting state of L and R to qf.
func buildUnion(u ast.Union) *NFA {
	l := Build(u.L).rename("L_")
	r := Build(u.R).rename("R_")

	out := &NFA{Final: make(map[string]bool), States: make(map[string]*NFAState)}
	out.merge(l)
	out.merge(r)
	out.Initial = out.AddState()
	qf := out.AddState()

	out.AddEpsilon(out.Initial, l.Initial)
	out.AddEpsilon(out.Initial, r.Initial)
	for f := range l.Final {
		out.AddEpsilon(f, qf)
	}
	for f := range r.Final {
		out.AddEpsilon(f, qf)
	}
	out.MarkFinal(qf)
	return out
}

// buildStar: new q0 (initial), new qf (accepting); ε from q0 to both qf and
// E.initial; ε from every accepting state of E to both qf and E.initial.
func buildStar(s ast.Star) *NFA {
	e := Build(s.E).rename("E_")

	out := &NFA{Final: make(map[string]bool), States: make(map[string]*NFAState)}
	out.merge(e)
	out.Initial = out.AddState()
	qf := out.AddState()

	out.AddEpsilon(out.Initial, qf)
	out.AddEpsilon(out.Initial, e.Initial)
	for f := range e.Final {
		out.AddEpsilon(f, qf)
		out.AddEpsilon(f, e.Initial)
	}
	out.MarkFinal(qf)
	return out
}

// buildPlus: as buildStar but omit the q0 -> qf ε-edge (requires at least
// one iteration).
func buildPlus(p ast.Plus) *NFA {
	e := Build(p.E).rename("E_")

	out := &NFA{Final: make(map[string]bool), States: make(map[string]*NFAState)}
	out.merge(e)
	out.Initial = out.AddState()
	qf := out.AddState()

	out.AddEpsilon(out.Initial, e.Initial)
	for f := range e.Final {
		out.AddEpsilon(f, qf)
		out.AddEpsilon(f, e.Initial)
	}
	out.MarkFinal(qf)
	return out
}

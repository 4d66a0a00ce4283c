package automata

import (
	"sort"
	"strings"
)

// DFA is a complete deterministic automaton. Like NFA, states are named
// strings while in this stage — immediately after Determinize, names are
// canonical stringified NFA-state sets ("{L_q0,R_q0,q0}"); after Minimize they are
// renumbered to "q0", "q1", ….
type DFA struct {
	Initial string
	States  map[string]*DFAState
}

// DFAState is one DFA state: exactly one target per byte (absent entries
// mean "no transition for this byte", which cannot occur in a complete DFA
// except before trap completion), and an Accepting flag.
type DFAState struct {
	Name        string
	Transitions map[byte]string
	Accepting   bool
}

func newDFAState(name string) *DFAState {
	return &DFAState{Name: name, Transitions: make(map[byte]string)}
}

// Determinize runs the subset construction (spec.md §4.4) over an ε-NFA and
// returns a complete DFA (a trap state is added if any (state, symbol) pair
// would otherwise lack a transition).
func Determinize(n *NFA) (*DFA, error) {
	if n.Initial == "" {
		return nil, &InvariantError{Message: "NFA has no initial state"}
	}

	alphabet := n.Alphabet()
	dfa := &DFA{States: make(map[string]*DFAState)}

	startSet := epsilonClosure(n, map[string]bool{n.Initial: true})
	startName := setKey(startSet)
	dfa.Initial = startName

	type queued struct {
		name string
		set  map[string]bool
	}
	queue := []queued{{startName, startSet}}
	seen := map[string]bool{startName: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		st := newDFAState(cur.name)
		for nfaState := range cur.set {
			if n.Final[nfaState] {
				st.Accepting = true
				break
			}
		}

		for a := range alphabet {
			moved := move(n, cur.set, a)
			if len(moved) == 0 {
				continue
			}
			closure := epsilonClosure(n, moved)
			name := setKey(closure)
			st.Transitions[a] = name
			if !seen[name] {
				seen[name] = true
				queue = append(queue, queued{name, closure})
			}
		}
		dfa.States[cur.name] = st
	}

	completeWithTrap(dfa, alphabet)
	return dfa, nil
}

// move returns the set of NFA states reachable from any state in s on byte a.
func move(n *NFA, s map[string]bool, a byte) map[string]bool {
	out := make(map[string]bool)
	for name := range s {
		st := n.States[name]
		for target := range st.Transitions[a] {
			out[target] = true
		}
	}
	return out
}

// epsilonClosure is the least superset of states closed under ε-transitions,
// computed with a depth-first worklist.
func epsilonClosure(n *NFA, states map[string]bool) map[string]bool {
	closure := make(map[string]bool, len(states))
	stack := make([]string, 0, len(states))
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for target := range n.States[cur].Epsilon {
			if !closure[target] {
				closure[target] = true
				stack = append(stack, target)
			}
		}
	}
	return closure
}

// setKey canonicalizes a set of NFA state names into a sorted, deterministic
// string used as the DFA's state-identity key (spec.md §4.4: "an ordered
// representation... to key the seen map").
func setKey(s map[string]bool) string {
	if len(s) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ",") + "}"
}

const trapName = "__trap__"

// completeWithTrap adds a single trap state with self-loops on every symbol
// and redirects every missing (state, symbol) transition to it, if needed.
func completeWithTrap(dfa *DFA, alphabet map[byte]bool) {
	missing := false
	for _, st := range dfa.States {
		for a := range alphabet {
			if _, ok := st.Transitions[a]; !ok {
				missing = true
				break
			}
		}
		if missing {
			break
		}
	}
	if !missing {
		return
	}

	trap := newDFAState(trapName)
	for a := range alphabet {
		trap.Transitions[a] = trapName
	}
	dfa.States[trapName] = trap

	for name, st := range dfa.States {
		if name == trapName {
			continue
		}
		for a := range alphabet {
			if _, ok := st.Transitions[a]; !ok {
				st.Transitions[a] = trapName
			}
		}
	}
}

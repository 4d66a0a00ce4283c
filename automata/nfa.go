// Package automata implements the compilation pipeline's automaton stages:
// Thompson construction (ε-NFA), subset construction (DFA), Moore
// partition-refinement minimization, and dense fast-table lowering.
//
// States are named strings through the NFA and (pre-minimized) DFA stages —
// "q0", "L_q1", "{L_q0,R_q0,q0}" — for debuggability; only the final FastDFA
// switches to integer ids, per spec.md §9.
package automata

import "fmt"

// NFA is an ε-NFA: Q is the key set of States, Σ is implicit in the union of
// each state's Transitions keys, δ is the combination of Transitions and
// Epsilon, q0 is Initial, and F is Final. ε is represented by the separate
// Epsilon map on each state and is never itself a member of Σ.
type NFA struct {
	Initial string
	Final   map[string]bool
	States  map[string]*NFAState
	next    int
}

// NFAState is one state of an NFA: byte-labeled transitions to sets of
// target states, plus a separate set of ε-reachable targets.
type NFAState struct {
	Name        string
	Transitions map[byte]map[string]bool
	Epsilon     map[string]bool
}

func newNFAState(name string) *NFAState {
	return &NFAState{
		Name:        name,
		Transitions: make(map[byte]map[string]bool),
		Epsilon:     make(map[string]bool),
	}
}

// NewNFA returns an NFA with a single initial state and no accepting
// states — the fragment for ∅.
func NewNFA() *NFA {
	n := &NFA{
		Final:  make(map[string]bool),
		States: make(map[string]*NFAState),
	}
	n.Initial = n.AddState()
	return n
}

// AddState adds a fresh, uniquely-named state to the NFA and returns its name.
func (n *NFA) AddState() string {
	name := fmt.Sprintf("q%d", n.next)
	n.next++
	n.States[name] = newNFAState(name)
	return name
}

// AddTransition adds a transition from -> to on byte b. Per spec.md §3, an
// unknown endpoint is a silent no-op.
func (n *NFA) AddTransition(from string, b byte, to string) {
	if _, ok := n.States[from]; !ok {
		return
	}
	if _, ok := n.States[to]; !ok {
		return
	}
	st := n.States[from]
	if st.Transitions[b] == nil {
		st.Transitions[b] = make(map[string]bool)
	}
	st.Transitions[b][to] = true
}

// AddEpsilon adds an ε-transition from -> to. Unknown endpoints are a
// silent no-op, matching AddTransition.
func (n *NFA) AddEpsilon(from, to string) {
	if _, ok := n.States[from]; !ok {
		return
	}
	if _, ok := n.States[to]; !ok {
		return
	}
	n.States[from].Epsilon[to] = true
}

// MarkFinal marks state as accepting.
func (n *NFA) MarkFinal(state string) {
	if _, ok := n.States[state]; !ok {
		return
	}
	n.Final[state] = true
}

// Alphabet returns the set of bytes actually referenced by some
// transition — Σ, excluding the ε sentinel by construction.
func (n *NFA) Alphabet() map[byte]bool {
	alphabet := make(map[byte]bool)
	for _, st := range n.States {
		for b := range st.Transitions {
			alphabet[b] = true
		}
	}
	return alphabet
}

// rename returns a deep copy of n with every state name prefixed, used when
// composing child fragments during Thompson construction (spec.md §4.3:
// "children NFAs are renamed by prefixing").
func (n *NFA) rename(prefix string) *NFA {
	mapName := func(s string) string { return prefix + s }

	out := &NFA{
		Final:  make(map[string]bool),
		States: make(map[string]*NFAState),
	}
	for name, st := range n.States {
		newName := mapName(name)
		newSt := newNFAState(newName)
		for b, targets := range st.Transitions {
			newSt.Transitions[b] = make(map[string]bool, len(targets))
			for t := range targets {
				newSt.Transitions[b][mapName(t)] = true
			}
		}
		for t := range st.Epsilon {
			newSt.Epsilon[mapName(t)] = true
		}
		out.States[newName] = newSt
	}
	out.Initial = mapName(n.Initial)
	for f := range n.Final {
		out.Final[mapName(f)] = true
	}
	return out
}

// merge copies every state of other into n. Callers must rename fragments
// to disjoint namespaces before merging.
func (n *NFA) merge(other *NFA) {
	for name, st := range other.States {
		n.States[name] = st
	}
}

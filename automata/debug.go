package automata

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the NFA as a sorted transition listing, for test failure
// messages and manual debugging.
func (n *NFA) String() string {
	var b strings.Builder
	names := make([]string, 0, len(n.States))
	for name := range n.States {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(&b, "initial=%s\n", n.Initial)
	for _, name := range names {
		st := n.States[name]
		marker := ""
		if n.Final[name] {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s%s:\n", name, marker)
		for _, byt := range sortedTransitionBytes(st.Transitions) {
			targets := make([]string, 0, len(st.Transitions[byt]))
			for t := range st.Transitions[byt] {
				targets = append(targets, t)
			}
			sort.Strings(targets)
			fmt.Fprintf(&b, "    %q -> %s\n", rune(byt), strings.Join(targets, ","))
		}
		if len(st.Epsilon) > 0 {
			eps := make([]string, 0, len(st.Epsilon))
			for t := range st.Epsilon {
				eps = append(eps, t)
			}
			sort.Strings(eps)
			fmt.Fprintf(&b, "    ε -> %s\n", strings.Join(eps, ","))
		}
	}
	return b.String()
}

func sortedTransitionBytes(m map[byte]map[string]bool) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// String renders the DFA as a sorted transition table, for test failure
// messages and manual debugging.
func (d *DFA) String() string {
	var b strings.Builder
	names := make([]string, 0, len(d.States))
	for name := range d.States {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(&b, "initial=%s\n", d.Initial)
	for _, name := range names {
		st := d.States[name]
		marker := ""
		if st.Accepting {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s%s:", name, marker)
		for _, byt := range sortedByteKeys(st.Transitions) {
			fmt.Fprintf(&b, " %q->%s", rune(byt), st.Transitions[byt])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

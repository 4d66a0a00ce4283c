package automata

import "sort"

// FastDFA is the dense integer-indexed lowering of a minimized DFA
// (spec.md §4.6): each state gets a contiguous id assigned in order of
// first discovery from the initial state, and transitions are stored as a
// [256]int32 row per state with -1 meaning "no transition" — including for
// bytes outside Σ, which are left at -1 rather than routed to the trap
// state, so the match loop short-circuits on any unexpected byte.
type FastDFA struct {
	Initial     int
	Transitions [][256]int32
	Accept      []bool
}

// Lower builds a FastDFA from a minimized DFA.
func Lower(d *DFA) *FastDFA {
	if d.Initial == "" {
		return &FastDFA{Initial: -1}
	}

	ids := map[string]int{d.Initial: 0}
	order := []string{d.Initial}
	queue := []string{d.Initial}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, b := range sortedByteKeys(d.States[cur].Transitions) {
			target := d.States[cur].Transitions[b]
			if _, ok := ids[target]; !ok {
				ids[target] = len(order)
				order = append(order, target)
				queue = append(queue, target)
			}
		}
	}

	fd := &FastDFA{
		Initial:     ids[d.Initial],
		Transitions: make([][256]int32, len(order)),
		Accept:      make([]bool, len(order)),
	}
	for _, name := range order {
		id := ids[name]
		row := &fd.Transitions[id]
		for i := range row {
			row[i] = -1
		}
		st := d.States[name]
		for b, target := range st.Transitions {
			row[b] = int32(ids[target])
		}
		fd.Accept[id] = st.Accepting
	}
	return fd
}

func sortedByteKeys(m map[byte]string) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Match walks the fast table over word and reports acceptance (spec.md
// §4.7). It performs no allocation and is O(len(word)).
func (f *FastDFA) Match(word []byte) bool {
	if f.Initial < 0 {
		return false
	}
	s := f.Initial
	for _, b := range word {
		s = int(f.Transitions[s][b])
		if s < 0 {
			return false
		}
	}
	return f.Accept[s]
}

package literal

import "github.com/coregx/ahocorasick"

// Prefilter wraps an Aho-Corasick automaton over a set of mandatory literal
// byte runs extracted from a pattern. It answers a single question: "could
// this word possibly match?" A false answer is certain; a true answer is
// only a hint — the caller still must run the fast DFA to know for sure.
type Prefilter struct {
	auto *ahocorasick.Automaton
}

// Build constructs a Prefilter from the required literal sets returned by
// Extract. It returns (nil, false) when required is empty or every entry
// is empty, since there is nothing useful to filter on.
func Build(required [][]byte) (*Prefilter, bool) {
	nonEmpty := 0
	for _, r := range required {
		if len(r) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, r := range required {
		if len(r) > 0 {
			builder.AddPattern(r)
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{auto: auto}, true
}

// MayMatch reports whether word contains at least one of the prefilter's
// required literals. false is a certain rejection; true merely means the
// caller must still consult the fast DFA.
func (p *Prefilter) MayMatch(word []byte) bool {
	if p == nil {
		return true
	}
	return p.auto.IsMatch(word)
}

package automata

import (
	"math/rand/v2"
	"slices"
)

func threeStateNFA() *NFA {
	return &NFA{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string][]string{
			"q0": {"a": {"q0", "q1"}, "b": {"q0"}},
			"q1": {"a": {"q2"}},
		},
		Start:  "q0",
		Accept: []string{"q2"},
	}
}

// nthFromLastNFA accepts words over {a,b} whose n-th symbol from the end is
// a. Its DFA needs 2^n states.
func nthFromLastNFA(n int) *NFA {
	nfa := &NFA{
		Alphabet:    []string{"a", "b"},
		Transitions: map[string]map[string][]string{},
		Start:       "q0",
	}
	name := func(i int) string { return "q" + string(rune('0'+i)) }
	for i := 0; i <= n; i++ {
		nfa.States = append(nfa.States, name(i))
	}
	nfa.Transitions["q0"] = map[string][]string{"a": {"q0", "q1"}, "b": {"q0"}}
	for i := 1; i < n; i++ {
		nfa.Transitions[name(i)] = map[string][]string{"a": {name(i + 1)}, "b": {name(i + 1)}}
	}
	nfa.Accept = []string{name(n)}
	return nfa
}

// randomNFA builds an NFA over {a,b} with the given number of states. When
// epsilons is true some states also get epsilon moves.
func randomNFA(r *rand.Rand, states int, epsilons bool) *NFA {
	nfa := &NFA{
		Alphabet:    []string{"a", "b"},
		Transitions: map[string]map[string][]string{},
		Start:       "s0",
	}
	name := func(i int) string { return "s" + string(rune('0'+i)) }
	for i := range states {
		nfa.States = append(nfa.States, name(i))
		if r.IntN(3) == 0 {
			nfa.Accept = append(nfa.Accept, name(i))
		}
	}
	symbols := slices.Clone(nfa.Alphabet)
	if epsilons {
		symbols = append(symbols, Epsilon)
	}
	for i := range states {
		for _, sym := range symbols {
			if r.IntN(2) == 0 {
				continue
			}
			var dests []string
			for j := range states {
				if r.IntN(3) == 0 {
					dests = append(dests, name(j))
				}
			}
			if len(dests) == 0 {
				continue
			}
			if nfa.Transitions[name(i)] == nil {
				nfa.Transitions[name(i)] = map[string][]string{}
			}
			nfa.Transitions[name(i)][sym] = dests
		}
	}
	return nfa
}

// words lists every word over alphabet up to length max.
func words(alphabet []string, max int) [][]string {
	out := [][]string{{}}
	frontier := [][]string{{}}
	for range max {
		var next [][]string
		for _, w := range frontier {
			for _, a := range alphabet {
				next = append(next, append(slices.Clone(w), a))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

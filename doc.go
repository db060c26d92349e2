// Package automata converts non-deterministic finite automata, including
// epsilon moves, into equivalent deterministic automata by subset
// construction.
//
// Each DFA state stands for a set of NFA states and is named by its canonical
// key, the sorted members joined inside braces:
//
//	nfa := &automata.NFA{
//	    States:   []string{"q0", "q1", "q2"},
//	    Alphabet: []string{"a", "b"},
//	    Transitions: map[string]map[string][]string{
//	        "q0": {"a": {"q0", "q1"}, "b": {"q0"}},
//	        "q1": {"a": {"q2"}},
//	    },
//	    Start:  "q0",
//	    Accept: []string{"q2"},
//	}
//	dfa, err := automata.Convert(nfa)
//	// dfa.Start == "{q0}", dfa.Accept == []string{"{q0,q1,q2}"}
//
// Conversions can be persisted through a Store (see the postgres and memory
// packages), served over HTTP (package api) and rendered as diagrams
// (package graph).
package automata

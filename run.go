package automata

import "slices"

// Next returns the destination of state on symbol. ok is false when the DFA
// has no such transition.
func (d *DFA) Next(state, symbol string) (to string, ok bool) {
	to, ok = d.Transitions[state][symbol]
	return to, ok
}

// IsAccepting reports whether state is an accept state.
func (d *DFA) IsAccepting(state string) bool {
	return slices.Contains(d.Accept, state)
}

// Trace runs word from the start state and returns the visited states,
// starting with Start. The trace stops early at the first missing
// transition; accepted reports whether the whole word was consumed and the
// last state accepts.
func (d *DFA) Trace(word []string) (path []string, accepted bool) {
	cur := d.Start
	path = append(path, cur)
	for _, sym := range word {
		next, ok := d.Next(cur, sym)
		if !ok {
			return path, false
		}
		cur = next
		path = append(path, cur)
	}
	return path, d.IsAccepting(cur)
}

// Accepts reports whether the DFA accepts word.
func (d *DFA) Accepts(word []string) bool {
	_, ok := d.Trace(word)
	return ok
}

// Edges lists every transition, ordered by source discovery order and then
// by alphabet order.
func (d *DFA) Edges() []Edge {
	var edges []Edge
	for _, from := range d.States {
		row := d.Transitions[from]
		for _, sym := range d.Alphabet {
			if to, ok := row[sym]; ok {
				edges = append(edges, Edge{From: from, Symbol: sym, To: to})
			}
		}
	}
	return edges
}

// StateList describes every state in discovery order.
func (d *DFA) StateList() []State {
	states := make([]State, len(d.States))
	for i, k := range d.States {
		states[i] = State{
			Key:       k,
			Members:   d.Members[k],
			Accepting: d.IsAccepting(k),
		}
	}
	return states
}

// BuildDFA reassembles a DFA from its parts, as kept by a Store. states must
// be in discovery order with the start state first.
func BuildDFA(alphabet []string, states []State, edges []Edge) *DFA {
	d := &DFA{
		States:      make([]string, 0, len(states)),
		Alphabet:    slices.Clone(alphabet),
		Transitions: make(map[string]map[string]string),
		Accept:      []string{},
		Members:     make(map[string][]string, len(states)),
	}
	for _, s := range states {
		d.States = append(d.States, s.Key)
		d.Members[s.Key] = s.Members
		if s.Accepting {
			d.Accept = append(d.Accept, s.Key)
		}
	}
	if len(d.States) > 0 {
		d.Start = d.States[0]
	}
	for _, e := range edges {
		row, ok := d.Transitions[e.From]
		if !ok {
			row = make(map[string]string)
			d.Transitions[e.From] = row
		}
		row[e.Symbol] = e.To
	}
	return d
}

// Accepts simulates the NFA directly on word, tracking the set of live
// states. Symbols outside the alphabet reject.
func (n *NFA) Accepts(word []string) bool {
	extra := append(slices.Clone(n.States), n.Start)
	extra = append(extra, n.Accept...)
	x := newIndex(extra, n.Transitions, n.Alphabet)

	cur := x.closure([]int{x.ids[n.Start]})
	for _, sym := range word {
		k := slices.Index(n.Alphabet, sym)
		if k < 0 {
			return false
		}
		var union []int
		for _, s := range cur {
			union = append(union, x.delta[s][k]...)
		}
		cur = x.closure(union)
		if len(cur) == 0 {
			return false
		}
	}
	for _, s := range cur {
		if slices.Contains(n.Accept, x.names[s]) {
			return true
		}
	}
	return false
}

package automata

import (
	"fmt"
	"slices"
)

// Option configures Convert.
type Option func(*options)

type options struct {
	maxStates int
	lenient   bool
}

// WithMaxStates aborts conversion with ErrTooManyStates once more than n DFA
// states have been discovered. n <= 0 means no limit.
func WithMaxStates(n int) Option {
	return func(o *options) {
		o.maxStates = n
	}
}

// WithLenient accepts start, accept and destination states that are missing
// from NFA.States, and transitions on symbols outside the alphabet (those are
// ignored). Identifier syntax and alphabet checks still apply.
func WithLenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// subset is one DFA state under construction.
type subset struct {
	members   []int
	accepting bool
}

// Convert builds the DFA equivalent to nfa by breadth-first subset
// construction. Only states reachable from the start state are produced, and
// no two DFA states share the same underlying NFA-state set. nfa is not
// modified. The returned DFA is complete or err is non-nil.
func Convert(nfa *NFA, opts ...Option) (*DFA, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := nfa.validate(o.lenient); err != nil {
		return nil, err
	}

	extra := append(slices.Clone(nfa.States), nfa.Start)
	extra = append(extra, nfa.Accept...)
	x := newIndex(extra, nfa.Transitions, nfa.Alphabet)

	accept := make([]bool, len(x.names))
	for _, a := range nfa.Accept {
		accept[x.ids[a]] = true
	}

	width := len(nfa.Alphabet)
	var (
		arena []subset
		trans []int // arena id * width + symbol -> arena id, -1 for none
		seen  = make(map[string]int)
	)

	// discover returns the arena id of members, appending it to the arena
	// (and therefore to the worklist) the first time it is seen.
	discover := func(members []int) (int, error) {
		k := encode(members)
		if id, ok := seen[k]; ok {
			return id, nil
		}
		if o.maxStates > 0 && len(arena) >= o.maxStates {
			return 0, fmt.Errorf("automata: more than %d DFA states: %w", o.maxStates, ErrTooManyStates)
		}
		id := len(arena)
		seen[k] = id
		arena = append(arena, subset{members: members})
		for range width {
			trans = append(trans, -1)
		}
		return id, nil
	}

	if _, err := discover(x.closure([]int{x.ids[nfa.Start]})); err != nil {
		return nil, err
	}

	// The arena doubles as the FIFO worklist: head walks it in discovery order.
	for head := 0; head < len(arena); head++ {
		cur := arena[head].members
		for _, m := range cur {
			if accept[m] {
				arena[head].accepting = true
				break
			}
		}
		for sym := range width {
			var union []int
			for _, m := range cur {
				union = append(union, x.delta[m][sym]...)
			}
			target := x.closure(union)
			if len(target) == 0 {
				continue
			}
			id, err := discover(target)
			if err != nil {
				return nil, err
			}
			trans[head*width+sym] = id
		}
	}

	return materialize(x, nfa.Alphabet, arena, trans), nil
}

func materialize(x *index, alphabet []string, arena []subset, trans []int) *DFA {
	width := len(alphabet)
	d := &DFA{
		States:      make([]string, len(arena)),
		Alphabet:    slices.Clone(alphabet),
		Transitions: make(map[string]map[string]string),
		Accept:      []string{},
		Members:     make(map[string][]string, len(arena)),
	}
	for id, s := range arena {
		members := x.namesOf(s.members)
		key := formatKey(members)
		d.States[id] = key
		d.Members[key] = members
		if s.accepting {
			d.Accept = append(d.Accept, key)
		}
	}
	d.Start = d.States[0]
	for id := range arena {
		for sym := range width {
			to := trans[id*width+sym]
			if to < 0 {
				continue
			}
			from := d.States[id]
			row, ok := d.Transitions[from]
			if !ok {
				row = make(map[string]string, width)
				d.Transitions[from] = row
			}
			row[alphabet[sym]] = d.States[to]
		}
	}
	return d
}

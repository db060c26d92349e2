package automata

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Validate checks that the NFA is well formed: the alphabet holds distinct,
// non-empty symbols; every identifier is non-empty and free of the reserved
// characters "{", "}" and ","; and the start state, accept states, transition
// sources and destinations are all declared in States.
func (n *NFA) Validate() error {
	return n.validate(false)
}

func (n *NFA) validate(lenient bool) error {
	if n == nil {
		return errors.New("automata: nil NFA")
	}

	symbols := make(map[string]bool, len(n.Alphabet))
	for _, a := range n.Alphabet {
		if a == Epsilon {
			return ErrEpsilonInAlphabet
		}
		if symbols[a] {
			return fmt.Errorf("automata: symbol %q: %w", a, ErrDuplicateSymbol)
		}
		symbols[a] = true
	}

	declared := make(map[string]bool, len(n.States))
	for _, s := range n.States {
		if !validStateID(s) {
			return fmt.Errorf("automata: state %q: %w", s, ErrInvalidState)
		}
		declared[s] = true
	}

	check := func(role, id string) error {
		if !validStateID(id) {
			return fmt.Errorf("automata: %s %q: %w", role, id, ErrInvalidState)
		}
		if !lenient && !declared[id] {
			return fmt.Errorf("automata: %s %q: %w", role, id, ErrUnknownState)
		}
		return nil
	}

	if n.Start == "" {
		return ErrNoStartState
	}
	if err := check("start state", n.Start); err != nil {
		return err
	}
	for _, a := range n.Accept {
		if err := check("accept state", a); err != nil {
			return err
		}
	}

	for _, from := range slices.Sorted(maps.Keys(n.Transitions)) {
		if err := check("transition source", from); err != nil {
			return err
		}
		bySymbol := n.Transitions[from]
		for _, sym := range slices.Sorted(maps.Keys(bySymbol)) {
			if sym != Epsilon && !lenient && !symbols[sym] {
				return fmt.Errorf("automata: transition %s -%s->: %w", from, sym, ErrUnknownSymbol)
			}
			for _, to := range bySymbol[sym] {
				if err := check("transition destination", to); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

package automata

// Closure returns the epsilon-closure of states under transitions: the
// smallest set containing states that is closed under Epsilon moves. The
// result is sorted and free of duplicates. States without a transitions
// entry simply have no epsilon moves.
func Closure(states []string, transitions map[string]map[string][]string) []string {
	if len(states) == 0 {
		return []string{}
	}
	x := newIndex(states, transitions, nil)
	return x.namesOf(x.closure(x.lookup(states)))
}

package automata

// Epsilon is the reserved transition symbol for moves that consume no input.
const Epsilon = ""

// NFA is a non-deterministic finite automaton with optional epsilon moves.
// Transitions maps state -> symbol -> destinations; the Epsilon key holds the
// epsilon destinations. A missing entry means no destinations.
type NFA struct {
	States      []string                       `json:"states"`
	Alphabet    []string                       `json:"alphabet"`
	Transitions map[string]map[string][]string `json:"transitions"`
	Start       string                         `json:"start"`
	Accept      []string                       `json:"accept"`
}

// DFA is the result of subset construction. Every state is the canonical key
// of a non-empty set of NFA states (see Key). States and Accept are listed in
// discovery order. A missing (state, symbol) entry in Transitions rejects.
type DFA struct {
	States      []string                     `json:"states"`
	Alphabet    []string                     `json:"alphabet"`
	Transitions map[string]map[string]string `json:"transitions"`
	Start       string                       `json:"start"`
	Accept      []string                     `json:"accept"`
	// Members holds the underlying NFA states of each DFA state, sorted.
	Members map[string][]string `json:"members"`
}

// Edge is a single labelled transition.
type Edge struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// State describes one DFA state.
type State struct {
	Key       string   `json:"key"`
	Members   []string `json:"members"`
	Accepting bool     `json:"accepting"`
}

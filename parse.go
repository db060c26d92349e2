package automata

import (
	"slices"
	"strings"
	"unicode"
)

// FormInput is the free-text description of an NFA as entered by a user.
//
// States, Alphabet and Accept are lists separated by commas or whitespace.
// Transitions holds one transition per line in the form
//
//	q0 a -> q0, q1
//
// where the symbol ε, eps or _ denotes an epsilon move. Blank lines and lines
// starting with # are ignored.
type FormInput struct {
	States      string `json:"states" form:"states"`
	Alphabet    string `json:"alphabet" form:"alphabet"`
	Transitions string `json:"transitions" form:"transitions"`
	Start       string `json:"start" form:"start"`
	Accept      string `json:"accept" form:"accept"`
}

var epsilonTokens = []string{"ε", "eps", "_"}

// ParseNFA turns form input into a validated NFA. Every failure is reported
// as a *ParseError.
func ParseNFA(in FormInput) (*NFA, error) {
	nfa := &NFA{
		States:      normalizeOrder(splitList(in.States)),
		Alphabet:    normalizeOrder(splitList(in.Alphabet)),
		Transitions: make(map[string]map[string][]string),
		Accept:      normalizeOrder(splitList(in.Accept)),
	}
	if len(nfa.States) == 0 {
		return nil, &ParseError{Field: "states", Message: "no states given"}
	}
	for _, a := range nfa.Alphabet {
		if slices.Contains(epsilonTokens, a) {
			return nil, &ParseError{Field: "alphabet", Message: "epsilon is not an input symbol", Err: ErrEpsilonInAlphabet}
		}
	}

	start := splitList(in.Start)
	if len(start) != 1 {
		return nil, &ParseError{Field: "start", Message: "exactly one start state is required", Err: ErrNoStartState}
	}
	nfa.Start = start[0]

	for i, line := range strings.Split(in.Transitions, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseTransition(nfa, line); err != nil {
			err.Line = i + 1
			return nil, err
		}
	}

	if err := nfa.Validate(); err != nil {
		return nil, &ParseError{Field: "nfa", Message: err.Error(), Err: err}
	}
	return nfa, nil
}

func parseTransition(nfa *NFA, line string) *ParseError {
	lhs, rhs, ok := strings.Cut(line, "->")
	if !ok {
		return &ParseError{Field: "transitions", Message: `missing "->"`}
	}
	head := strings.Fields(lhs)
	if len(head) != 2 {
		return &ParseError{Field: "transitions", Message: "expected <state> <symbol> before \"->\""}
	}
	dests := splitList(rhs)
	if len(dests) == 0 {
		return &ParseError{Field: "transitions", Message: "no destination states"}
	}

	from, sym := head[0], head[1]
	if slices.Contains(epsilonTokens, sym) {
		sym = Epsilon
	}
	bySymbol, ok := nfa.Transitions[from]
	if !ok {
		bySymbol = make(map[string][]string)
		nfa.Transitions[from] = bySymbol
	}
	for _, d := range dests {
		if !slices.Contains(bySymbol[sym], d) {
			bySymbol[sym] = append(bySymbol[sym], d)
		}
	}
	return nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// normalizeOrder drops repeated entries but keeps first-seen order, which
// matters for the alphabet.
func normalizeOrder(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *NFA)
		want   error
	}{
		{"well formed", func(*NFA) {}, nil},
		{"empty accept set", func(n *NFA) { n.Accept = nil }, nil},
		{"epsilon in alphabet", func(n *NFA) { n.Alphabet = append(n.Alphabet, Epsilon) }, ErrEpsilonInAlphabet},
		{"duplicate symbol", func(n *NFA) { n.Alphabet = []string{"a", "b", "a"} }, ErrDuplicateSymbol},
		{"no start", func(n *NFA) { n.Start = "" }, ErrNoStartState},
		{"undeclared start", func(n *NFA) { n.Start = "q7" }, ErrUnknownState},
		{"undeclared accept", func(n *NFA) { n.Accept = []string{"q7"} }, ErrUnknownState},
		{"undeclared source", func(n *NFA) { n.Transitions["q7"] = map[string][]string{"a": {"q0"}} }, ErrUnknownState},
		{"undeclared destination", func(n *NFA) { n.Transitions["q1"]["b"] = []string{"q7"} }, ErrUnknownState},
		{"foreign symbol", func(n *NFA) { n.Transitions["q1"]["c"] = []string{"q0"} }, ErrUnknownSymbol},
		{"comma in state", func(n *NFA) { n.States = append(n.States, "q,3") }, ErrInvalidState},
		{"brace in state", func(n *NFA) { n.States = append(n.States, "{q3}") }, ErrInvalidState},
		{"empty state", func(n *NFA) { n.States = append(n.States, "") }, ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := threeStateNFA()
			tt.mutate(n)
			err := n.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsMalformed(err))
		})
	}
}

func TestValidateLenientStillChecksSyntax(t *testing.T) {
	n := threeStateNFA()
	n.Transitions["q1"]["b"] = []string{"x}"}
	_, err := Convert(n, WithLenient())
	assert.ErrorIs(t, err, ErrInvalidState)

	n = threeStateNFA()
	n.Alphabet = []string{"a", ""}
	_, err = Convert(n, WithLenient())
	assert.ErrorIs(t, err, ErrEpsilonInAlphabet)
}

func TestValidateNil(t *testing.T) {
	var n *NFA
	assert.Error(t, n.Validate())
	_, err := Convert(nil)
	assert.Error(t, err)
}

func TestIsMalformed(t *testing.T) {
	assert.False(t, IsMalformed(ErrTooManyStates))
	assert.False(t, IsMalformed(nil))
}

package automata

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertThreeState(t *testing.T) {
	dfa, err := Convert(threeStateNFA())
	require.NoError(t, err)

	assert.Equal(t, "{q0}", dfa.Start)
	assert.Equal(t, []string{"{q0}", "{q0,q1}", "{q0,q1,q2}"}, dfa.States)
	assert.Equal(t, map[string]map[string]string{
		"{q0}":       {"a": "{q0,q1}", "b": "{q0}"},
		"{q0,q1}":    {"a": "{q0,q1,q2}", "b": "{q0}"},
		"{q0,q1,q2}": {"a": "{q0,q1,q2}", "b": "{q0}"},
	}, dfa.Transitions)
	assert.Equal(t, []string{"{q0,q1,q2}"}, dfa.Accept)
	assert.Equal(t, []string{"a", "b"}, dfa.Alphabet)
	assert.Equal(t, []string{"q0", "q1"}, dfa.Members["{q0,q1}"])
}

func TestConvertDoesNotMutateNFA(t *testing.T) {
	nfa := threeStateNFA()
	_, err := Convert(nfa)
	require.NoError(t, err)
	assert.Equal(t, threeStateNFA(), nfa)
}

func TestConvertEmptyDestinationHasNoEntry(t *testing.T) {
	nfa := &NFA{
		States:   []string{"p", "q"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string][]string{
			"p": {"a": {"q"}},
		},
		Start:  "p",
		Accept: []string{"q"},
	}
	dfa, err := Convert(nfa)
	require.NoError(t, err)

	assert.Equal(t, []string{"{p}", "{q}"}, dfa.States)
	_, ok := dfa.Next("{p}", "b")
	assert.False(t, ok)
	_, ok = dfa.Transitions["{q}"]
	assert.False(t, ok, "state without transitions must have no row")
	assert.Equal(t, map[string]map[string]string{"{p}": {"a": "{q}"}}, dfa.Transitions)
}

func TestConvertEpsilon(t *testing.T) {
	nfa := &NFA{
		States:   []string{"s0", "s1", "s2"},
		Alphabet: []string{"a"},
		Transitions: map[string]map[string][]string{
			"s0": {Epsilon: {"s1"}},
			"s1": {"a": {"s2"}},
			"s2": {Epsilon: {"s0"}},
		},
		Start:  "s0",
		Accept: []string{"s2"},
	}
	dfa, err := Convert(nfa)
	require.NoError(t, err)

	assert.Equal(t, "{s0,s1}", dfa.Start)
	assert.Equal(t, []string{"{s0,s1}", "{s0,s1,s2}"}, dfa.States)
	assert.Equal(t, map[string]map[string]string{
		"{s0,s1}":    {"a": "{s0,s1,s2}"},
		"{s0,s1,s2}": {"a": "{s0,s1,s2}"},
	}, dfa.Transitions)
	assert.Equal(t, []string{"{s0,s1,s2}"}, dfa.Accept)
}

func TestConvertEpsilonCycle(t *testing.T) {
	nfa := &NFA{
		States:   []string{"a", "b"},
		Alphabet: []string{"x"},
		Transitions: map[string]map[string][]string{
			"a": {Epsilon: {"b"}},
			"b": {Epsilon: {"a"}, "x": {"b"}},
		},
		Start: "a",
	}
	dfa, err := Convert(nfa)
	require.NoError(t, err)
	assert.Equal(t, []string{"{a,b}"}, dfa.States)
	assert.Equal(t, "{a,b}", dfa.Transitions["{a,b}"]["x"])
	assert.Empty(t, dfa.Accept)
}

func TestConvertEmptyAlphabet(t *testing.T) {
	nfa := &NFA{
		States:      []string{"q0", "q1"},
		Transitions: map[string]map[string][]string{"q0": {Epsilon: {"q1"}}},
		Start:       "q0",
		Accept:      []string{"q1"},
	}
	dfa, err := Convert(nfa)
	require.NoError(t, err)
	assert.Equal(t, []string{"{q0,q1}"}, dfa.States)
	assert.Equal(t, []string{"{q0,q1}"}, dfa.Accept)
	assert.Empty(t, dfa.Transitions)
	assert.True(t, dfa.Accepts(nil))
}

func TestConvertMaxStates(t *testing.T) {
	nfa := nthFromLastNFA(4)

	dfa, err := Convert(nfa)
	require.NoError(t, err)
	assert.Len(t, dfa.States, 16)

	_, err = Convert(nfa, WithMaxStates(16))
	assert.NoError(t, err)

	dfa, err = Convert(nfa, WithMaxStates(8))
	assert.ErrorIs(t, err, ErrTooManyStates)
	assert.Nil(t, dfa)
}

func TestConvertStrictAndLenient(t *testing.T) {
	nfa := &NFA{
		States:   []string{"p"},
		Alphabet: []string{"a"},
		Transitions: map[string]map[string][]string{
			"p": {"a": {"q9"}},
		},
		Start: "p",
	}

	_, err := Convert(nfa)
	assert.ErrorIs(t, err, ErrUnknownState)

	dfa, err := Convert(nfa, WithLenient())
	require.NoError(t, err)
	assert.Equal(t, []string{"{p}", "{q9}"}, dfa.States)
	assert.Equal(t, "{q9}", dfa.Transitions["{p}"]["a"])
}

func TestConvertLenientIgnoresForeignSymbols(t *testing.T) {
	nfa := &NFA{
		States:   []string{"p", "q"},
		Alphabet: []string{"a"},
		Transitions: map[string]map[string][]string{
			"p": {"a": {"p"}, "z": {"q"}},
		},
		Start: "p",
	}
	_, err := Convert(nfa)
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	dfa, err := Convert(nfa, WithLenient())
	require.NoError(t, err)
	assert.Equal(t, []string{"{p}"}, dfa.States)
}

func TestConvertProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1024))
	for i := range 200 {
		nfa := randomNFA(r, 1+r.IntN(6), i%2 == 0)
		dfa, err := Convert(nfa)
		require.NoError(t, err)

		// No duplicate states, keys are canonical.
		seen := map[string]bool{}
		for _, s := range dfa.States {
			assert.False(t, seen[s], "duplicate state %s", s)
			seen[s] = true
			assert.Equal(t, Key(dfa.Members[s]), s)
			assert.NotEmpty(t, dfa.Members[s])
		}

		// Every transition stays inside the state set.
		for from, row := range dfa.Transitions {
			assert.True(t, seen[from])
			for _, to := range row {
				assert.True(t, seen[to])
			}
		}

		// Every state is reachable from the start.
		reached := map[string]bool{dfa.Start: true}
		queue := []string{dfa.Start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, to := range dfa.Transitions[cur] {
				if !reached[to] {
					reached[to] = true
					queue = append(queue, to)
				}
			}
		}
		assert.Len(t, reached, len(dfa.States))

		// Accepting iff the member set meets the NFA accept set.
		for _, s := range dfa.States {
			meets := slices.ContainsFunc(dfa.Members[s], func(m string) bool {
				return slices.Contains(nfa.Accept, m)
			})
			assert.Equal(t, meets, dfa.IsAccepting(s), "state %s", s)
		}

		// Same language.
		for _, w := range words(nfa.Alphabet, 5) {
			assert.Equal(t, nfa.Accepts(w), dfa.Accepts(w), "word %v", w)
		}
	}
}

func TestConvertWithoutEpsilonsIsPowerset(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for range 100 {
		nfa := randomNFA(r, 5, false)
		dfa, err := Convert(nfa)
		require.NoError(t, err)

		assert.Equal(t, "{s0}", dfa.Start)
		for _, e := range dfa.Edges() {
			var union []string
			for _, m := range dfa.Members[e.From] {
				union = append(union, nfa.Transitions[m][e.Symbol]...)
			}
			assert.Equal(t, normalize(union), dfa.Members[e.To])
		}
	}
}

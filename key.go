package automata

import (
	"slices"
	"strings"
)

// reserved characters would make canonical keys ambiguous.
const reserved = "{},"

// Key returns the canonical key of a set of NFA states: the members are
// deduplicated, sorted and joined with commas inside braces, so {q1,q0,q1}
// becomes "{q0,q1}". Equal sets always produce equal keys.
func Key(states []string) string {
	return formatKey(normalize(states))
}

// normalize returns a sorted copy of states without duplicates.
func normalize(states []string) []string {
	out := slices.Clone(states)
	slices.Sort(out)
	return slices.Compact(out)
}

// formatKey expects sorted, unique members.
func formatKey(members []string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m)
	}
	sb.WriteByte('}')
	return sb.String()
}

func validStateID(id string) bool {
	return id != "" && !strings.ContainsAny(id, reserved)
}

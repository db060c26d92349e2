package graph

import (
	"fmt"
	"strings"
)

// startMarker is the id of the invisible start node. Validated NFA states
// and DFA keys are never empty, so it cannot clash with a real state.
const startMarker = ""

// DOT renders g as a left-to-right Graphviz digraph. Accepting states are
// drawn as double circles and an invisible point marks the start state.
func DOT(g *Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("rankdir=\"LR\"\n")
	sb.WriteString("node [shape=circle]\n")

	for _, n := range g.Nodes {
		name := EscapeLabel(n.Name)
		if n.Accepting {
			sb.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\", shape=doublecircle];\n", name, name))
		} else {
			sb.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\"];\n", name, name))
		}
	}

	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("\"%s\" -> \"%s\" [label=\"%s\"];\n",
			EscapeLabel(e.From), EscapeLabel(e.To), EscapeLabel(e.Label)))
	}

	if g.Start != "" {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(" \"%s\" [label=\"\", shape=point];\n", startMarker))
		sb.WriteString(fmt.Sprintf(" \"%s\" -> \"%s\"\n", startMarker, EscapeLabel(g.Start)))
	}
	sb.WriteString("}")
	return sb.String()
}

// EscapeLabel escapes special characters in a DOT label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}

package graph

import (
	"fmt"
	"strings"
	"unicode"
)

// Mermaid renders g as a left-to-right Mermaid state diagram. State names
// such as "{q0,q1}" are not valid Mermaid identifiers, so every node gets a
// sanitized id with the original name as its description.
func Mermaid(g *Graph) string {
	ids := sanitizedIDs(g.Nodes)

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString("\tdirection LR\n")

	// Every node is declared so isolated states still show up.
	for _, n := range g.Nodes {
		if ids[n.Name] != n.Name {
			sb.WriteString(fmt.Sprintf("\t%s : %s\n", ids[n.Name], n.Name))
		} else {
			sb.WriteString(fmt.Sprintf("\t%s\n", n.Name))
		}
	}
	if g.Start != "" {
		sb.WriteString(fmt.Sprintf("\t[*] --> %s\n", ids[g.Start]))
	}
	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("\t%s --> %s : %s\n", ids[e.From], ids[e.To], e.Label))
	}
	for _, n := range g.Nodes {
		if n.Accepting {
			sb.WriteString(fmt.Sprintf("\t%s --> [*]\n", ids[n.Name]))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func sanitizedIDs(nodes []Node) map[string]string {
	ids := make(map[string]string, len(nodes))
	used := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		base := sanitize(n.Name)
		id := base
		for i := 1; used[id]; i++ {
			id = fmt.Sprintf("%s_%d", base, i)
		}
		used[id] = true
		ids[n.Name] = id
	}
	return ids
}

// keywords cannot be used as bare state ids in a state diagram.
// Keys are lower case; matching ignores case.
var keywords = map[string]bool{
	"end":          true,
	"state":        true,
	"direction":    true,
	"note":         true,
	"class":        true,
	"classdef":     true,
	"click":        true,
	"style":        true,
	"linkstyle":    true,
	"as":           true,
	"statediagram": true,
}

func sanitize(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	id := sb.String()
	if keywords[strings.ToLower(id)] {
		id += "_"
	}
	return id
}

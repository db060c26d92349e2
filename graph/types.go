// Package graph renders automata as Graphviz DOT and Mermaid state diagrams.
package graph

import (
	"slices"
	"strings"

	"github.com/meikuraledutech/automata"
)

// EpsilonLabel is shown on epsilon moves.
const EpsilonLabel = "ε"

// Node is a state in the graph.
type Node struct {
	Name      string
	Accepting bool
}

// Edge connects two nodes. Parallel transitions are merged into one edge
// whose label lists every symbol.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is a renderer-neutral view of an automaton.
type Graph struct {
	Nodes []Node
	Edges []Edge
	Start string
}

// FromDFA builds a graph with nodes in discovery order.
func FromDFA(d *automata.DFA) *Graph {
	g := &Graph{Start: d.Start}
	for _, s := range d.States {
		g.Nodes = append(g.Nodes, Node{Name: s, Accepting: d.IsAccepting(s)})
	}
	var b edgeBuilder
	for _, e := range d.Edges() {
		b.add(e.From, e.To, e.Symbol)
	}
	g.Edges = b.edges()
	return g
}

// FromNFA builds a graph with nodes in declaration order. Undeclared states
// referenced by transitions are appended in sorted order.
func FromNFA(n *automata.NFA) *Graph {
	g := &Graph{Start: n.Start}
	seen := make(map[string]bool)
	addNode := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		g.Nodes = append(g.Nodes, Node{Name: name, Accepting: slices.Contains(n.Accept, name)})
	}
	for _, s := range n.States {
		addNode(s)
	}

	var extra []string
	for from, bySymbol := range n.Transitions {
		extra = append(extra, from)
		for _, dests := range bySymbol {
			extra = append(extra, dests...)
		}
	}
	extra = append(extra, n.Start)
	extra = append(extra, n.Accept...)
	slices.Sort(extra)
	for _, s := range extra {
		addNode(s)
	}

	// Transitions on symbols outside the alphabet are not drawn; Convert
	// ignores them too under WithLenient.
	symbols := append(slices.Clone(n.Alphabet), automata.Epsilon)
	var b edgeBuilder
	for _, node := range g.Nodes {
		bySymbol := n.Transitions[node.Name]
		for _, sym := range symbols {
			label := sym
			if sym == automata.Epsilon {
				label = EpsilonLabel
			}
			for _, to := range bySymbol[sym] {
				b.add(node.Name, to, label)
			}
		}
	}
	g.Edges = b.edges()
	return g
}

// edgeBuilder merges parallel edges, keeping first-seen order.
type edgeBuilder struct {
	order  [][2]string
	labels map[[2]string][]string
}

func (b *edgeBuilder) add(from, to, label string) {
	if b.labels == nil {
		b.labels = make(map[[2]string][]string)
	}
	k := [2]string{from, to}
	if _, ok := b.labels[k]; !ok {
		b.order = append(b.order, k)
	}
	if !slices.Contains(b.labels[k], label) {
		b.labels[k] = append(b.labels[k], label)
	}
}

func (b *edgeBuilder) edges() []Edge {
	out := make([]Edge, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, Edge{From: k[0], To: k[1], Label: strings.Join(b.labels[k], ",")})
	}
	return out
}

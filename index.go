package automata

import (
	"encoding/binary"
	"slices"
)

// index interns NFA state identifiers as dense ints. Identifiers are numbered
// in lexicographic order, so a sorted []int maps to a sorted []string.
type index struct {
	names []string
	ids   map[string]int
	eps   [][]int   // epsilon destinations per state
	delta [][][]int // destinations per state and alphabet position

	mark []bool // closure scratch, all false between calls
}

// newIndex interns every identifier in extra and every identifier mentioned
// by transitions. Only symbols in alphabet get a delta column.
func newIndex(extra []string, transitions map[string]map[string][]string, alphabet []string) *index {
	names := slices.Clone(extra)
	for from, bySymbol := range transitions {
		names = append(names, from)
		for _, dests := range bySymbol {
			names = append(names, dests...)
		}
	}
	names = normalize(names)

	x := &index{
		names: names,
		ids:   make(map[string]int, len(names)),
		eps:   make([][]int, len(names)),
		delta: make([][][]int, len(names)),
		mark:  make([]bool, len(names)),
	}
	for i, n := range names {
		x.ids[n] = i
	}
	for i, n := range names {
		bySymbol := transitions[n]
		x.eps[i] = x.lookup(bySymbol[Epsilon])
		row := make([][]int, len(alphabet))
		for k, sym := range alphabet {
			row[k] = x.lookup(bySymbol[sym])
		}
		x.delta[i] = row
	}
	return x
}

// lookup maps identifiers to ids. Every identifier must have been interned.
func (x *index) lookup(names []string) []int {
	if len(names) == 0 {
		return nil
	}
	out := make([]int, len(names))
	for i, n := range names {
		out[i] = x.ids[n]
	}
	return out
}

func (x *index) namesOf(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = x.names[id]
	}
	return out
}

// closure returns the sorted epsilon-closure of set. Duplicates in set are
// ignored. Each state is pushed at most once.
func (x *index) closure(set []int) []int {
	out := make([]int, 0, len(set))
	stack := make([]int, 0, len(set))
	for _, s := range set {
		if !x.mark[s] {
			x.mark[s] = true
			out = append(out, s)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range x.eps[s] {
			if !x.mark[d] {
				x.mark[d] = true
				out = append(out, d)
				stack = append(stack, d)
			}
		}
	}
	for _, s := range out {
		x.mark[s] = false
	}
	slices.Sort(out)
	return out
}

// encode packs a sorted id set into a map key. Uvarints are prefix-free, so
// distinct sets never share an encoding.
func encode(ids []int) string {
	buf := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		buf = binary.AppendUvarint(buf, uint64(id))
	}
	return string(buf)
}

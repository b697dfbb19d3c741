package triad_motif

import (
	"fmt"

	"github.com/jtomasevic/hypermotif/pkg/hypergraph"
)

// Roles inside a triad.
const (
	c1 = 0
	c2 = 1
	c3 = 2
)

// relation is a directed edge between two roles, e.g. {c1, c2} is C1 -> C2.
type relation [2]int

// pattern is the exact topology of a motif: the relations listed are present,
// every other relation between the three roles is absent. The order of the
// list is the order of the evidence lists on an emitted TriadMotif.
type pattern []relation

var patterns = map[MotifType]pattern{
	NoEdge:            {},
	SingleEdge:        {{c1, c2}},
	Dyadic:            {{c1, c2}, {c2, c1}},
	Incoming:          {{c2, c1}, {c3, c1}},
	Outgoing:          {{c1, c2}, {c1, c3}},
	Unidirectional:    {{c1, c2}, {c2, c3}},
	Incoming2To3:      {{c2, c1}, {c3, c1}, {c2, c3}},
	DirectedCycle:     {{c1, c2}, {c2, c3}, {c3, c1}},
	Incoming1To3:      {{c2, c1}, {c3, c1}, {c1, c3}},
	Outgoing3To1:      {{c1, c2}, {c1, c3}, {c3, c1}},
	IncomingRecip:     {{c2, c1}, {c3, c1}, {c2, c3}, {c3, c2}},
	OutgoingRecip:     {{c1, c2}, {c1, c3}, {c2, c3}, {c3, c2}},
	DirectedCycle1To3: {{c1, c2}, {c2, c3}, {c3, c1}, {c1, c3}},
	Direciprocal:      {{c1, c2}, {c2, c1}, {c1, c3}, {c3, c1}},
	Direciprocal2To3:  {{c1, c2}, {c2, c1}, {c1, c3}, {c3, c1}, {c2, c3}},
	Trireciprocal:     {{c1, c2}, {c2, c1}, {c2, c3}, {c3, c2}, {c3, c1}, {c1, c3}},
}

// allRelations enumerates the six directed relations among three roles;
// bit i of a topology code is set when allRelations[i] is present.
var allRelations = [6]relation{
	{c1, c2}, {c2, c1},
	{c1, c3}, {c3, c1},
	{c2, c3}, {c3, c2},
}

var rolePermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// topologyCode packs the presence of the six relations of an ordered triple into 6 bits.
func topologyCode(has func(from, to int) bool) uint8 {
	var code uint8
	for i, r := range allRelations {
		if has(r[0], r[1]) {
			code |= 1 << i
		}
	}
	return code
}

// code is the topology code of the pattern itself.
func (p pattern) code() uint8 {
	return topologyCode(func(from, to int) bool {
		for _, r := range p {
			if r[0] == from && r[1] == to {
				return true
			}
		}
		return false
	})
}

// matches reports the role assignments (perm[role] = position in the
// observed triple) under which the observed code equals the pattern.
func (p pattern) matches(observed uint8) [][3]int {
	want := p.code()
	var result [][3]int
	for _, perm := range rolePermutations {
		relabeled := topologyCode(func(from, to int) bool {
			for i, r := range allRelations {
				if r[0] == perm[from] && r[1] == perm[to] {
					return observed&(1<<i) != 0
				}
			}
			return false
		})
		if relabeled == want {
			result = append(result, perm)
		}
	}
	return result
}

// Classify is the brute-force reference classifier for a single triple of
// distinct nodes: it tries every motif pattern under every role assignment.
// The returned roles are the first matching assignment (C1, C2, C3).
// A repeated node fails with ErrRepeatedNode.
func Classify(store hypergraph.AdjacencyStore, a, b, c hypergraph.NodeID) (MotifType, [3]hypergraph.NodeID, error) {
	triple := [3]hypergraph.NodeID{a, b, c}
	if a == b || a == c || b == c {
		return "", triple, fmt.Errorf("classify (%s, %s, %s): %w", a, b, c, ErrRepeatedNode)
	}
	observed := topologyCode(func(from, to int) bool {
		return store.HasEdge(triple[from], triple[to])
	})

	for _, t := range allMotifTypes {
		perms := patterns[t].matches(observed)
		if len(perms) == 0 {
			continue
		}
		p := perms[0]
		return t, [3]hypergraph.NodeID{triple[p[c1]], triple[p[c2]], triple[p[c3]]}, nil
	}
	// unreachable: the 16 patterns cover all 64 codes
	return "", triple, nil
}

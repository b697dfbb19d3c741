package triad_motif

import (
	"slices"

	"github.com/jtomasevic/hypermotif/pkg/hypergraph"
)

type NodeID = hypergraph.NodeID

// neighborhood is the adjacency of one anchor node, without self-loops.
// Every list follows the store's node order.
type neighborhood struct {
	inOnly      []NodeID // in \ out
	outOnly     []NodeID // out \ in
	both        []NodeID // in ∩ out
	nonAdjacent []NodeID // neither in nor out, anchor excluded
}

// census is a read-only snapshot of the store taken once per extraction.
// After newCensus returns nothing in it is written, so the per-class
// enumerations can share it across goroutines.
type census struct {
	store hypergraph.AdjacencyStore
	nodes []NodeID
	index map[NodeID]int
	hoods map[NodeID]*neighborhood
}

func newCensus(store hypergraph.AdjacencyStore) *census {
	nodes := store.Nodes()
	c := &census{
		store: store,
		nodes: nodes,
		index: make(map[NodeID]int, len(nodes)),
		hoods: make(map[NodeID]*neighborhood, len(nodes)),
	}
	for i, n := range nodes {
		c.index[n] = i
	}
	for _, n := range nodes {
		c.hoods[n] = c.buildNeighborhood(n)
	}
	return c
}

func (c *census) buildNeighborhood(anchor NodeID) *neighborhood {
	in := c.ordered(anchor, c.store.Incoming(anchor))
	out := c.ordered(anchor, c.store.Outgoing(anchor))

	inSet := make(map[NodeID]bool, len(in))
	for _, n := range in {
		inSet[n] = true
	}
	outSet := make(map[NodeID]bool, len(out))
	for _, n := range out {
		outSet[n] = true
	}

	h := &neighborhood{}
	for _, n := range in {
		if outSet[n] {
			h.both = append(h.both, n)
		} else {
			h.inOnly = append(h.inOnly, n)
		}
	}
	for _, n := range out {
		if !inSet[n] {
			h.outOnly = append(h.outOnly, n)
		}
	}
	for _, n := range c.nodes {
		if n != anchor && !inSet[n] && !outSet[n] {
			h.nonAdjacent = append(h.nonAdjacent, n)
		}
	}
	return h
}

// ordered drops the anchor itself and sorts by the store's node order.
func (c *census) ordered(anchor NodeID, ids []NodeID) []NodeID {
	result := make([]NodeID, 0, len(ids))
	for _, id := range ids {
		if id != anchor {
			result = append(result, id)
		}
	}
	slices.SortFunc(result, func(a, b NodeID) int {
		return c.index[a] - c.index[b]
	})
	return result
}

func (c *census) has(from, to NodeID) bool {
	return c.store.HasEdge(from, to)
}

func (c *census) adjacent(a, b NodeID) bool {
	return c.has(a, b) || c.has(b, a)
}

func (c *census) mutual(a, b NodeID) bool {
	return c.has(a, b) && c.has(b, a)
}

func (c *census) motif(t MotifType, n1, n2, n3 NodeID) TriadMotif {
	return newTriadMotif(c.store, t, n1, n2, n3)
}

// pairs visits every 2-combination of ids in list order.
func pairs(ids []NodeID, visit func(a, b NodeID)) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			visit(ids[i], ids[j])
		}
	}
}

// orderedPairs visits every 2-permutation of ids.
func orderedPairs(ids []NodeID, visit func(a, b NodeID)) {
	for i := range ids {
		for j := range ids {
			if i != j {
				visit(ids[i], ids[j])
			}
		}
	}
}

// triples visits every 3-combination of ids in list order.
func triples(ids []NodeID, visit func(a, b, c NodeID)) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			for k := j + 1; k < len(ids); k++ {
				visit(ids[i], ids[j], ids[k])
			}
		}
	}
}

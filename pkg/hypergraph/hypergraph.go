package hypergraph

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// AdjacencyStore is the read-only view the motif engine works against.
//
// Every method is a pure query: asking about a pair that has no edges
// returns an empty result and MUST NOT create any entry in the store.
type AdjacencyStore interface {
	Nodes() []NodeID
	Outgoing(of NodeID) []NodeID
	Incoming(of NodeID) []NodeID
	EdgesBetween(from, to NodeID) []Edge
	HasEdge(from, to NodeID) bool
}

// Hypergraph is an in-memory directed multigraph of participants (hypernodes)
// connected by timestamped reply edges.
type Hypergraph struct {
	nodes []NodeID
	index map[NodeID]int

	// adjacency lists
	// out[from][to] -> edges from -> to, in insertion order
	// in[to][from]  -> the same edges, reachable from the target
	out map[NodeID]map[NodeID][]Edge
	in  map[NodeID]map[NodeID][]Edge

	seq uint64
}

// New returns an empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{
		index: make(map[NodeID]int),
		out:   make(map[NodeID]map[NodeID][]Edge),
		in:    make(map[NodeID]map[NodeID][]Edge),
	}
}

// AddNode declares a node. It returns false if the node already exists.
func (g *Hypergraph) AddNode(id NodeID) bool {
	if _, ok := g.index[id]; ok {
		return false
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)
	return true
}

// AddNodes declares every id, skipping ones already present.
func (g *Hypergraph) AddNodes(ids ...NodeID) {
	for _, id := range ids {
		g.AddNode(id)
	}
}

// AddEdge records one edge from -> to in both adjacency views. Both endpoints
// must already be declared, otherwise it fails with ErrUnknownNode.
func (g *Hypergraph) AddEdge(from, to NodeID, timestamp time.Time, text string) (Edge, error) {
	if _, ok := g.index[from]; !ok {
		return Edge{}, fmt.Errorf("from node %q: %w", from, ErrUnknownNode)
	}
	if _, ok := g.index[to]; !ok {
		return Edge{}, fmt.Errorf("to node %q: %w", to, ErrUnknownNode)
	}

	g.seq++
	edge := Edge{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Timestamp: timestamp,
		Seq:       g.seq,
		Text:      text,
	}

	if g.out[from] == nil {
		g.out[from] = make(map[NodeID][]Edge)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[NodeID][]Edge)
	}
	g.out[from][to] = append(g.out[from][to], edge)
	g.in[to][from] = append(g.in[to][from], edge)
	return edge, nil
}

func (g *Hypergraph) HasNode(id NodeID) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Hypergraph) Nodes() []NodeID {
	return slices.Clone(g.nodes)
}

func (g *Hypergraph) NodeCount() int {
	return len(g.nodes)
}

func (g *Hypergraph) EdgeCount() int {
	return int(g.seq)
}

// Outgoing returns the nodes B with at least one edge of -> B, in node insertion order.
func (g *Hypergraph) Outgoing(of NodeID) []NodeID {
	return g.neighbors(g.out[of])
}

// Incoming returns the nodes B with at least one edge B -> of, in node insertion order.
func (g *Hypergraph) Incoming(of NodeID) []NodeID {
	return g.neighbors(g.in[of])
}

// EdgesBetween returns the edges from -> to in insertion order.
// Reading a missing row or column of a nil inner map never inserts anything.
func (g *Hypergraph) EdgesBetween(from, to NodeID) []Edge {
	edges := g.out[from][to]
	if len(edges) == 0 {
		return []Edge{}
	}
	return slices.Clone(edges)
}

// HasEdge reports whether at least one edge from -> to exists.
func (g *Hypergraph) HasEdge(from, to NodeID) bool {
	return len(g.out[from][to]) > 0
}

// Validate checks that every recorded edge joins declared nodes and that
// out[a][b] and in[b][a] hold exactly the same edges.
func (g *Hypergraph) Validate() error {
	total := 0
	for from, row := range g.out {
		if !g.HasNode(from) {
			return fmt.Errorf("edge source %q: %w", from, ErrUnknownNode)
		}
		for to, edges := range row {
			if !g.HasNode(to) {
				return fmt.Errorf("edge target %q: %w", to, ErrUnknownNode)
			}
			reverse := g.in[to][from]
			if len(reverse) != len(edges) {
				return fmt.Errorf("%s -> %s: %d forward vs %d reverse edges: %w",
					from, to, len(edges), len(reverse), ErrIndexMismatch)
			}
			for i := range edges {
				if edges[i].ID != reverse[i].ID {
					return fmt.Errorf("%s -> %s: edge %d differs: %w", from, to, i, ErrIndexMismatch)
				}
			}
			total += len(edges)
		}
	}

	reverseTotal := 0
	for _, row := range g.in {
		for _, edges := range row {
			reverseTotal += len(edges)
		}
	}
	if total != reverseTotal {
		return fmt.Errorf("%d forward vs %d reverse edges: %w", total, reverseTotal, ErrIndexMismatch)
	}
	return nil
}

func (g *Hypergraph) neighbors(row map[NodeID][]Edge) []NodeID {
	result := make([]NodeID, 0, len(row))
	for id, edges := range row {
		if len(edges) > 0 {
			result = append(result, id)
		}
	}
	slices.SortFunc(result, func(a, b NodeID) int {
		return g.index[a] - g.index[b]
	})
	return result
}

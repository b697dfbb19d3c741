package triad_motif

import (
	"encoding/json"
	"slices"

	"github.com/jtomasevic/hypermotif/pkg/hypergraph"
)

// TriadMotif is one classified triple of nodes. It is built once by the
// extractor and never modified: accessors hand out copies.
type TriadMotif struct {
	nodes     [3]hypergraph.NodeID
	edges     [][]hypergraph.Edge
	motifType MotifType
}

// Motifs maps every motif type to the triads classified under it.
type Motifs map[MotifType][]TriadMotif

func newMotifs() Motifs {
	m := make(Motifs, len(allMotifTypes))
	for _, t := range allMotifTypes {
		m[t] = []TriadMotif{}
	}
	return m
}

// newTriadMotif collects the evidence for each present relation of the
// motif's pattern, sorted by timestamp.
func newTriadMotif(store hypergraph.AdjacencyStore, t MotifType, n1, n2, n3 hypergraph.NodeID) TriadMotif {
	roles := [3]hypergraph.NodeID{n1, n2, n3}
	p := patterns[t]
	edges := make([][]hypergraph.Edge, 0, len(p))
	for _, r := range p {
		edges = append(edges, hypergraph.SortByTimestamp(store.EdgesBetween(roles[r[0]], roles[r[1]])))
	}
	return TriadMotif{nodes: roles, edges: edges, motifType: t}
}

func (m TriadMotif) C1() hypergraph.NodeID { return m.nodes[c1] }
func (m TriadMotif) C2() hypergraph.NodeID { return m.nodes[c2] }
func (m TriadMotif) C3() hypergraph.NodeID { return m.nodes[c3] }

func (m TriadMotif) Nodes() [3]hypergraph.NodeID {
	return m.nodes
}

func (m TriadMotif) Type() MotifType {
	return m.motifType
}

// Edges returns one chronologically sorted evidence list per relation that
// defines the motif type.
func (m TriadMotif) Edges() [][]hypergraph.Edge {
	result := make([][]hypergraph.Edge, len(m.edges))
	for i, e := range m.edges {
		result[i] = slices.Clone(e)
	}
	return result
}

// Triad returns the node triple sorted lexically, independent of roles.
func (m TriadMotif) Triad() [3]hypergraph.NodeID {
	t := m.nodes
	slices.Sort(t[:])
	return t
}

type triadMotifJSON struct {
	Type  MotifType            `json:"type"`
	Nodes [3]hypergraph.NodeID `json:"nodes"`
	Edges [][]edgeJSON         `json:"edges"`
}

type edgeJSON struct {
	ID        string  `json:"id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Timestamp float64 `json:"timestamp"`
	Text      string  `json:"text,omitempty"`
}

func (m TriadMotif) MarshalJSON() ([]byte, error) {
	out := triadMotifJSON{
		Type:  m.motifType,
		Nodes: m.nodes,
		Edges: make([][]edgeJSON, 0, len(m.edges)),
	}
	for _, list := range m.edges {
		rendered := make([]edgeJSON, 0, len(list))
		for _, e := range list {
			rendered = append(rendered, edgeJSON{
				ID:        e.ID.String(),
				From:      e.From,
				To:        e.To,
				Timestamp: e.EpochSeconds(),
				Text:      e.Text,
			})
		}
		out.Edges = append(out.Edges, rendered)
	}
	return json.Marshal(out)
}

// Counts reports how many triads were classified under each motif type.
func (m Motifs) Counts() map[MotifType]int {
	counts := make(map[MotifType]int, len(allMotifTypes))
	for _, t := range allMotifTypes {
		counts[t] = len(m[t])
	}
	return counts
}

// Total is the number of classified triads over all motif types.
func (m Motifs) Total() int {
	total := 0
	for _, list := range m {
		total += len(list)
	}
	return total
}

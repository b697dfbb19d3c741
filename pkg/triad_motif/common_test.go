package triad_motif

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jtomasevic/hypermotif/pkg/hypergraph"
)

// buildGraph declares nodes and adds one edge per pair, with timestamps
// increasing in argument order.
func buildGraph(t *testing.T, nodes []NodeID, edges ...[2]NodeID) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	g.AddNodes(nodes...)
	for i, e := range edges {
		_, err := g.AddEdge(e[0], e[1], time.Unix(int64(1000+i), 0).UTC(), fmt.Sprintf("%s->%s #%d", e[0], e[1], i))
		require.NoError(t, err)
	}
	return g
}

func randomGraph(t *testing.T, rng *rand.Rand, n int, density float64) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	nodes := make([]NodeID, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("n%02d", i)
	}
	g.AddNodes(nodes...)

	for _, a := range nodes {
		for _, b := range nodes {
			if a == b {
				if rng.Float64() < 0.05 {
					_, err := g.AddEdge(a, b, time.Unix(rng.Int63n(100), 0), "self")
					require.NoError(t, err)
				}
				continue
			}
			if rng.Float64() >= density {
				continue
			}
			multiplicity := 1 + rng.Intn(3)
			for k := 0; k < multiplicity; k++ {
				_, err := g.AddEdge(a, b, time.Unix(rng.Int63n(100), 0), "")
				require.NoError(t, err)
			}
		}
	}
	return g
}

// requireExactPattern checks that the motif's roles exhibit precisely its
// pattern: listed relations present, all others absent.
func requireExactPattern(t *testing.T, store hypergraph.AdjacencyStore, m TriadMotif) {
	t.Helper()
	p := patterns[m.Type()]
	nodes := m.Nodes()
	for _, r := range allRelations {
		want := slices.Contains(p, r)
		got := store.HasEdge(nodes[r[0]], nodes[r[1]])
		require.Equal(t, want, got, "%s %v: relation C%d -> C%d", m.Type(), nodes, r[0]+1, r[1]+1)
	}
}

// requireEvidence checks one sorted evidence list per pattern relation, in pattern order.
func requireEvidence(t *testing.T, store hypergraph.AdjacencyStore, m TriadMotif) {
	t.Helper()
	p := patterns[m.Type()]
	nodes := m.Nodes()
	edges := m.Edges()
	require.Len(t, edges, len(p))
	for i, r := range p {
		want := hypergraph.SortByTimestamp(store.EdgesBetween(nodes[r[0]], nodes[r[1]]))
		require.NotEmpty(t, edges[i])
		require.Equal(t, want, edges[i])
		for j := 1; j < len(edges[i]); j++ {
			require.False(t, edges[i][j].Timestamp.Before(edges[i][j-1].Timestamp))
		}
	}
}

// triadIndex maps each sorted triple to the motif types it was reported under.
func triadIndex(t *testing.T, motifs Motifs) map[[3]NodeID][]MotifType {
	t.Helper()
	index := make(map[[3]NodeID][]MotifType)
	for mt, list := range motifs {
		for _, m := range list {
			require.Equal(t, mt, m.Type())
			index[m.Triad()] = append(index[m.Triad()], mt)
		}
	}
	return index
}

func choose3(n int) int {
	return n * (n - 1) * (n - 2) / 6
}

func choose2(n int) int {
	return n * (n - 1) / 2
}

func onlyNonEmpty(t *testing.T, motifs Motifs, want MotifType) []TriadMotif {
	t.Helper()
	require.Len(t, motifs, len(allMotifTypes))
	for _, mt := range allMotifTypes {
		list, ok := motifs[mt]
		require.True(t, ok, "missing key %s", mt)
		if mt != want {
			require.Empty(t, list, "unexpected %s motifs", mt)
		}
	}
	return motifs[want]
}

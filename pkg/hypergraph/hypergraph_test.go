package hypergraph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func buildThread(t *testing.T) *Hypergraph {
	g := New()
	g.AddNodes("alice", "bob", "carol", "dave")

	_, err := g.AddEdge("alice", "bob", at(30), "first")
	require.NoError(t, err)
	_, err = g.AddEdge("alice", "bob", at(10), "second")
	require.NoError(t, err)
	_, err = g.AddEdge("bob", "alice", at(20), "reply")
	require.NoError(t, err)
	_, err = g.AddEdge("carol", "alice", at(40), "late")
	require.NoError(t, err)
	return g
}

func TestAddNode_NoDuplicates(t *testing.T) {
	g := New()
	require.True(t, g.AddNode("alice"))
	require.False(t, g.AddNode("alice"))
	g.AddNodes("bob", "alice", "carol")

	require.Equal(t, []NodeID{"alice", "bob", "carol"}, g.Nodes())
	require.Equal(t, 3, g.NodeCount())
	require.True(t, g.HasNode("bob"))
	require.False(t, g.HasNode("dave"))
}

func TestNodes_ReturnsCopy(t *testing.T) {
	g := New()
	g.AddNodes("alice", "bob")

	nodes := g.Nodes()
	nodes[0] = "mallory"
	require.Equal(t, []NodeID{"alice", "bob"}, g.Nodes())
}

func TestEmptyGraph(t *testing.T) {
	g := New()
	require.Empty(t, g.Nodes())
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestAddEdge_UnknownNode(t *testing.T) {
	g := New()
	g.AddNode("alice")

	_, err := g.AddEdge("alice", "ghost", at(1), "")
	require.ErrorIs(t, err, ErrUnknownNode)
	_, err = g.AddEdge("ghost", "alice", at(1), "")
	require.ErrorIs(t, err, ErrUnknownNode)

	require.Zero(t, g.EdgeCount())
	require.False(t, g.HasEdge("alice", "ghost"))
}

func TestAddEdge_AssignsIdentity(t *testing.T) {
	g := New()
	g.AddNodes("alice", "bob")

	e1, err := g.AddEdge("alice", "bob", at(5), "hello")
	require.NoError(t, err)
	e2, err := g.AddEdge("alice", "bob", at(5), "again")
	require.NoError(t, err)

	require.NotEqual(t, e1.ID, e2.ID)
	require.Equal(t, uint64(1), e1.Seq)
	require.Equal(t, uint64(2), e2.Seq)
	require.Equal(t, "hello", e1.Text)
	require.Equal(t, 2, g.EdgeCount())
}

func TestAdjacencyQueries(t *testing.T) {
	g := buildThread(t)

	require.Equal(t, []NodeID{"bob"}, g.Outgoing("alice"))
	require.Equal(t, []NodeID{"bob", "carol"}, g.Incoming("alice"))
	require.Equal(t, []NodeID{"alice"}, g.Outgoing("carol"))
	require.Empty(t, g.Incoming("carol"))
	require.Empty(t, g.Outgoing("dave"))
	require.Empty(t, g.Incoming("dave"))

	require.True(t, g.HasEdge("alice", "bob"))
	require.True(t, g.HasEdge("bob", "alice"))
	require.False(t, g.HasEdge("alice", "carol"))

	edges := g.EdgesBetween("alice", "bob")
	require.Len(t, edges, 2)
	require.Equal(t, "first", edges[0].Text)
	require.Equal(t, "second", edges[1].Text)
	require.Empty(t, g.EdgesBetween("bob", "carol"))
	require.NotNil(t, g.EdgesBetween("bob", "carol"))
}

func TestForwardAndReverseViewsAgree(t *testing.T) {
	g := buildThread(t)
	require.NoError(t, g.Validate())

	for _, a := range g.Nodes() {
		for _, b := range g.Outgoing(a) {
			require.Contains(t, g.Incoming(b), a)
			require.Equal(t, g.EdgesBetween(a, b), g.in[b][a])
		}
	}
}

func TestValidate_DetectsMismatch(t *testing.T) {
	g := buildThread(t)
	g.in["bob"]["alice"] = g.in["bob"]["alice"][:1]
	require.ErrorIs(t, g.Validate(), ErrIndexMismatch)

	g = buildThread(t)
	g.out["ghost"] = map[NodeID][]Edge{"alice": {{From: "ghost", To: "alice"}}}
	require.ErrorIs(t, g.Validate(), ErrUnknownNode)
}

func TestEdgesBetween_ReturnsCopy(t *testing.T) {
	g := buildThread(t)

	edges := g.EdgesBetween("alice", "bob")
	edges[0].Text = "tampered"
	require.Equal(t, "first", g.EdgesBetween("alice", "bob")[0].Text)
}

// Probing absent pairs must never create entries in the adjacency maps.
func TestLookupsDoNotMutate(t *testing.T) {
	g := buildThread(t)
	outRows, inRows := len(g.out), len(g.in)
	outAlice := len(g.out["alice"])
	nodes, edges := g.NodeCount(), g.EdgeCount()

	for _, a := range []NodeID{"alice", "bob", "carol", "dave", "ghost"} {
		for _, b := range []NodeID{"alice", "bob", "carol", "dave", "ghost"} {
			g.HasEdge(a, b)
			g.EdgesBetween(a, b)
		}
		g.Outgoing(a)
		g.Incoming(a)
	}

	require.Equal(t, outRows, len(g.out))
	require.Equal(t, inRows, len(g.in))
	require.Equal(t, outAlice, len(g.out["alice"]))
	require.Equal(t, nodes, g.NodeCount())
	require.Equal(t, edges, g.EdgeCount())
	_, ok := g.out["dave"]
	require.False(t, ok)
	_, ok = g.out["alice"]["carol"]
	require.False(t, ok)
	require.NoError(t, g.Validate())
}

func TestSelfLoop(t *testing.T) {
	g := New()
	g.AddNodes("alice")
	_, err := g.AddEdge("alice", "alice", at(1), "note to self")
	require.NoError(t, err)

	require.True(t, g.HasEdge("alice", "alice"))
	require.Equal(t, []NodeID{"alice"}, g.Outgoing("alice"))
	require.Equal(t, []NodeID{"alice"}, g.Incoming("alice"))
	require.NoError(t, g.Validate())
}

func TestHypergraphSatisfiesAdjacencyStore(t *testing.T) {
	var store AdjacencyStore = buildThread(t)
	require.Len(t, store.Nodes(), 4)
}

package triad_motif

import "github.com/jtomasevic/hypermotif/pkg/hypergraph"

// DyadicInteraction pairs one edge C1 -> C2 with one edge C2 -> C1.
type DyadicInteraction struct {
	C1      NodeID
	C2      NodeID
	Forward hypergraph.Edge
	Reply   hypergraph.Edge
}

func (c *census) dyadCounts() map[DyadType]int {
	counts := map[DyadType]int{
		DyadNoEdge:   0,
		DyadOneEdge:  0,
		DyadTwoEdges: 0,
	}
	pairs(c.nodes, func(a, b NodeID) {
		ab, ba := c.has(a, b), c.has(b, a)
		switch {
		case ab && ba:
			counts[DyadTwoEdges]++
		case ab || ba:
			counts[DyadOneEdge]++
		default:
			counts[DyadNoEdge]++
		}
	})
	return counts
}

// dyadicInteractions lists the cross product of edges for every reciprocal
// ordered pair. A pair {A, B} shows up twice: once as (A, B), once as (B, A).
func (c *census) dyadicInteractions() []DyadicInteraction {
	var result []DyadicInteraction
	for _, n1 := range c.nodes {
		for _, n2 := range c.hoods[n1].both {
			forward := c.store.EdgesBetween(n1, n2)
			replies := c.store.EdgesBetween(n2, n1)
			for _, f := range forward {
				for _, r := range replies {
					result = append(result, DyadicInteraction{C1: n1, C2: n2, Forward: f, Reply: r})
				}
			}
		}
	}
	return result
}

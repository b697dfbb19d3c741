package triad_motif

// ==============================
// Per-class triad enumerations
// ==============================
//
// Each function emits every triple of its class exactly once. Classes with a
// structurally unique node are anchored on that node's neighborhood; the fully
// symmetric classes (NO_EDGE, DIRECTED_CYCLE, TRIRECIPROCAL) walk all
// 3-combinations of nodes, which is O(n³).

type classifier func(c *census) []TriadMotif

var classifiers = map[MotifType]classifier{
	NoEdge:            (*census).noEdgeTriads,
	SingleEdge:        (*census).singleEdgeTriads,
	Dyadic:            (*census).dyadicTriads,
	Incoming:          (*census).incomingTriads,
	Outgoing:          (*census).outgoingTriads,
	Unidirectional:    (*census).unidirectionalTriads,
	Incoming2To3:      (*census).incoming2To3Triads,
	DirectedCycle:     (*census).directedCycleTriads,
	Incoming1To3:      (*census).incoming1To3Triads,
	Outgoing3To1:      (*census).outgoing3To1Triads,
	IncomingRecip:     (*census).incomingReciprocalTriads,
	OutgoingRecip:     (*census).outgoingReciprocalTriads,
	DirectedCycle1To3: (*census).directedCycle1To3Triads,
	Direciprocal:      (*census).direciprocalTriads,
	Direciprocal2To3:  (*census).direciprocal2To3Triads,
	Trireciprocal:     (*census).trireciprocalTriads,
}

func (c *census) noEdgeTriads() []TriadMotif {
	var result []TriadMotif
	triples(c.nodes, func(a, b, d NodeID) {
		if c.adjacent(a, b) || c.adjacent(b, d) || c.adjacent(a, d) {
			return
		}
		result = append(result, c.motif(NoEdge, a, b, d))
	})
	return result
}

// C1 -> C2; C3 touches neither.
func (c *census) singleEdgeTriads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		h := c.hoods[n1]
		for _, n2 := range h.outOnly {
			for _, n3 := range h.nonAdjacent {
				if c.adjacent(n2, n3) {
					continue
				}
				result = append(result, c.motif(SingleEdge, n1, n2, n3))
			}
		}
	}
	return result
}

// C1 <-> C2 with C3 isolated. Anchored on C3 so the pair is counted once.
func (c *census) dyadicTriads() []TriadMotif {
	var result []TriadMotif
	for _, n3 := range c.nodes {
		pairs(c.hoods[n3].nonAdjacent, func(n1, n2 NodeID) {
			if c.mutual(n1, n2) {
				result = append(result, c.motif(Dyadic, n1, n2, n3))
			}
		})
	}
	return result
}

// C2 -> C1, C3 -> C1, nothing between C2 and C3.
func (c *census) incomingTriads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		pairs(c.hoods[n1].inOnly, func(n2, n3 NodeID) {
			if !c.adjacent(n2, n3) {
				result = append(result, c.motif(Incoming, n1, n2, n3))
			}
		})
	}
	return result
}

// C1 -> C2, C1 -> C3, nothing between C2 and C3.
func (c *census) outgoingTriads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		pairs(c.hoods[n1].outOnly, func(n2, n3 NodeID) {
			if !c.adjacent(n2, n3) {
				result = append(result, c.motif(Outgoing, n1, n2, n3))
			}
		})
	}
	return result
}

// C1 -> C2 -> C3, anchored on the middle node.
func (c *census) unidirectionalTriads() []TriadMotif {
	var result []TriadMotif
	for _, n2 := range c.nodes {
		h := c.hoods[n2]
		for _, n1 := range h.inOnly {
			for _, n3 := range h.outOnly {
				if c.adjacent(n1, n3) {
					continue
				}
				result = append(result, c.motif(Unidirectional, n1, n2, n3))
			}
		}
	}
	return result
}

func (c *census) incoming2To3Triads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		orderedPairs(c.hoods[n1].inOnly, func(n2, n3 NodeID) {
			if c.has(n2, n3) && !c.has(n3, n2) {
				result = append(result, c.motif(Incoming2To3, n1, n2, n3))
			}
		})
	}
	return result
}

// Both orientations of a combination are checked; roles always read C1 -> C2 -> C3 -> C1.
func (c *census) directedCycleTriads() []TriadMotif {
	var result []TriadMotif
	triples(c.nodes, func(a, b, d NodeID) {
		switch {
		case c.oneWayCycle(a, b, d):
			result = append(result, c.motif(DirectedCycle, a, b, d))
		case c.oneWayCycle(a, d, b):
			result = append(result, c.motif(DirectedCycle, a, d, b))
		}
	})
	return result
}

func (c *census) oneWayCycle(a, b, d NodeID) bool {
	return c.has(a, b) && c.has(b, d) && c.has(d, a) &&
		!c.has(b, a) && !c.has(d, b) && !c.has(a, d)
}

// C2 -> C1 one way, C1 <-> C3, nothing between C2 and C3.
func (c *census) incoming1To3Triads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		h := c.hoods[n1]
		for _, n2 := range h.inOnly {
			for _, n3 := range h.both {
				if c.adjacent(n2, n3) {
					continue
				}
				result = append(result, c.motif(Incoming1To3, n1, n2, n3))
			}
		}
	}
	return result
}

// C1 -> C2 one way, C1 <-> C3, nothing between C2 and C3.
func (c *census) outgoing3To1Triads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		h := c.hoods[n1]
		for _, n2 := range h.outOnly {
			for _, n3 := range h.both {
				if c.adjacent(n2, n3) {
					continue
				}
				result = append(result, c.motif(Outgoing3To1, n1, n2, n3))
			}
		}
	}
	return result
}

func (c *census) incomingReciprocalTriads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		pairs(c.hoods[n1].inOnly, func(n2, n3 NodeID) {
			if c.mutual(n2, n3) {
				result = append(result, c.motif(IncomingRecip, n1, n2, n3))
			}
		})
	}
	return result
}

func (c *census) outgoingReciprocalTriads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		pairs(c.hoods[n1].outOnly, func(n2, n3 NodeID) {
			if c.mutual(n2, n3) {
				result = append(result, c.motif(OutgoingRecip, n1, n2, n3))
			}
		})
	}
	return result
}

// C1 -> C2 -> C3 with C1 <-> C3.
func (c *census) directedCycle1To3Triads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		h := c.hoods[n1]
		for _, n2 := range h.outOnly {
			for _, n3 := range h.both {
				if c.has(n2, n3) && !c.has(n3, n2) {
					result = append(result, c.motif(DirectedCycle1To3, n1, n2, n3))
				}
			}
		}
	}
	return result
}

func (c *census) direciprocalTriads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		pairs(c.hoods[n1].both, func(n2, n3 NodeID) {
			if !c.adjacent(n2, n3) {
				result = append(result, c.motif(Direciprocal, n1, n2, n3))
			}
		})
	}
	return result
}

func (c *census) direciprocal2To3Triads() []TriadMotif {
	var result []TriadMotif
	for _, n1 := range c.nodes {
		orderedPairs(c.hoods[n1].both, func(n2, n3 NodeID) {
			if c.has(n2, n3) && !c.has(n3, n2) {
				result = append(result, c.motif(Direciprocal2To3, n1, n2, n3))
			}
		})
	}
	return result
}

func (c *census) trireciprocalTriads() []TriadMotif {
	var result []TriadMotif
	triples(c.nodes, func(a, b, d NodeID) {
		if c.mutual(a, b) && c.mutual(b, d) && c.mutual(a, d) {
			result = append(result, c.motif(Trireciprocal, a, b, d))
		}
	})
	return result
}

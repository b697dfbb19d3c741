package triad_motif

// MotifType names one of the 16 directed triad topologies.
// The string values are stable identifiers used by downstream feature names.
type MotifType string

const (
	NoEdge            MotifType = "NO_EDGE"
	SingleEdge        MotifType = "SINGLE_EDGE"
	Dyadic            MotifType = "DYADIC"
	Incoming          MotifType = "INCOMING"
	Outgoing          MotifType = "OUTGOING"
	Unidirectional    MotifType = "UNIDIRECTIONAL"
	Incoming2To3      MotifType = "INCOMING_2TO3"
	DirectedCycle     MotifType = "DIRECTED_CYCLE"
	Incoming1To3      MotifType = "INCOMING_1TO3"
	Outgoing3To1      MotifType = "OUTGOING_3TO1"
	IncomingRecip     MotifType = "INCOMING_RECIPROCAL"
	OutgoingRecip     MotifType = "OUTGOING_RECIPROCAL"
	DirectedCycle1To3 MotifType = "DIRECTED_CYCLE_1TO3"
	Direciprocal      MotifType = "DIRECIPROCAL"
	Direciprocal2To3  MotifType = "DIRECIPROCAL_2TO3"
	Trireciprocal     MotifType = "TRIRECIPROCAL"
)

var allMotifTypes = []MotifType{
	NoEdge,
	SingleEdge,
	Incoming,
	Outgoing,
	Dyadic,
	Unidirectional,
	Incoming2To3,
	Incoming1To3,
	DirectedCycle,
	Outgoing3To1,
	IncomingRecip,
	OutgoingRecip,
	DirectedCycle1To3,
	Direciprocal,
	Direciprocal2To3,
	Trireciprocal,
}

// AllMotifTypes lists the 16 motif types in report order.
func AllMotifTypes() []MotifType {
	return append([]MotifType(nil), allMotifTypes...)
}

func (t MotifType) Valid() bool {
	_, ok := patterns[t]
	return ok
}

// DyadType classifies an unordered pair of nodes.
type DyadType string

const (
	DyadNoEdge   DyadType = "NO_EDGE"
	DyadOneEdge  DyadType = "ONE_EDGE"
	DyadTwoEdges DyadType = "TWO_EDGES"
)

func AllDyadTypes() []DyadType {
	return []DyadType{DyadNoEdge, DyadOneEdge, DyadTwoEdges}
}

package hypergraph

import "errors"

var (
	// ErrUnknownNode is returned when an edge references a node that was never declared.
	ErrUnknownNode = errors.New("unknown node")
	// ErrIndexMismatch means the forward and reverse adjacency views disagree.
	ErrIndexMismatch = errors.New("adjacency index mismatch")
	// ErrInvalidTimestamp is returned for NaN, infinite or out of range epoch seconds.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

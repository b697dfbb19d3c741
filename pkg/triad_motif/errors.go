package triad_motif

import "errors"

var (
	// ErrTooManyNodes is returned by Extract when the node count exceeds the
	// configured limit for the O(n³) classes.
	ErrTooManyNodes     = errors.New("too many nodes for triad census")
	ErrUnknownMotifType = errors.New("unknown motif type")
	// ErrRepeatedNode is returned by Classify when the triple names a node twice.
	ErrRepeatedNode = errors.New("triple repeats a node")
)

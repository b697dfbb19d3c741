package hypergraph

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type NodeID = string
type EdgeID = uuid.UUID

// Edge is one directed reply event From -> To.
// Once added to a Hypergraph, an Edge MUST NOT be modified.
type Edge struct {
	ID        EdgeID
	From      NodeID
	To        NodeID
	Timestamp time.Time
	// Seq is the store-wide insertion order of the edge.
	Seq  uint64
	Text string
}

// EpochSeconds is the edge timestamp as fractional Unix seconds.
func (e Edge) EpochSeconds() float64 {
	return float64(e.Timestamp.Unix()) + float64(e.Timestamp.Nanosecond())/1e9
}

// float64 holds every integer up to 2^53 exactly.
const maxEpochSeconds = 1 << 53

// EpochTime converts fractional Unix seconds to a UTC time, rounded to the
// nanosecond.
func EpochTime(sec float64) (time.Time, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || math.Abs(sec) > maxEpochSeconds {
		return time.Time{}, fmt.Errorf("%v: %w", sec, ErrInvalidTimestamp)
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC(), nil
}

package hypergraph

import "slices"

// SortByTimestamp returns a copy of edges ordered by ascending timestamp.
// Equal timestamps keep their input order; the input slice is not touched.
func SortByTimestamp(edges []Edge) []Edge {
	sorted := slices.Clone(edges)
	if sorted == nil {
		sorted = []Edge{}
	}
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

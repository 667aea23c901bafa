package domain

import "slices"

// Represents one evaluated visiting order.
// Index is the position of the permutation in the enumeration sequence and
// Stops is an ordering of the stop indices 1..N (the origin is implicit).
type Candidate struct {
	Index    int
	Stops    []int
	Distance float64
}

// Clone returns a candidate whose Stops slice is not shared with c.
func (c Candidate) Clone() Candidate {
	c.Stops = slices.Clone(c.Stops)
	return c
}

// Reconstructed answer coordinates for a candidate.
type Solution struct {
	Lat string
	Lon string
}

// Counters collected during a single search pass.
type SearchStats struct {
	Evaluated          int
	RejectedByPosition int
	RejectedByDistance int
	Survived           int
}

// Represents the outcome of an exhaustive tour search.
// Survivors are ranked shortest first, so Best equals Survivors[0].
// Distances holds one tour length per permutation, in enumeration order, and is
// only populated when the caller asked for it.
type SearchResult struct {
	Total     int
	Survivors []Candidate
	Best      Candidate
	Distances []float64
	Stats     SearchStats
}

// A ranked candidate paired with its reconstructed answer.
type RankedSolution struct {
	Candidate
	Solution Solution
}

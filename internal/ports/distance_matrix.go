package ports

// Index-addressed distances over a fixed waypoint set.
// Index 0 is the origin; Size includes it.
type DistanceMatrix interface {
	Size() int
	// Return the distance between waypoints i and j. Both must be in [0, Size).
	Between(i, j int) float64
}

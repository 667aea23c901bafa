package domain

// RawWaypoint is a dataset row exactly as published: a label digit and two
// DDM coordinate strings.
type RawWaypoint struct {
	Label int
	Lat   string
	Lon   string
}

// Represents a single point of interest on the tour.
// Index 0 of a waypoint slice is the origin; indices 1..N are the stops.
// The label is not unique: it is the digit contributed to the solution string.
type Waypoint struct {
	Label int
	Coordinates
}

// Points returns the coordinates of each waypoint in order.
func Points(wps []Waypoint) []Coordinates {
	out := make([]Coordinates, len(wps))
	for i, w := range wps {
		out[i] = w.Coordinates
	}
	return out
}

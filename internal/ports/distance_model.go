package ports

import "waypoint-tour-solver/internal/domain"

// Contract for measuring the distance between two decimal-degree points.
// Implementations must be symmetric and non-negative.
type DistanceModel interface {
	Distance(a, b domain.Coordinates) float64
}

package ports

import (
	"context"
	"waypoint-tour-solver/internal/domain"
)

// Port: a boundary for retrieving the raw waypoint table.
type WaypointRepository interface {
	// Return the origin followed by every tour stop, in dataset order.
	ListWaypoints(ctx context.Context) ([]domain.RawWaypoint, error)
}

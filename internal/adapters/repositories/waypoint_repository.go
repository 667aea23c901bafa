package repositories

import (
	"strings"
	"waypoint-tour-solver/internal/ports"
)

// NewWaypointRepository picks the YAML file at path, or the embedded GC7XNRW
// table when path is empty.
func NewWaypointRepository(path string) ports.WaypointRepository {
	if strings.TrimSpace(path) == "" {
		return NewStaticWaypointRepository(GC7XNRW())
	}
	return NewYAMLWaypointRepository(path)
}

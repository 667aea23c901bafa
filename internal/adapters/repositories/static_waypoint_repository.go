package repositories

import (
	"context"
	"errors"
	"slices"
	"waypoint-tour-solver/internal/domain"
)

// GC7XNRW returns the waypoint table of geocache GC7XNRW, copied from the
// cache page. Row 0 is the origin.
func GC7XNRW() []domain.RawWaypoint {
	return []domain.RawWaypoint{
		{Label: 0, Lat: "N 43° 03.673", Lon: "W 108° 27.504"},
		{Label: 4, Lat: "N 43° 03.105", Lon: "W 108° 28.308"},
		{Label: 3, Lat: "N 43° 02.023", Lon: "W 108° 25.561"},
		{Label: 4, Lat: "N 43° 00.962", Lon: "W 108° 21.202"},
		{Label: 3, Lat: "N 43° 01.097", Lon: "W 108° 23.805"},
		{Label: 1, Lat: "N 43° 00.917", Lon: "W 108° 23.974"},
		{Label: 4, Lat: "N 42° 59.476", Lon: "W 108° 22.195"},
		{Label: 6, Lat: "N 43° 01.379", Lon: "W 108° 23.534"},
		{Label: 7, Lat: "N 43° 01.496", Lon: "W 108° 23.651"},
		{Label: 0, Lat: "N 43° 01.519", Lon: "W 108° 23.226"},
		{Label: 6, Lat: "N 43° 01.975", Lon: "W 108° 23.779"},
	}
}

// In-memory implementation of the WaypointRepository port.
type StaticWaypointRepository struct {
	rows []domain.RawWaypoint
}

func NewStaticWaypointRepository(rows []domain.RawWaypoint) *StaticWaypointRepository {
	return &StaticWaypointRepository{rows: slices.Clone(rows)}
}

// Return a copy of the stored rows.
func (s *StaticWaypointRepository) ListWaypoints(ctx context.Context) ([]domain.RawWaypoint, error) {
	if len(s.rows) == 0 {
		return nil, errors.New("list waypoints: static dataset is empty")
	}
	return slices.Clone(s.rows), nil
}

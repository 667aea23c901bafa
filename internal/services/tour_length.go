package services

import (
	"errors"
	"fmt"
	"waypoint-tour-solver/internal/ports"
)

var (
	ErrEmptyTour      = errors.New("tour has no stops")
	ErrStopOutOfRange = errors.New("stop index out of range")
)

// TourLength returns the closed tour length origin -> stops... -> origin.
// Legs are summed in visiting order so results are reproducible bit for bit.
func TourLength(stops []int, m ports.DistanceMatrix) (float64, error) {
	if len(stops) == 0 {
		return 0, ErrEmptyTour
	}

	size := m.Size()
	for _, s := range stops {
		if s < 1 || s >= size {
			return 0, fmt.Errorf("tour length: %w: %d not in [1, %d]", ErrStopOutOfRange, s, size-1)
		}
	}

	total := m.Between(0, stops[0])
	for i := 0; i+1 < len(stops); i++ {
		total += m.Between(stops[i], stops[i+1])
	}
	total += m.Between(stops[len(stops)-1], 0)

	return total, nil
}

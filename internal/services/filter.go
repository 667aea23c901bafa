package services

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"waypoint-tour-solver/internal/domain"
)

// Minutes are written with two digits, so a minutes value can't reach 60. The
// 1st and 6th stops supply the tens digit of the latitude and longitude
// minutes, and stops 7, 8 and 10 carry labels of 6 or more.
var (
	DefaultForbiddenPositions = []int{1, 6}
	DefaultForbiddenStops     = []int{10, 7, 8}
)

// DefaultMaxDistance is the cutoff below which the shortest tours cluster in
// the length histogram of the published dataset.
const DefaultMaxDistance = 0.3

// MinuteTensLabel is the smallest label that can't lead a minutes value.
const MinuteTensLabel = 6

var ErrInvalidConstraints = errors.New("invalid constraints")

// Why a candidate was discarded.
type Rejection int

const (
	RejectNone Rejection = iota
	RejectPosition
	RejectDistance
)

func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectPosition:
		return "position"
	case RejectDistance:
		return "distance"
	default:
		return fmt.Sprintf("rejection(%d)", int(r))
	}
}

// Constraints decide which evaluated tours survive.
type Constraints struct {
	// 1-indexed positions within the stop ordering.
	ForbiddenPositions []int
	ForbiddenStops     []int
	// Tours with a length >= MaxDistance are rejected.
	MaxDistance float64
}

func DefaultConstraints() Constraints {
	return Constraints{
		ForbiddenPositions: slices.Clone(DefaultForbiddenPositions),
		ForbiddenStops:     slices.Clone(DefaultForbiddenStops),
		MaxDistance:        DefaultMaxDistance,
	}
}

func (c Constraints) Validate() error {
	for _, p := range c.ForbiddenPositions {
		if p < 1 {
			return fmt.Errorf("%w: position %d must be >= 1", ErrInvalidConstraints, p)
		}
	}
	for _, s := range c.ForbiddenStops {
		if s < 1 {
			return fmt.Errorf("%w: stop %d must be >= 1", ErrInvalidConstraints, s)
		}
	}
	if math.IsNaN(c.MaxDistance) || c.MaxDistance <= 0 {
		return fmt.Errorf("%w: max distance %v must be positive", ErrInvalidConstraints, c.MaxDistance)
	}
	return nil
}

// Check classifies an evaluated tour. The position rule is applied first;
// positions beyond the end of the tour are ignored.
func (c Constraints) Check(stops []int, dist float64) Rejection {
	for _, p := range c.ForbiddenPositions {
		if p > len(stops) {
			continue
		}
		if slices.Contains(c.ForbiddenStops, stops[p-1]) {
			return RejectPosition
		}
	}

	if dist >= c.MaxDistance {
		return RejectDistance
	}
	return RejectNone
}

// MinuteTensStops returns the stops whose label is too large to lead a
// minutes value. wps[0] is the origin and is never returned.
func MinuteTensStops(wps []domain.Waypoint) []int {
	var out []int
	for i := 1; i < len(wps); i++ {
		if wps[i].Label >= MinuteTensLabel {
			out = append(out, i)
		}
	}
	return out
}

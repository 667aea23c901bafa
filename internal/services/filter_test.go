package services

import (
	"math"
	"testing"
	"waypoint-tour-solver/internal/adapters/repositories"
	"waypoint-tour-solver/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintsCheck(t *testing.T) {
	c := DefaultConstraints()

	tests := []struct {
		name  string
		stops []int
		dist  float64
		want  Rejection
	}{
		{name: "clear", stops: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, dist: 0.29, want: RejectNone},
		{name: "forbidden first 10", stops: []int{10, 2, 3, 4, 5, 6, 7, 8, 9, 1}, dist: 0.1, want: RejectPosition},
		{name: "forbidden first 7", stops: []int{7, 2, 3, 4, 5, 6, 1, 8, 9, 10}, dist: 0.1, want: RejectPosition},
		{name: "forbidden sixth 8", stops: []int{1, 2, 3, 4, 5, 8, 7, 6, 9, 10}, dist: 0.1, want: RejectPosition},
		{name: "forbidden sixth 10", stops: []int{1, 2, 3, 4, 5, 10, 7, 8, 9, 6}, dist: 0.1, want: RejectPosition},
		{name: "forbidden elsewhere only", stops: []int{1, 10, 7, 8, 2, 3, 4, 5, 6, 9}, dist: 0.1, want: RejectNone},
		{name: "at threshold", stops: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, dist: 0.3, want: RejectDistance},
		{name: "above threshold", stops: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, dist: 0.31, want: RejectDistance},
		{name: "position wins over distance", stops: []int{8, 2, 3, 4, 5, 6, 7, 1, 9, 10}, dist: 5, want: RejectPosition},
		{name: "short tour ignores sixth", stops: []int{1, 2, 3}, dist: 0.1, want: RejectNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Check(tt.stops, tt.dist))
		})
	}
}

func TestConstraintsValidate(t *testing.T) {
	require.NoError(t, DefaultConstraints().Validate())

	bad := []Constraints{
		{ForbiddenPositions: []int{0}, MaxDistance: 1},
		{ForbiddenStops: []int{-2}, MaxDistance: 1},
		{MaxDistance: 0},
		{MaxDistance: math.NaN()},
	}
	for _, c := range bad {
		assert.ErrorIs(t, c.Validate(), ErrInvalidConstraints)
	}
}

func TestDefaultConstraints_Independent(t *testing.T) {
	c := DefaultConstraints()
	c.ForbiddenStops[0] = 1

	assert.Equal(t, []int{10, 7, 8}, DefaultConstraints().ForbiddenStops)
}

func TestMinuteTensStops_MatchesDefaults(t *testing.T) {
	wps, err := domain.ParseWaypoints(repositories.GC7XNRW())
	require.NoError(t, err)

	assert.ElementsMatch(t, DefaultForbiddenStops, MinuteTensStops(wps))
}

func TestRejectionString(t *testing.T) {
	assert.Equal(t, "none", RejectNone.String())
	assert.Equal(t, "position", RejectPosition.String())
	assert.Equal(t, "distance", RejectDistance.String())
	assert.Equal(t, "rejection(9)", Rejection(9).String())
}

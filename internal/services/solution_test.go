package services

import (
	"testing"
	"waypoint-tour-solver/internal/adapters/repositories"
	"waypoint-tour-solver/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gc7xnrw(t *testing.T) []domain.Waypoint {
	t.Helper()

	wps, err := domain.ParseWaypoints(repositories.GC7XNRW())
	require.NoError(t, err)
	return wps
}

func TestBuildSolution(t *testing.T) {
	wps := gc7xnrw(t)

	tests := []struct {
		stops []int
		lat   string
		lon   string
	}{
		{stops: []int{1, 2, 4, 5, 6, 3, 9, 7, 8, 10}, lat: "N 42° 43.314", lon: "W 073° 40.676"},
		{stops: []int{1, 2, 5, 4, 6, 3, 9, 7, 8, 10}, lat: "N 42° 43.134", lon: "W 073° 40.676"},
		{stops: []int{1, 10, 8, 7, 9, 3, 6, 4, 5, 2}, lat: "N 42° 46.760", lon: "W 073° 44.313"},
	}

	for _, tt := range tests {
		sol, err := BuildSolution(wps, tt.stops, GC7XNRWTemplate)
		require.NoError(t, err)
		assert.Equal(t, domain.Solution{Lat: tt.lat, Lon: tt.lon}, sol)
	}
}

func TestBuildSolution_Errors(t *testing.T) {
	wps := gc7xnrw(t)

	_, err := BuildSolution(wps, []int{1, 2, 3}, GC7XNRWTemplate)
	assert.ErrorIs(t, err, ErrShortSolution)

	_, err = BuildSolution(wps, []int{1, 2, 3, 4, 5, 6, 7, 8}, GC7XNRWTemplate)
	assert.ErrorIs(t, err, ErrShortSolution)

	_, err = BuildSolution(wps, []int{1, 2, 3, 4, 11}, GC7XNRWTemplate)
	assert.ErrorIs(t, err, ErrStopOutOfRange)

	wide := append([]domain.Waypoint{}, wps...)
	wide[3].Label = 12
	_, err = BuildSolution(wide, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, GC7XNRWTemplate)
	assert.ErrorIs(t, err, ErrLabelDigit)
}

func TestBuildSolutions(t *testing.T) {
	wps := gc7xnrw(t)
	ranked := []domain.Candidate{
		{Index: 5892, Stops: []int{1, 2, 4, 5, 6, 3, 9, 7, 8, 10}, Distance: 0.29},
		{Index: 10932, Stops: []int{1, 2, 5, 4, 6, 3, 9, 7, 8, 10}, Distance: 0.3},
	}

	rows, err := BuildSolutions(wps, ranked, GC7XNRWTemplate)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 5892, rows[0].Index)
	assert.Equal(t, "N 42° 43.314", rows[0].Solution.Lat)
	assert.Equal(t, "N 42° 43.134", rows[1].Solution.Lat)

	_, err = BuildSolutions(wps, []domain.Candidate{{Index: 1, Stops: []int{1}}}, GC7XNRWTemplate)
	assert.ErrorIs(t, err, ErrShortSolution)
}

package metrics

import (
	"testing"
	"time"
	"waypoint-tour-solver/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefault_Idempotent(t *testing.T) {
	assert.NotPanics(t, RegisterDefault)
	assert.NotPanics(t, RegisterDefault)

	families, err := Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["tour_search_progress_percent"])
	assert.True(t, names["go_goroutines"])
}

func TestRecorder(t *testing.T) {
	var rec Recorder

	evaluated := testutil.ToFloat64(PermutationsEvaluated)
	position := testutil.ToFloat64(CandidatesRejected.WithLabelValues("position"))
	dist := testutil.ToFloat64(CandidatesRejected.WithLabelValues("distance"))
	survived := testutil.ToFloat64(CandidatesSurvived)

	rec.Progress(3, 6, 50)
	assert.Equal(t, 50.0, testutil.ToFloat64(SearchProgress))

	rec.RecordSearch(domain.SearchStats{
		Evaluated:          6,
		RejectedByPosition: 1,
		RejectedByDistance: 3,
		Survived:           2,
	}, 150*time.Millisecond)

	assert.Equal(t, evaluated+6, testutil.ToFloat64(PermutationsEvaluated))
	assert.Equal(t, position+1, testutil.ToFloat64(CandidatesRejected.WithLabelValues("position")))
	assert.Equal(t, dist+3, testutil.ToFloat64(CandidatesRejected.WithLabelValues("distance")))
	assert.Equal(t, survived+2, testutil.ToFloat64(CandidatesSurvived))
	assert.Equal(t, 100.0, testutil.ToFloat64(SearchProgress))
}

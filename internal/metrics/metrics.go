package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"waypoint-tour-solver/internal/domain"
)

var (
	// Registry is the dedicated Prometheus registry for the solver
	Registry = prometheus.NewRegistry()
	// PermutationsEvaluated counts tours whose length was computed
	PermutationsEvaluated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tour_permutations_evaluated_total", Help: "Permutations evaluated."},
	)
	// CandidatesRejected counts filtered tours by reason
	CandidatesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "tour_candidates_rejected_total", Help: "Candidates rejected by reason."},
		[]string{"reason"},
	)
	// CandidatesSurvived counts tours that passed every filter
	CandidatesSurvived = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tour_candidates_survived_total", Help: "Candidates that survived filtering."},
	)
	// SearchProgress is the percentage of the current search already evaluated
	SearchProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "tour_search_progress_percent", Help: "Progress of the running search in percent."},
	)
	// SearchDuration records full search durations in seconds
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "tour_search_duration_seconds", Help: "Search duration in seconds.", Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}},
	)
)

var regOnce sync.Once

// RegisterDefault registers collectors to the solver registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(PermutationsEvaluated)
		Registry.MustRegister(CandidatesRejected)
		Registry.MustRegister(CandidatesSurvived)
		Registry.MustRegister(SearchProgress)
		Registry.MustRegister(SearchDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Recorder feeds search progress and outcomes into the collectors.
type Recorder struct{}

func (Recorder) Progress(done, total int, percent float64) {
	SearchProgress.Set(percent)
}

// RecordSearch adds the counters of a finished search.
func (Recorder) RecordSearch(stats domain.SearchStats, dur time.Duration) {
	PermutationsEvaluated.Add(float64(stats.Evaluated))
	CandidatesRejected.WithLabelValues("position").Add(float64(stats.RejectedByPosition))
	CandidatesRejected.WithLabelValues("distance").Add(float64(stats.RejectedByDistance))
	CandidatesSurvived.Add(float64(stats.Survived))
	SearchProgress.Set(100)
	SearchDuration.Observe(dur.Seconds())
}

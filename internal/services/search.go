package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"waypoint-tour-solver/internal/domain"
	"waypoint-tour-solver/internal/platform/obs"
	"waypoint-tour-solver/internal/ports"
)

// DefaultProgressEvery is how many permutations pass between progress reports.
const DefaultProgressEvery = 100_000

// MaxKeptDistances bounds the tour lengths a search will hold for the
// histogram: 10 stops or fewer.
const MaxKeptDistances = 3_628_800

var ErrTooManyDistances = errors.New("too many tour lengths to keep")

// Enumerator yields indexed orderings of {1..n}.
type Enumerator func(n int) iter.Seq2[int, []int]

type SearchRequest struct {
	Constraints   Constraints
	ProgressEvery int
	// Keep one tour length per permutation for the histogram.
	KeepDistances bool
	// Defaults to Permutations.
	Enumerate Enumerator
}

// Search evaluates every ordering of the stops in m, filters the candidates
// and ranks the survivors.
//
// The pass is sequential. The context is only consulted at progress ticks.
// When the enumeration does not produce exactly n! orderings the result is
// discarded and a *CountMismatchError is returned.
func Search(
	ctx context.Context,
	req SearchRequest,
	m ports.DistanceMatrix,
	observers ...ports.ProgressObserver,
) (res *domain.SearchResult, err error) {
	defer obs.Time(ctx, "search")(&err)

	if m == nil {
		return nil, errors.New("search: distance matrix is nil")
	}

	n := m.Size() - 1
	if n < 1 {
		return nil, fmt.Errorf("search: %w", ErrEmptyTour)
	}

	if err := req.Constraints.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	total, err := Factorial(n)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	every := req.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	enumerate := req.Enumerate
	if enumerate == nil {
		enumerate = Permutations
	}

	var distances []float64
	if req.KeepDistances {
		if total > MaxKeptDistances {
			return nil, fmt.Errorf("search: %w: %d permutations, limit %d", ErrTooManyDistances, total, MaxKeptDistances)
		}
		distances = make([]float64, 0, total)
	}

	var (
		stats     domain.SearchStats
		survivors []domain.Candidate
		count     int
	)

	for i, perm := range enumerate(n) {
		if count%every == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("search: stopped after %d permutations: %w", count, err)
			}

			pct := 100 * float64(count+1) / float64(total)
			for _, o := range observers {
				o.Progress(count+1, total, pct)
			}
		}
		count++

		d, err := TourLength(perm, m)
		if err != nil {
			return nil, fmt.Errorf("search: permutation %d: %w", i, err)
		}

		if req.KeepDistances {
			distances = append(distances, d)
		}

		switch req.Constraints.Check(perm, d) {
		case RejectPosition:
			stats.RejectedByPosition++
		case RejectDistance:
			stats.RejectedByDistance++
		default:
			survivors = append(survivors, domain.Candidate{
				Index:    i,
				Stops:    slices.Clone(perm),
				Distance: d,
			})
		}
	}

	stats.Evaluated = count
	stats.Survived = len(survivors)

	if count != total {
		return nil, &CountMismatchError{Got: count, Want: total}
	}

	ranked, err := Rank(survivors)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return &domain.SearchResult{
		Total:     total,
		Survivors: ranked,
		Best:      ranked[0],
		Distances: distances,
		Stats:     stats,
	}, nil
}

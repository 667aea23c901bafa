package services

import (
	"cmp"
	"errors"
	"slices"
	"waypoint-tour-solver/internal/domain"
)

// ErrNoSurvivors is returned when every candidate was filtered out.
var ErrNoSurvivors = errors.New("no candidate survived filtering")

// Rank sorts candidates in place, shortest first, breaking ties by sequence
// index so the order is deterministic.
func Rank(cands []domain.Candidate) ([]domain.Candidate, error) {
	if len(cands) == 0 {
		return nil, ErrNoSurvivors
	}

	slices.SortFunc(cands, func(a, b domain.Candidate) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	return cands, nil
}

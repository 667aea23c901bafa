package cache

import (
	"errors"
	"waypoint-tour-solver/internal/domain"
	"waypoint-tour-solver/internal/ports"
)

// In-memory cache of every pairwise distance over a fixed point set.
// The matrix is filled once so tour evaluation does lookups only.
type DistanceMatrix struct {
	n int
	d []float64
}

func NewDistanceMatrix(points []domain.Coordinates, model ports.DistanceModel) (*DistanceMatrix, error) {
	if model == nil {
		return nil, errors.New("distance matrix: model is nil")
	}
	if len(points) == 0 {
		return nil, errors.New("distance matrix: no points")
	}

	n := len(points)
	d := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d[i*n+j] = model.Distance(points[i], points[j])
		}
	}

	return &DistanceMatrix{n: n, d: d}, nil
}

func (m *DistanceMatrix) Size() int { return m.n }

func (m *DistanceMatrix) Between(i, j int) float64 { return m.d[i*m.n+j] }

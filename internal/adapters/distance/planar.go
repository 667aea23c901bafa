package distance

import (
	"fmt"
	"math"
	"strings"
	"waypoint-tour-solver/internal/domain"
	"waypoint-tour-solver/internal/ports"
)

const (
	ModelPlanar          = "planar"
	ModelEquirectangular = "equirectangular"
)

// Planar treats latitude and longitude deltas as Cartesian coordinates.
// The error grows with the span of the point set; it is only meant for
// clusters a few arc-minutes wide.
type Planar struct{}

func (Planar) Distance(a, b domain.Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Equirectangular scales longitude deltas by cos(reference latitude) before
// taking the planar norm. Still a flat projection, not a geodesic.
type Equirectangular struct {
	RefLat float64
}

func NewEquirectangular(refLat float64) Equirectangular {
	return Equirectangular{RefLat: refLat}
}

func (e Equirectangular) Distance(a, b domain.Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLon := (a.Lon - b.Lon) * math.Cos(e.RefLat*(math.Pi/180))
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// NewModel returns the distance model registered under name. The origin is the
// reference latitude for models that need one.
func NewModel(name string, origin domain.Coordinates) (ports.DistanceModel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ModelPlanar:
		return Planar{}, nil
	case ModelEquirectangular:
		return NewEquirectangular(origin.Lat), nil
	default:
		return nil, fmt.Errorf("distance model: unknown model %q", name)
	}
}

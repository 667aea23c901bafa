package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Immutable geographic coordinates in signed decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinates lie on the globe.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %f must be between -90 and 90", ErrInvalidCoordinates, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %f must be between -180 and 180", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}

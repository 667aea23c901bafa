package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate is wrapped by every ParseError.
var ErrMalformedCoordinate = errors.New("malformed DDM coordinate")

const degreeSymbol = "°"

// ParseError describes a DDM string that could not be converted.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse coordinate %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse coordinate %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedCoordinate, e.Err}
	}
	return []error{ErrMalformedCoordinate}
}

// ParseDDM converts a degrees-decimal-minutes string such as "N 43° 03.673"
// into unsigned decimal degrees. The hemisphere letter is validated but not
// applied; ParseWaypoints fixes the sign convention for the dataset.
func ParseDDM(s string) (float64, error) {
	_, v, err := parseDDM(s)
	return v, err
}

// parseDDM also returns the hemisphere letter.
func parseDDM(s string) (string, float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return "", 0, &ParseError{Input: s, Reason: fmt.Sprintf("expected 3 tokens, got %d", len(fields))}
	}

	hem := fields[0]
	switch hem {
	case "N", "S", "E", "W":
	default:
		return "", 0, &ParseError{Input: s, Reason: fmt.Sprintf("unknown hemisphere %q", hem)}
	}

	degToken, ok := strings.CutSuffix(fields[1], degreeSymbol)
	if !ok {
		return "", 0, &ParseError{Input: s, Reason: "missing degree symbol"}
	}

	deg, err := strconv.Atoi(degToken)
	if err != nil {
		return "", 0, &ParseError{Input: s, Reason: "invalid degrees", Err: err}
	}
	if deg < 0 {
		return "", 0, &ParseError{Input: s, Reason: "negative degrees"}
	}

	minutes, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return "", 0, &ParseError{Input: s, Reason: "invalid minutes", Err: err}
	}
	// A minutes value of 60 or more cannot be written in DDM.
	if minutes < 0 || minutes >= 60 {
		return "", 0, &ParseError{Input: s, Reason: fmt.Sprintf("minutes %v out of range [0, 60)", minutes)}
	}

	return hem, float64(deg) + minutes/60, nil
}

// ParseWaypoints converts raw DDM rows into waypoints. Latitude is kept
// positive and longitude is negated: the dataset lies in the north-western
// hemisphere, and rows naming S or E are rejected rather than mis-signed.
func ParseWaypoints(rows []RawWaypoint) ([]Waypoint, error) {
	out := make([]Waypoint, 0, len(rows))
	for i, r := range rows {
		lat, err := parseHemisphere(r.Lat, "N")
		if err != nil {
			return nil, fmt.Errorf("parse waypoints: row %d latitude: %w", i, err)
		}

		lon, err := parseHemisphere(r.Lon, "W")
		if err != nil {
			return nil, fmt.Errorf("parse waypoints: row %d longitude: %w", i, err)
		}

		c := Coordinates{Lat: lat, Lon: -lon}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("parse waypoints: row %d: %w", i, &ParseError{
				Input:  r.Lat + " " + r.Lon,
				Reason: "out of range",
				Err:    err,
			})
		}

		out = append(out, Waypoint{Label: r.Label, Coordinates: c})
	}

	return out, nil
}

func parseHemisphere(s, want string) (float64, error) {
	hem, v, err := parseDDM(s)
	if err != nil {
		return 0, err
	}
	if hem != want {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("hemisphere %q not supported, want %q", hem, want)}
	}
	return v, nil
}

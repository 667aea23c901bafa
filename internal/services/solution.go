package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"waypoint-tour-solver/internal/domain"
)

var (
	ErrShortSolution = errors.New("not enough digits for a coordinate")
	ErrLabelDigit    = errors.New("label is not a single digit")
)

// minutesDigits is the number of digits in a "MM.MMM" minutes value.
const minutesDigits = 5

// SolutionTemplate fixes the parts of the answer coordinates that the tour
// does not encode.
type SolutionTemplate struct {
	LatPrefix string
	LonPrefix string
	// Number of leading stops whose labels form the latitude minutes.
	LatDigits int
}

// GC7XNRWTemplate is the answer template for the published dataset.
var GC7XNRWTemplate = SolutionTemplate{
	LatPrefix: "N 42°",
	LonPrefix: "W 073°",
	LatDigits: 5,
}

// BuildSolution concatenates the label of every visited stop and splices the
// digits into the template as "<prefix> MM.MMM".
func BuildSolution(wps []domain.Waypoint, stops []int, tpl SolutionTemplate) (domain.Solution, error) {
	var lat, lon strings.Builder
	for i, s := range stops {
		if s < 0 || s >= len(wps) {
			return domain.Solution{}, fmt.Errorf("build solution: %w: %d", ErrStopOutOfRange, s)
		}

		label := wps[s].Label
		if label < 0 || label > 9 {
			return domain.Solution{}, fmt.Errorf("build solution: %w: stop %d has label %d", ErrLabelDigit, s, label)
		}

		if i < tpl.LatDigits {
			lat.WriteString(strconv.Itoa(label))
		} else {
			lon.WriteString(strconv.Itoa(label))
		}
	}

	latMin, err := formatMinutes(lat.String())
	if err != nil {
		return domain.Solution{}, fmt.Errorf("build solution: latitude: %w", err)
	}
	lonMin, err := formatMinutes(lon.String())
	if err != nil {
		return domain.Solution{}, fmt.Errorf("build solution: longitude: %w", err)
	}

	return domain.Solution{
		Lat: tpl.LatPrefix + " " + latMin,
		Lon: tpl.LonPrefix + " " + lonMin,
	}, nil
}

func formatMinutes(digits string) (string, error) {
	if len(digits) < minutesDigits {
		return "", fmt.Errorf("%w: got %q, want %d digits", ErrShortSolution, digits, minutesDigits)
	}
	return digits[0:2] + "." + digits[2:minutesDigits], nil
}

// BuildSolutions reconstructs the answer coordinates of every ranked candidate.
func BuildSolutions(wps []domain.Waypoint, ranked []domain.Candidate, tpl SolutionTemplate) ([]domain.RankedSolution, error) {
	out := make([]domain.RankedSolution, 0, len(ranked))
	for _, c := range ranked {
		sol, err := BuildSolution(wps, c.Stops, tpl)
		if err != nil {
			return nil, fmt.Errorf("build solutions: path %d: %w", c.Index, err)
		}
		out = append(out, domain.RankedSolution{Candidate: c, Solution: sol})
	}
	return out, nil
}

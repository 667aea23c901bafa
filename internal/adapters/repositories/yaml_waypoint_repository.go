package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"waypoint-tour-solver/internal/domain"

	"gopkg.in/yaml.v3"
)

type WaypointSeed struct {
	Label *int   `yaml:"label"`
	Lat   string `yaml:"lat"`
	Lon   string `yaml:"lon"`
}

type waypointFile struct {
	Waypoints []WaypointSeed `yaml:"waypoints"`
}

// WaypointRepository backed by a YAML file of the form
//
//	waypoints:
//	  - {label: 0, lat: "N 43° 03.673", lon: "W 108° 27.504"}
//
// The file is read on every call.
type YAMLWaypointRepository struct {
	Path string
}

func NewYAMLWaypointRepository(path string) *YAMLWaypointRepository {
	return &YAMLWaypointRepository{Path: path}
}

func (r *YAMLWaypointRepository) ListWaypoints(ctx context.Context) ([]domain.RawWaypoint, error) {
	if strings.TrimSpace(r.Path) == "" {
		return nil, errors.New("list waypoints: path must not be empty")
	}

	bytes, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("list waypoints: read %q: %w", r.Path, err)
	}

	return ParseWaypointYAML(bytes)
}

// ParseWaypointYAML decodes and validates a waypoint document.
func ParseWaypointYAML(data []byte) ([]domain.RawWaypoint, error) {
	var doc waypointFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("list waypoints: parse yaml: %w", err)
	}

	if len(doc.Waypoints) == 0 {
		return nil, errors.New("list waypoints: no waypoints in document")
	}

	rows := make([]domain.RawWaypoint, 0, len(doc.Waypoints))
	for i, item := range doc.Waypoints {
		if item.Label == nil {
			return nil, fmt.Errorf("list waypoints: item at index %d: label is required", i)
		}

		lat := strings.TrimSpace(item.Lat)
		lon := strings.TrimSpace(item.Lon)
		if lat == "" || lon == "" {
			return nil, fmt.Errorf("list waypoints: item at index %d: lat and lon cannot be empty", i)
		}

		rows = append(rows, domain.RawWaypoint{Label: *item.Label, Lat: lat, Lon: lon})
	}

	return rows, nil
}

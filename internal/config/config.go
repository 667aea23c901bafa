package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Runtime settings for a solver run. Zero values of the optional fields mean
// "use the built-in default".
type Config struct {
	// Empty means the embedded dataset.
	WaypointsFile      string
	DistanceModel      string
	MaxDistance        float64
	ForbiddenStops     []int
	ForbiddenPositions []int
	ProgressEvery      int
	Histogram          bool
	ReportFormat       string
	LogLevel           string
	// Fixed parts of the reconstructed answer, e.g. "N 42°".
	SolutionLatPrefix string
	SolutionLonPrefix string
	// Empty disables the metrics endpoint.
	MetricsAddr string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		WaypointsFile:     strings.TrimSpace(Get("WAYPOINTS_FILE", "")),
		DistanceModel:     strings.ToLower(strings.TrimSpace(Get("DISTANCE_MODEL", "planar"))),
		LogLevel:          Get("LOG_LEVEL", "info"),
		SolutionLatPrefix: Get("SOLUTION_LAT_PREFIX", "N 42°"),
		SolutionLonPrefix: Get("SOLUTION_LON_PREFIX", "W 073°"),
		MetricsAddr:       strings.TrimSpace(Get("METRICS_ADDR", "")),
		ReportFormat:      strings.ToLower(strings.TrimSpace(Get("REPORT_FORMAT", FormatText))),
	}

	var err error
	if cfg.MaxDistance, err = getFloat("MAX_DISTANCE", 0); err != nil {
		return Config{}, err
	}
	if cfg.ProgressEvery, err = getInt("PROGRESS_EVERY", 0); err != nil {
		return Config{}, err
	}
	if cfg.Histogram, err = getBool("HISTOGRAM", false); err != nil {
		return Config{}, err
	}
	if cfg.ForbiddenStops, err = getIntList("FORBIDDEN_STOPS"); err != nil {
		return Config{}, err
	}
	if cfg.ForbiddenPositions, err = getIntList("FORBIDDEN_POSITIONS"); err != nil {
		return Config{}, err
	}

	if cfg.MaxDistance < 0 {
		return Config{}, fmt.Errorf("load config: MAX_DISTANCE must not be negative, got %v", cfg.MaxDistance)
	}
	if cfg.ProgressEvery < 0 {
		return Config{}, fmt.Errorf("load config: PROGRESS_EVERY must not be negative, got %d", cfg.ProgressEvery)
	}
	if cfg.ReportFormat != FormatText && cfg.ReportFormat != FormatJSON {
		return Config{}, fmt.Errorf("load config: REPORT_FORMAT must be %q or %q, got %q", FormatText, FormatJSON, cfg.ReportFormat)
	}

	return cfg, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("load config: %s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("load config: %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("load config: %s: %w", key, err)
	}
	return b, nil
}

// getIntList parses a comma separated list such as "10,7,8". Unset yields nil.
func getIntList(key string) ([]int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil, nil
	}

	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("load config: %s: item %q: %w", key, p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

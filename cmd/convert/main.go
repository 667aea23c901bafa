package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"waypoint-tour-solver/internal/adapters/repositories"
	"waypoint-tour-solver/internal/config"
	"waypoint-tour-solver/internal/domain"
	"waypoint-tour-solver/internal/report"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// convert prints the dataset in decimal degrees without running a search.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := convert(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("convert failed")
	}
}

func convert(ctx context.Context, cfg config.Config, w io.Writer) error {
	rows, err := repositories.NewWaypointRepository(cfg.WaypointsFile).ListWaypoints(ctx)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	wps, err := domain.ParseWaypoints(rows)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	switch cfg.ReportFormat {
	case config.FormatJSON:
		res := report.BuildResponse(wps, &domain.SearchResult{}, nil)
		return report.WriteJSON(w, res.Waypoints)
	case config.FormatText:
		rep := report.NewTextReporter(w)
		rep.Coordinates(wps)
		return rep.Flush()
	default:
		return fmt.Errorf("convert: unknown format %q", cfg.ReportFormat)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"waypoint-tour-solver/internal/adapters/cache"
	"waypoint-tour-solver/internal/adapters/distance"
	"waypoint-tour-solver/internal/adapters/repositories"
	"waypoint-tour-solver/internal/api"
	"waypoint-tour-solver/internal/config"
	"waypoint-tour-solver/internal/domain"
	"waypoint-tour-solver/internal/metrics"
	"waypoint-tour-solver/internal/platform/obs"
	"waypoint-tour-solver/internal/ports"
	"waypoint-tour-solver/internal/report"
	"waypoint-tour-solver/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const histogramWidth = 50

// main is the application composition root. It takes no arguments; every
// knob comes from the environment (optionally via .env).
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger, err := obs.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build logger")
	}
	if envErr != nil {
		logger.Debug().Msg("no .env file found (using environment variables)")
	}

	ctx := logger.WithContext(context.Background())
	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("solver failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer) (err error) {
	defer obs.Time(ctx, "run")(&err)
	logger := zerolog.Ctx(ctx)

	wps, err := loadWaypoints(ctx, repositories.NewWaypointRepository(cfg.WaypointsFile))
	if err != nil {
		return err
	}

	model, err := distance.NewModel(cfg.DistanceModel, wps[0].Coordinates)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	matrix, err := cache.NewDistanceMatrix(domain.Points(wps), model)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	metrics.RegisterDefault()
	if cfg.MetricsAddr != "" {
		srv, err := api.Listen(cfg.MetricsAddr, api.NewRouter(metrics.Registry, *logger), *logger)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				logger.Warn().Err(err).Msg("metrics server shutdown")
			}
		}()
	}

	logger.Info().
		Int("stops", len(wps)-1).
		Str("model", cfg.DistanceModel).
		Str("format", cfg.ReportFormat).
		Ints("minute_tens_stops", services.MinuteTensStops(wps)).
		Msg("starting search")

	req := services.SearchRequest{
		Constraints:   constraintsFrom(cfg),
		ProgressEvery: cfg.ProgressEvery,
		KeepDistances: cfg.Histogram && cfg.ReportFormat == config.FormatText,
	}
	tpl := services.SolutionTemplate{
		LatPrefix: cfg.SolutionLatPrefix,
		LonPrefix: cfg.SolutionLonPrefix,
		LatDigits: services.GC7XNRWTemplate.LatDigits,
	}

	if cfg.ReportFormat == config.FormatJSON {
		return runJSON(ctx, req, tpl, wps, matrix, stdout)
	}
	return runText(ctx, req, tpl, wps, matrix, stdout)
}

func runText(
	ctx context.Context,
	req services.SearchRequest,
	tpl services.SolutionTemplate,
	wps []domain.Waypoint,
	matrix ports.DistanceMatrix,
	stdout io.Writer,
) error {
	rep := report.NewTextReporter(stdout)
	rep.Coordinates(wps)

	total, err := services.Factorial(len(wps) - 1)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	rep.Total(total)

	res, err := search(ctx, req, matrix, rep)
	if err != nil {
		var mismatch *services.CountMismatchError
		if errors.As(err, &mismatch) {
			rep.CountMismatch(mismatch.Got, mismatch.Want)
		}
		return errors.Join(err, rep.Flush())
	}

	rows, err := services.BuildSolutions(wps, res.Survivors, tpl)
	if err != nil {
		return errors.Join(fmt.Errorf("run: %w", err), rep.Flush())
	}

	rep.Best(res.Best)
	rep.Ranked(rows)
	if req.KeepDistances {
		rep.Histogram(report.NewHistogram(res.Distances), histogramWidth)
	}

	if err := rep.Flush(); err != nil {
		return fmt.Errorf("run: write report: %w", err)
	}
	return nil
}

func runJSON(
	ctx context.Context,
	req services.SearchRequest,
	tpl services.SolutionTemplate,
	wps []domain.Waypoint,
	matrix ports.DistanceMatrix,
	stdout io.Writer,
) error {
	res, err := search(ctx, req, matrix, report.LogProgress{Logger: zerolog.Ctx(ctx)})
	if err != nil {
		return err
	}

	rows, err := services.BuildSolutions(wps, res.Survivors, tpl)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if err := report.WriteJSON(stdout, report.BuildResponse(wps, res, rows)); err != nil {
		return fmt.Errorf("run: write report: %w", err)
	}
	return nil
}

// search runs the exhaustive pass and records its outcome in the metrics.
func search(
	ctx context.Context,
	req services.SearchRequest,
	matrix ports.DistanceMatrix,
	progress ports.ProgressObserver,
) (*domain.SearchResult, error) {
	var rec metrics.Recorder
	start := time.Now()

	res, err := services.Search(ctx, req, matrix, progress, rec)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	rec.RecordSearch(res.Stats, time.Since(start))

	zerolog.Ctx(ctx).Info().
		Int("evaluated", res.Stats.Evaluated).
		Int("rejected_position", res.Stats.RejectedByPosition).
		Int("rejected_distance", res.Stats.RejectedByDistance).
		Int("survived", res.Stats.Survived).
		Float64("best", res.Best.Distance).
		Msg("search complete")

	return res, nil
}

func loadWaypoints(ctx context.Context, repo ports.WaypointRepository) ([]domain.Waypoint, error) {
	rows, err := repo.ListWaypoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("load waypoints: %w", err)
	}

	wps, err := domain.ParseWaypoints(rows)
	if err != nil {
		return nil, fmt.Errorf("load waypoints: %w", err)
	}

	if len(wps) < 2 {
		return nil, fmt.Errorf("load waypoints: need an origin and at least one stop, got %d rows", len(wps))
	}
	return wps, nil
}

// constraintsFrom overlays configured values on the defaults.
func constraintsFrom(cfg config.Config) services.Constraints {
	c := services.DefaultConstraints()
	if cfg.MaxDistance > 0 {
		c.MaxDistance = cfg.MaxDistance
	}
	if cfg.ForbiddenStops != nil {
		c.ForbiddenStops = cfg.ForbiddenStops
	}
	if cfg.ForbiddenPositions != nil {
		c.ForbiddenPositions = cfg.ForbiddenPositions
	}
	return c
}

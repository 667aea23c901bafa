package report

import "github.com/rs/zerolog"

// LogProgress reports search progress on the diagnostics logger, for runs
// where stdout carries machine-readable output.
type LogProgress struct {
	Logger *zerolog.Logger
}

func (p LogProgress) Progress(done, total int, percent float64) {
	p.Logger.Info().
		Int("done", done).
		Int("total", total).
		Float64("percent", percent).
		Msg("checking paths")
}

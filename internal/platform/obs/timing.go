package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time starts a timer for the named operation. The returned func logs the
// elapsed time, and the error if errp points at one, on the context logger.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Error().Err(*errp).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("operation failed")
			return
		}
		logger.Info().Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("operation finished")
	}
}

package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/msgstore/deployer/pkg/polylog"
)

// WithOutput sets the writer log lines are written to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).Logger = logger.(*zerologLogger).Logger.Output(output)
	}
}

// WithLevel sets the minimum level which is written.
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).level = zerolog.Level(level.Int())
	}
}

// WithTimestamp adds a "time" field to every log line.
func WithTimestamp() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.With().Timestamp().Logger()
	}
}

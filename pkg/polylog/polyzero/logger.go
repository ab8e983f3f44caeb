package polyzero

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/msgstore/deployer/pkg/polylog"
)

var _ polylog.Logger = (*zerologLogger)(nil)

// zerologLogger wraps a zerolog.Logger to implement polylog.Logger.
type zerologLogger struct {
	level zerolog.Level
	zerolog.Logger
}

// NewLogger constructs a zerolog-backed polylog.Logger. By default it writes
// JSON lines to os.Stderr at the Debug level; use WithOutput and WithLevel to
// change that.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	ze := &zerologLogger{
		level:  zerolog.DebugLevel,
		Logger: zerolog.New(os.Stderr),
	}

	for _, opt := range opts {
		opt(ze)
	}

	ze.Logger = ze.Logger.Level(ze.level)
	return ze
}

// Debug starts a new message with debug level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Debug() polylog.Event {
	return newEvent(ze.Logger.Debug())
}

// Info starts a new message with info level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Info() polylog.Event {
	return newEvent(ze.Logger.Info())
}

// Warn starts a new message with warn level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Warn() polylog.Event {
	return newEvent(ze.Logger.Warn())
}

// Error starts a new message with error level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Error() polylog.Event {
	return newEvent(ze.Logger.Error())
}

// With creates a child logger with the fields constructed from keyVals added
// to its context.
func (ze *zerologLogger) With(keyVals ...any) polylog.Logger {
	return &zerologLogger{
		level:  ze.level,
		Logger: ze.Logger.With().Fields(keyVals).Logger(),
	}
}

// WithContext returns a copy of ctx with the receiver attached, both under
// polylog.CtxKey and zerolog's own context key.
func (ze *zerologLogger) WithContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, polylog.CtxKey, polylog.Logger(ze))
	return ze.Logger.WithContext(ctx)
}

// Write implements io.Writer.
func (ze *zerologLogger) Write(p []byte) (n int, err error) {
	return ze.Logger.Write(p)
}

package polylog

import (
	"context"
	"time"
)

// Logger is the structured logging interface used throughout this module.
// It mirrors the zerolog API closely so that the zerolog-backed implementation
// (see: pkg/polylog/polyzero) is a thin wrapper.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug() Event
	// Info starts a new message with info level.
	Info() Event
	// Warn starts a new message with warn level.
	Warn() Event
	// Error starts a new message with error level.
	Error() Event

	// With returns a child logger which includes keyVals in every event.
	// keyVals MUST be an even number of alternating keys and values.
	With(keyVals ...any) Logger

	// WithContext returns a copy of ctx with the receiver attached such that
	// Ctx(ctx) returns it.
	WithContext(ctx context.Context) context.Context

	// Write implements io.Writer so a Logger can back the standard library log.
	Write(p []byte) (n int, err error)
}

// Event is a single log line under construction. Nothing is written until
// Msg, Msgf or Send is called.
type Event interface {
	Str(key, value string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Uint64(key string, value uint64) Event
	Float64(key string, value float64) Event
	Err(err error) Event
	Dur(key string, value time.Duration) Event
	Time(key string, value time.Time) Event
	Fields(fields any) Event

	// Enabled reports whether the event will be written.
	Enabled() bool
	// Discard disables the event so that Msg(f) won't print it.
	Discard() Event

	Msg(message string)
	Msgf(format string, args ...any)
	Send()
}

// Level is implemented by the level types of each logger implementation.
type Level interface {
	String() string
	Int() int
}

// LoggerOption configures a Logger at construction time.
type LoggerOption func(logger Logger)

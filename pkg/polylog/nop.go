package polylog

import (
	"context"
	"time"
)

var (
	_ Logger = nopLogger{}
	_ Event  = nopEvent{}
)

// nopLogger discards everything. It backs Ctx when no logger is attached.
type nopLogger struct{}

func (nopLogger) Debug() Event { return nopEvent{} }

func (nopLogger) Info() Event { return nopEvent{} }

func (nopLogger) Warn() Event { return nopEvent{} }

func (nopLogger) Error() Event { return nopEvent{} }

func (l nopLogger) With(...any) Logger { return l }

func (nopLogger) WithContext(ctx context.Context) context.Context { return ctx }

func (nopLogger) Write(p []byte) (int, error) { return len(p), nil }

type nopEvent struct{}

func (e nopEvent) Str(string, string) Event { return e }

func (e nopEvent) Bool(string, bool) Event { return e }

func (e nopEvent) Int(string, int) Event { return e }

func (e nopEvent) Int64(string, int64) Event { return e }

func (e nopEvent) Uint64(string, uint64) Event { return e }

func (e nopEvent) Float64(string, float64) Event { return e }

func (e nopEvent) Err(error) Event { return e }

func (e nopEvent) Dur(string, time.Duration) Event { return e }

func (e nopEvent) Time(string, time.Time) Event { return e }

func (e nopEvent) Fields(any) Event { return e }

func (nopEvent) Enabled() bool { return false }

func (e nopEvent) Discard() Event { return e }

func (nopEvent) Msg(string) {}

func (nopEvent) Msgf(string, ...any) {}

func (nopEvent) Send() {}

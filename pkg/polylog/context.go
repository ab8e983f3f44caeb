package polylog

import "context"

type ctxKey struct{}

// CtxKey is the key under which a Logger is stored in a context.Context.
// It is independent of any key the underlying implementation may use.
var CtxKey = ctxKey{}

// DefaultContextLogger is returned by Ctx when no logger is attached to the
// context. Implementation packages may assign it in their init() to avoid
// import cycles; it falls back to a no-op logger otherwise.
var DefaultContextLogger Logger = nopLogger{}

// Ctx returns the Logger associated with ctx, or DefaultContextLogger.
//
// To attach a logger, call its WithContext method and propagate the returned
// context.
func Ctx(ctx context.Context) Logger {
	if ctx == nil {
		return DefaultContextLogger
	}

	logger, ok := ctx.Value(CtxKey).(Logger)
	if !ok {
		return DefaultContextLogger
	}
	return logger
}

package testpolylog

import (
	"bytes"
	"context"

	"github.com/msgstore/deployer/pkg/polylog"
	"github.com/msgstore/deployer/pkg/polylog/polyzero"
)

// NewLoggerWithCtx returns a logger writing to the returned buffer, and a
// context carrying that logger.
func NewLoggerWithCtx(
	ctx context.Context,
	level polylog.Level,
) (polylog.Logger, context.Context, *bytes.Buffer) {
	logOutput := new(bytes.Buffer)
	logger := polyzero.NewLogger(
		polyzero.WithLevel(level),
		polyzero.WithOutput(logOutput),
	)
	ctx = logger.WithContext(ctx)

	return logger, ctx, logOutput
}

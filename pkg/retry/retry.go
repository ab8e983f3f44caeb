package retry

import (
	"context"
	"errors"
	"time"
)

// defaultExponentialDelay backs off from 500ms up to 5s, retrying
// indefinitely; callers bound it with a context deadline.
var defaultExponentialDelay = WithExponentialBackoffFn(-1, 500*time.Millisecond, 5*time.Second)

// RetryStrategyFunc blocks for the delay before the next attempt and reports
// whether another attempt should be made. It MUST return false once ctx is done.
type RetryStrategyFunc func(ctx context.Context, retryCount int) bool

// Call executes work repeatedly until it succeeds, it returns an error wrapping
// ErrNonRetryable, ctx is done or the retry strategy indicates that no more
// retries should be attempted.
//
// If no retry strategy is provided, defaultExponentialDelay is used.
//
// Returns the result from the last call of work and either its error or, if
// ctx ended the retries, the context error joined with the last work error.
func Call[T any](
	ctx context.Context,
	work func(ctx context.Context) (T, error),
	retryStrategy ...RetryStrategyFunc,
) (T, error) {
	if retryStrategy == nil {
		retryStrategy = []RetryStrategyFunc{defaultExponentialDelay}
	}

	for retryCount := 0; ; retryCount++ {
		result, err := work(ctx)
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, ErrNonRetryable):
			return result, err
		}

		if !retryStrategy[0](ctx, retryCount) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, errors.Join(ctxErr, err)
			}
			return result, err
		}
	}
}

// WithExponentialBackoffFn creates a retry strategy with exponential backoff.
// A negative maxRetryCount allows limitless retries.
func WithExponentialBackoffFn(
	maxRetryCount int,
	initialDelay time.Duration,
	maxDelay time.Duration,
) RetryStrategyFunc {
	return func(ctx context.Context, retryCount int) bool {
		if maxRetryCount >= 0 && retryCount >= maxRetryCount {
			return false
		}

		delay := maxDelay
		// Avoid overflowing the shift for large retry counts.
		if retryCount < 32 {
			delay = min(initialDelay<<retryCount, maxDelay)
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return true
		}
	}
}

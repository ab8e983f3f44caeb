package retry

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	codespace = "retry"
	// ErrNonRetryable allows the work function to stop retrying.
	ErrNonRetryable = sdkerrors.Register(codespace, 1, "non-retryable error")
)

package cmd

import "cosmossdk.io/errors"

var (
	codespace = "cmd"

	ErrInvalidFlagUsage = errors.Register(codespace, 1110, "invalid flag usage")
)

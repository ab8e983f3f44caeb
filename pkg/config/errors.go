package config

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "config"

	ErrInvalidConfig  = sdkerrors.Register(codespace, 1, "invalid config")
	ErrReadConfigFile = sdkerrors.Register(codespace, 2, "unable to read config file")
	ErrLoadDotEnv     = sdkerrors.Register(codespace, 3, "unable to load dotenv file")
)

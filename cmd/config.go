package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msgstore/deployer/app"
	"github.com/msgstore/deployer/cmd/flags"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/polylog"
)

// LoadConfig performs the setup shared by all commands, in order:
// 1. Load the .env file of the working directory, if any
// 2. Resolve the config from the environment and the config file (--config)
// 3. Apply the network related flags
// 4. Configure the cosmos-sdk bech32 prefixes
//
// The resulting config is validated after the flags are applied.
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	logger := polylog.Ctx(cmd.Context())

	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	var loadOpts []config.LoadOption
	if configFlag := cmd.Flags().Lookup(flags.FlagConfig); configFlag != nil && configFlag.Value.String() != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(configFlag.Value.String()))
	}

	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return config.Config{}, err
	}

	if err = ApplyNetworkFlags(cmd, &cfg); err != nil {
		return config.Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	app.InitSDKConfig()

	logger.Debug().
		Str("chain_id", cfg.ChainID).
		Str("rpc_endpoints", strings.Join(cfg.Endpoints(), ",")).
		Str("gas_price", cfg.GasPrice).
		Float64("gas_adjustment", cfg.GasAdjustment).
		Msg("loaded config")

	return cfg, nil
}

// AddConfigFlagToCmd registers the --config flag on cmd.
func AddConfigFlagToCmd(cmd *cobra.Command) {
	cmd.Flags().String(flags.FlagConfig, "", flags.FlagConfigUsage)
}

package cmd

import (
	cosmosflags "github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/msgstore/deployer/cmd/flags"
	"github.com/msgstore/deployer/pkg/config"
)

// AddNetworkFlagsToCmd registers the network related flags on cmd:
// * --node
// * --chain-id
// * --gas-prices
// * --gas-adjustment
//
// They are all empty by default; see ApplyNetworkFlags.
func AddNetworkFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().String(cosmosflags.FlagNode, "", flags.FlagNodeUsage)
	cmd.Flags().String(cosmosflags.FlagChainID, "", flags.FlagChainIDUsage)
	cmd.Flags().String(cosmosflags.FlagGasPrices, "", flags.FlagGasPricesUsage)
	cmd.Flags().Float64(cosmosflags.FlagGasAdjustment, 0, flags.FlagGasAdjustmentUsage)
}

// ApplyNetworkFlags overrides the fields of cfg which correspond to a network
// related flag, ONLY if that flag is registered on cmd AND was set by the user.
// Flags take precedence over the environment and the config file.
func ApplyNetworkFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --node flag
	if cmd.Flags().Lookup(cosmosflags.FlagNode) != nil && cmd.Flags().Changed(cosmosflags.FlagNode) {
		node, err := cmd.Flags().GetString(cosmosflags.FlagNode)
		if err != nil {
			return err
		}
		if node == "" {
			return ErrInvalidFlagUsage.Wrapf("--%s MUST NOT be empty", cosmosflags.FlagNode)
		}
		cfg.RPCEndpoint = node
		// An explicit node is never combined with the fallbacks.
		cfg.RPCEndpoints = nil
	}

	// --chain-id flag
	if cmd.Flags().Lookup(cosmosflags.FlagChainID) != nil && cmd.Flags().Changed(cosmosflags.FlagChainID) {
		chainID, err := cmd.Flags().GetString(cosmosflags.FlagChainID)
		if err != nil {
			return err
		}
		cfg.ChainID = chainID
	}

	// --gas-prices flag
	if cmd.Flags().Lookup(cosmosflags.FlagGasPrices) != nil && cmd.Flags().Changed(cosmosflags.FlagGasPrices) {
		gasPrices, err := cmd.Flags().GetString(cosmosflags.FlagGasPrices)
		if err != nil {
			return err
		}
		cfg.GasPrice = gasPrices
	}

	// --gas-adjustment flag
	if cmd.Flags().Lookup(cosmosflags.FlagGasAdjustment) != nil && cmd.Flags().Changed(cosmosflags.FlagGasAdjustment) {
		gasAdjustment, err := cmd.Flags().GetFloat64(cosmosflags.FlagGasAdjustment)
		if err != nil {
			return err
		}
		cfg.GasAdjustment = gasAdjustment
	}

	return nil
}

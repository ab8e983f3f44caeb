package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sharedcmd "github.com/msgstore/deployer/cmd"
	"github.com/msgstore/deployer/cmd/logger"
	"github.com/msgstore/deployer/cmd/signals"
	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/deploy"
)

// NewUpdateMessageCmd returns the root command of the update-message binary.
// All chain access goes through dial.
func NewUpdateMessageCmd(dial client.Dialer) *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update-message <contract_address> <new_message>",
		Short: "Replace the message stored by a message-store contract",
		Long: `Execute update_message on the given message-store contract, signing with the
first account derived from MNEMONIC, then query and print the stored message.

The sender MUST be the contract's owner (i.e. the account which instantiated
it); otherwise the chain rejects the update.`,
		Example: `  MNEMONIC="..." update-message bbn14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9sw76fy2 "hello"`,
		Args:              cobra.ExactArgs(2),
		SilenceErrors:     true,
		PersistentPreRunE: logger.PreRunESetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			err := runUpdateMessage(cmd, dial, args[0], args[1])
			if err != nil {
				logger.Logger.Error().Err(err).Msg("message update failed")
			}
			return err
		},
	}

	logger.AddLoggerFlagsToCmd(updateCmd)
	sharedcmd.AddConfigFlagToCmd(updateCmd)
	sharedcmd.AddNetworkFlagsToCmd(updateCmd)

	return updateCmd
}

func runUpdateMessage(cmd *cobra.Command, dial client.Dialer, contractAddress, message string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	signals.GoOnExitSignal(logger.Logger, cancel)

	// Loads .env, which MAY provide the mnemonic.
	cfg, err := sharedcmd.LoadConfig(cmd)
	if err != nil {
		return err
	}

	mnemonic := config.MnemonicFromEnv()
	if mnemonic == "" {
		return deploy.ErrMissingMnemonic.Wrapf("%s environment variable MUST be set", config.EnvMnemonic)
	}

	result, err := deploy.Update(ctx, cfg, dial, deploy.UpdateParams{
		Mnemonic:        mnemonic,
		ContractAddress: contractAddress,
		Message:         message,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Transaction hash: %s\n", result.ExecuteTx.TxHash)
	fmt.Fprintf(out, "Current message: %s\n", result.Message)
	return nil
}

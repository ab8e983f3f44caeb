package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	sharedcmd "github.com/msgstore/deployer/cmd"
	"github.com/msgstore/deployer/cmd/flags"
	"github.com/msgstore/deployer/cmd/logger"
	"github.com/msgstore/deployer/cmd/signals"
	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/deploy"
)

var (
	flagSmokeTest  bool
	flagOutputFile string
)

// NewDeployCmd returns the root command of the deploy binary. All chain
// access goes through dial.
func NewDeployCmd(dial client.Dialer) *cobra.Command {
	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload and instantiate the message-store contract",
		Long: `Upload the compiled message-store contract (WASM_PATH) to the chain and
instantiate it with INITIAL_MESSAGE, signing with the first account derived
from MNEMONIC.

Configuration is read from the environment (and a .env file in the working
directory), an optional msgstore.yaml config file and the network flags, the
latter taking precedence.

On success, the code id and the contract address are printed to stdout.`,
		Example: `  MNEMONIC="..." deploy
  MNEMONIC="..." deploy --test --output-file deployment.yaml
  MNEMONIC="..." deploy --node http://localhost:26657 --chain-id bbn-test-5`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		PersistentPreRunE: logger.PreRunESetup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Usage is only relevant to argument and flag errors, which cobra
			// reports before RunE is called.
			cmd.SilenceUsage = true

			err := runDeploy(cmd, dial)
			if err != nil {
				logger.Logger.Error().Err(err).Msg("deployment failed")
			}
			return err
		},
	}

	logger.AddLoggerFlagsToCmd(deployCmd)
	sharedcmd.AddConfigFlagToCmd(deployCmd)
	sharedcmd.AddNetworkFlagsToCmd(deployCmd)
	deployCmd.Flags().BoolVar(&flagSmokeTest, flags.FlagSmokeTest, false, flags.FlagSmokeTestUsage)
	deployCmd.Flags().StringVar(&flagOutputFile, flags.FlagOutputFile, "", flags.FlagOutputFileUsage)

	return deployCmd
}

func runDeploy(cmd *cobra.Command, dial client.Dialer) error {
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

	result, deployErr := deploy.Deploy(ctx, cfg, dial, deploy.DeployParams{
		Mnemonic:     mnemonic,
		RunSmokeTest: flagSmokeTest,
	})
	// A non-nil result means the contract was instantiated, even if the smoke
	// test failed afterwards.
	if result == nil {
		return deployErr
	}

	printDeployResult(cmd, result)

	if flagOutputFile != "" {
		if err = result.WriteFile(flagOutputFile); err != nil {
			return multierr.Append(deployErr, err)
		}
		logger.Logger.Info().Str("path", flagOutputFile).Msg("deployment result written")
	}

	return deployErr
}

func printDeployResult(cmd *cobra.Command, result *deploy.DeployResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Code ID: %d\n", result.CodeID)
	fmt.Fprintf(out, "Contract address: %s\n", result.ContractAddress)

	if result.SmokeTest != nil {
		fmt.Fprintf(out, "Initial message: %s\n", result.SmokeTest.InitialMessage)
		fmt.Fprintf(out, "Updated message: %s\n", result.SmokeTest.UpdatedMessage)
	}
}

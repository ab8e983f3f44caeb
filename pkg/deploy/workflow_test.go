package deploy_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msgstore/deployer/app"
	"github.com/msgstore/deployer/pkg/deploy"
	"github.com/msgstore/deployer/testutil/testchain"
)

func TestWorkflows_DeployThenUpdate(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	chain := testchain.NewChain(cfg.ChainID)

	deployResult, err := deploy.Deploy(ctx, cfg, chain.Dialer(), deploy.DeployParams{
		Mnemonic:     testMnemonic,
		RunSmokeTest: true,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(deployResult.ContractAddress, app.AccountAddressPrefix+"1"))
	require.Equal(t, cfg.InitialMessage, deployResult.SmokeTest.InitialMessage)
	require.Equal(t, deploy.SmokeTestMessage, deployResult.SmokeTest.UpdatedMessage)

	updateResult, err := deploy.Update(ctx, cfg, chain.Dialer(), deploy.UpdateParams{
		Mnemonic:        testMnemonic,
		ContractAddress: deployResult.ContractAddress,
		Message:         "hello-2",
	})
	require.NoError(t, err)
	require.Equal(t, "hello-2", updateResult.Message)
	require.Equal(t, 2, chain.Dials())
}

func TestWorkflows_LastUpdateWins(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	chain := testchain.NewChain(cfg.ChainID)

	deployResult, err := deploy.Deploy(ctx, cfg, chain.Dialer(), deploy.DeployParams{Mnemonic: testMnemonic})
	require.NoError(t, err)

	message, ok := chain.Message(deployResult.ContractAddress)
	require.True(t, ok)
	require.Equal(t, cfg.InitialMessage, message)

	for _, newMessage := range []string{"first", "second"} {
		_, err = deploy.Update(ctx, cfg, chain.Dialer(), deploy.UpdateParams{
			Mnemonic:        testMnemonic,
			ContractAddress: deployResult.ContractAddress,
			Message:         newMessage,
		})
		require.NoError(t, err)
	}

	message, ok = chain.Message(deployResult.ContractAddress)
	require.True(t, ok)
	require.Equal(t, "second", message)
}

func TestWorkflows_UpdateByNonOwner(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	chain := testchain.NewChain(cfg.ChainID)

	deployResult, err := deploy.Deploy(ctx, cfg, chain.Dialer(), deploy.DeployParams{Mnemonic: testMnemonic})
	require.NoError(t, err)

	_, err = deploy.Update(ctx, cfg, chain.Dialer(), deploy.UpdateParams{
		Mnemonic:        otherMnemonic,
		ContractAddress: deployResult.ContractAddress,
		Message:         "hijacked",
	})
	require.ErrorIs(t, err, testchain.ErrUnauthorized)

	message, _ := chain.Message(deployResult.ContractAddress)
	require.Equal(t, cfg.InitialMessage, message)
}

func TestWorkflows_WrongChain(t *testing.T) {
	cfg := newTestConfig(t)
	chain := testchain.NewChain("bbn-1")

	_, err := deploy.Deploy(context.Background(), cfg, chain.Dialer(), deploy.DeployParams{Mnemonic: testMnemonic})
	require.ErrorIs(t, err, testchain.ErrWrongChain)
}

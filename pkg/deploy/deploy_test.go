package deploy_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/deploy"
	"github.com/msgstore/deployer/pkg/msgstore"
	"github.com/msgstore/deployer/pkg/wallet"
	"github.com/msgstore/deployer/testutil/mockclient"
	"github.com/msgstore/deployer/testutil/sample"
)

const (
	testMnemonic = "baby advance work soap slow exclude blur humble lucky rough teach wide chuckle captain rack laundry butter main very cannon donate armor dress follow"
	// otherMnemonic is the well-known all "abandon" test vector.
	otherMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

// recordingDialer returns contractClient and counts how often it was dialed.
type recordingDialer struct {
	contractClient client.ContractClient
	err            error
	dialCfgs       []client.DialConfig
	senders        []string
}

func (d *recordingDialer) dial(
	_ context.Context,
	cfg client.DialConfig,
	identity *wallet.Identity,
) (client.ContractClient, error) {
	d.dialCfgs = append(d.dialCfgs, cfg)
	d.senders = append(d.senders, identity.Sender().Address)
	if d.err != nil {
		return nil, d.err
	}
	return d.contractClient, nil
}

// newTestConfig returns the default config with the artifact written to a
// temporary directory.
func newTestConfig(t *testing.T) config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.WasmPath = filepath.Join(t.TempDir(), "message_store.wasm")
	require.NoError(t, os.WriteFile(cfg.WasmPath, sample.WasmCode(256), 0o600))
	return cfg
}

func TestDeploy_PreconditionFailures(t *testing.T) {
	tests := []struct {
		desc        string
		mnemonic    string
		expectedErr error
	}{
		{desc: "missing mnemonic", mnemonic: "", expectedErr: deploy.ErrMissingMnemonic},
		{desc: "invalid mnemonic", mnemonic: "not a mnemonic", expectedErr: wallet.ErrInvalidMnemonic},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			// Any call on the contract client fails the test.
			contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
			dialer := &recordingDialer{contractClient: contractClient}

			_, err := deploy.Deploy(context.Background(), newTestConfig(t), dialer.dial, deploy.DeployParams{
				Mnemonic:     test.mnemonic,
				RunSmokeTest: true,
			})
			require.ErrorIs(t, err, test.expectedErr)
			require.Empty(t, dialer.dialCfgs)
		})
	}
}

func TestDeploy_HDPath(t *testing.T) {
	dialErr := errors.New("offline")

	defaultDialer := &recordingDialer{err: dialErr}
	_, err := deploy.Deploy(context.Background(), newTestConfig(t), defaultDialer.dial, deploy.DeployParams{
		Mnemonic: testMnemonic,
	})
	require.ErrorIs(t, err, dialErr)

	cfg := newTestConfig(t)
	cfg.HDPath = "m/44'/118'/0'/0/1"
	otherPathDialer := &recordingDialer{err: dialErr}
	_, err = deploy.Deploy(context.Background(), cfg, otherPathDialer.dial, deploy.DeployParams{
		Mnemonic: testMnemonic,
	})
	require.ErrorIs(t, err, dialErr)

	require.Len(t, defaultDialer.senders, 1)
	require.Len(t, otherPathDialer.senders, 1)
	require.NotEqual(t, defaultDialer.senders[0], otherPathDialer.senders[0])
}

func TestDeploy_UploadAndInstantiate(t *testing.T) {
	cfg := newTestConfig(t)
	contractAddress := sample.ContractAddress()

	contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
	dialer := &recordingDialer{contractClient: contractClient}

	var sender string
	gomock.InOrder(
		contractClient.EXPECT().
			Upload(gomock.Any(), gomock.Any(), sample.WasmCode(256)).
			DoAndReturn(func(_ context.Context, uploadSender string, _ []byte) (*client.UploadResult, error) {
				sender = uploadSender
				return &client.UploadResult{
					TxResult: client.TxResult{TxHash: "UPLOAD", Height: 10},
					CodeID:   42,
					Checksum: "abcd",
				}, nil
			}),
		contractClient.EXPECT().
			Instantiate(
				gomock.Any(),
				gomock.Any(),
				uint64(42),
				msgstore.NewInstantiateMsg(config.DefaultInitialMessage),
				config.DefaultContractLabel,
			).
			Return(&client.InstantiateResult{
				TxResult:        client.TxResult{TxHash: "INSTANTIATE", Height: 11},
				ContractAddress: contractAddress,
			}, nil),
	)
	// Without the smoke test, no Query or Execute call is expected.

	result, err := deploy.Deploy(context.Background(), cfg, dialer.dial, deploy.DeployParams{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)

	require.Equal(t, &deploy.DeployResult{
		ChainID:         config.DefaultChainID,
		Sender:          sender,
		CodeID:          42,
		Checksum:        "abcd",
		ContractAddress: contractAddress,
		Label:           config.DefaultContractLabel,
		UploadTx:        client.TxResult{TxHash: "UPLOAD", Height: 10},
		InstantiateTx:   client.TxResult{TxHash: "INSTANTIATE", Height: 11},
	}, result)

	// The sender is the identity's first account, also used to dial.
	require.Equal(t, []string{sender}, dialer.senders)
	require.Len(t, dialer.dialCfgs, 1)
	dialCfg := dialer.dialCfgs[0]
	require.Equal(t, config.DefaultRPCEndpoints, dialCfg.Endpoints)
	require.Equal(t, config.DefaultChainID, dialCfg.ChainID)
	require.Equal(t, config.DefaultGasAdjustment, dialCfg.GasAdjustment)
	expectedGasPrices, err := sdk.ParseDecCoins(config.DefaultGasPrice)
	require.NoError(t, err)
	require.True(t, expectedGasPrices.Equal(dialCfg.GasPrices))
}

func TestDeploy_SmokeTest(t *testing.T) {
	cfg := newTestConfig(t)
	contractAddress := sample.ContractAddress()

	contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
	dialer := &recordingDialer{contractClient: contractClient}

	gomock.InOrder(
		contractClient.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&client.UploadResult{CodeID: 7}, nil),
		contractClient.EXPECT().
			Instantiate(gomock.Any(), gomock.Any(), uint64(7), gomock.Any(), gomock.Any()).
			Return(&client.InstantiateResult{ContractAddress: contractAddress}, nil),
		contractClient.EXPECT().
			Query(gomock.Any(), contractAddress, msgstore.NewGetMessageQuery()).
			Return(msgstore.EncodeMessageResponse(config.DefaultInitialMessage), nil),
		contractClient.EXPECT().
			Execute(gomock.Any(), gomock.Any(), contractAddress, msgstore.NewUpdateMessageMsg(deploy.SmokeTestMessage)).
			Return(&client.TxResult{TxHash: "EXECUTE"}, nil),
		contractClient.EXPECT().
			Query(gomock.Any(), contractAddress, msgstore.NewGetMessageQuery()).
			Return(msgstore.EncodeMessageResponse(deploy.SmokeTestMessage), nil),
	)

	result, err := deploy.Deploy(context.Background(), cfg, dialer.dial, deploy.DeployParams{
		Mnemonic:     testMnemonic,
		RunSmokeTest: true,
	})
	require.NoError(t, err)
	require.Equal(t, contractAddress, result.ContractAddress)
	require.Equal(t, &deploy.SmokeTestReport{
		InitialMessage: config.DefaultInitialMessage,
		ExecuteTx:      client.TxResult{TxHash: "EXECUTE"},
		UpdatedMessage: deploy.SmokeTestMessage,
	}, result.SmokeTest)
}

func TestDeploy_SmokeTestUnexpectedResponse(t *testing.T) {
	contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
	dialer := &recordingDialer{contractClient: contractClient}

	contractClient.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&client.UploadResult{CodeID: 7}, nil)
	contractClient.EXPECT().
		Instantiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&client.InstantiateResult{ContractAddress: sample.ContractAddress()}, nil)
	contractClient.EXPECT().
		Query(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"message":"initial message"}`), nil)

	result, err := deploy.Deploy(context.Background(), newTestConfig(t), dialer.dial, deploy.DeployParams{
		Mnemonic:     testMnemonic,
		RunSmokeTest: true,
	})
	require.ErrorIs(t, err, msgstore.ErrUnexpectedResponse)
	require.NotNil(t, result)
	require.Nil(t, result.SmokeTest)
}

func TestDeploy_SmokeTestFailureKeepsContract(t *testing.T) {
	contractAddress := sample.ContractAddress()
	expectedErr := errors.New("rpc down")

	tests := []struct {
		desc    string
		setupFn func(contractClient *mockclient.MockContractClient)
	}{
		{
			desc: "initial query",
			setupFn: func(contractClient *mockclient.MockContractClient) {
				contractClient.EXPECT().
					Query(gomock.Any(), contractAddress, gomock.Any()).
					Return(nil, expectedErr)
			},
		},
		{
			desc: "execute",
			setupFn: func(contractClient *mockclient.MockContractClient) {
				gomock.InOrder(
					contractClient.EXPECT().
						Query(gomock.Any(), contractAddress, gomock.Any()).
						Return(msgstore.EncodeMessageResponse(config.DefaultInitialMessage), nil),
					contractClient.EXPECT().
						Execute(gomock.Any(), gomock.Any(), contractAddress, gomock.Any()).
						Return(nil, expectedErr),
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
			dialer := &recordingDialer{contractClient: contractClient}

			contractClient.EXPECT().
				Upload(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&client.UploadResult{CodeID: 7}, nil)
			contractClient.EXPECT().
				Instantiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&client.InstantiateResult{ContractAddress: contractAddress}, nil)
			test.setupFn(contractClient)

			result, err := deploy.Deploy(context.Background(), newTestConfig(t), dialer.dial, deploy.DeployParams{
				Mnemonic:     testMnemonic,
				RunSmokeTest: true,
			})
			require.ErrorIs(t, err, expectedErr)
			require.NotNil(t, result)
			require.Equal(t, contractAddress, result.ContractAddress)
			require.Equal(t, uint64(7), result.CodeID)
			require.Nil(t, result.SmokeTest)
		})
	}
}

func TestDeploy_ArtifactUnreadable(t *testing.T) {
	tests := []struct {
		desc    string
		setupFn func(t *testing.T, cfg *config.Config)
	}{
		{
			desc: "missing file",
			setupFn: func(t *testing.T, cfg *config.Config) {
				cfg.WasmPath = filepath.Join(t.TempDir(), "missing.wasm")
			},
		},
		{
			desc: "not a wasm module",
			setupFn: func(t *testing.T, cfg *config.Config) {
				require.NoError(t, os.WriteFile(cfg.WasmPath, []byte("#!/bin/sh\n"), 0o600))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			cfg := newTestConfig(t)
			test.setupFn(t, &cfg)

			contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
			dialer := &recordingDialer{contractClient: contractClient}

			_, err := deploy.Deploy(context.Background(), cfg, dialer.dial, deploy.DeployParams{
				Mnemonic: testMnemonic,
			})
			require.ErrorIs(t, err, deploy.ErrArtifactUnreadable)
		})
	}
}

func TestDeploy_CollaboratorErrors(t *testing.T) {
	expectedErr := errors.New("insufficient funds")

	t.Run("dial", func(t *testing.T) {
		dialer := &recordingDialer{err: expectedErr}
		_, err := deploy.Deploy(context.Background(), newTestConfig(t), dialer.dial, deploy.DeployParams{
			Mnemonic: testMnemonic,
		})
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run("upload", func(t *testing.T) {
		contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
		contractClient.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		dialer := &recordingDialer{contractClient: contractClient}
		_, err := deploy.Deploy(context.Background(), newTestConfig(t), dialer.dial, deploy.DeployParams{
			Mnemonic:     testMnemonic,
			RunSmokeTest: true,
		})
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run("instantiate after upload", func(t *testing.T) {
		contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
		contractClient.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&client.UploadResult{CodeID: 7}, nil)
		contractClient.EXPECT().
			Instantiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		// The uploaded code is left orphaned; nothing else is attempted.
		dialer := &recordingDialer{contractClient: contractClient}
		_, err := deploy.Deploy(context.Background(), newTestConfig(t), dialer.dial, deploy.DeployParams{
			Mnemonic:     testMnemonic,
			RunSmokeTest: true,
		})
		require.ErrorIs(t, err, expectedErr)
	})
}

func TestDeployResult_WriteFile(t *testing.T) {
	result := &deploy.DeployResult{
		ChainID:         config.DefaultChainID,
		Sender:          sample.AccAddress(),
		CodeID:          42,
		Checksum:        "abcd",
		ContractAddress: sample.ContractAddress(),
		Label:           config.DefaultContractLabel,
		UploadTx:        client.TxResult{TxHash: "UPLOAD", Height: 10, GasWanted: 2, GasUsed: 1},
		InstantiateTx:   client.TxResult{TxHash: "INSTANTIATE", Height: 11},
	}

	resultPath := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, result.WriteFile(resultPath))

	resultYAML, err := os.ReadFile(resultPath)
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(resultYAML, &written))
	require.Equal(t, result.ContractAddress, written["contract_address"])
	require.Equal(t, 42, written["code_id"])
	require.NotContains(t, written, "smoke_test")
	require.Equal(t, "UPLOAD", written["upload_tx"].(map[string]any)["tx_hash"])

	err = result.WriteFile(filepath.Join(t.TempDir(), "missing", "deployment.yaml"))
	require.ErrorIs(t, err, deploy.ErrWriteResult)
}

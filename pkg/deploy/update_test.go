package deploy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/deploy"
	"github.com/msgstore/deployer/pkg/msgstore"
	"github.com/msgstore/deployer/testutil/mockclient"
	"github.com/msgstore/deployer/testutil/sample"
)

func TestUpdate_PreconditionFailures(t *testing.T) {
	otherPrefixAddress := sdk.MustBech32ifyAddressBytes("cosmos", secp256k1.GenPrivKey().PubKey().Address())

	tests := []struct {
		desc        string
		params      deploy.UpdateParams
		expectedErr error
	}{
		{
			desc:        "missing mnemonic",
			params:      deploy.UpdateParams{ContractAddress: sample.ContractAddress(), Message: "hello"},
			expectedErr: deploy.ErrMissingMnemonic,
		},
		{
			desc:        "missing contract address",
			params:      deploy.UpdateParams{Mnemonic: testMnemonic, Message: "hello"},
			expectedErr: deploy.ErrMissingContractAddress,
		},
		{
			desc:        "missing message",
			params:      deploy.UpdateParams{Mnemonic: testMnemonic, ContractAddress: sample.ContractAddress()},
			expectedErr: deploy.ErrMissingMessage,
		},
		{
			desc:        "malformed contract address",
			params:      deploy.UpdateParams{Mnemonic: testMnemonic, ContractAddress: "bbn1notanaddress", Message: "hello"},
			expectedErr: deploy.ErrInvalidContractAddress,
		},
		{
			desc:        "contract address of another chain",
			params:      deploy.UpdateParams{Mnemonic: testMnemonic, ContractAddress: otherPrefixAddress, Message: "hello"},
			expectedErr: deploy.ErrInvalidContractAddress,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
			dialer := &recordingDialer{contractClient: contractClient}

			_, err := deploy.Update(context.Background(), config.Default(), dialer.dial, test.params)
			require.ErrorIs(t, err, test.expectedErr)
			require.Empty(t, dialer.dialCfgs)
		})
	}
}

func TestUpdate_ExecuteThenQuery(t *testing.T) {
	contractAddress := sample.ContractAddress()
	// The message is sent verbatim.
	newMessage := `  "quoted", {braced} & spaced  `

	contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
	dialer := &recordingDialer{contractClient: contractClient}

	gomock.InOrder(
		contractClient.EXPECT().
			Execute(gomock.Any(), gomock.Any(), contractAddress, msgstore.NewUpdateMessageMsg(newMessage)).
			Return(&client.TxResult{TxHash: "EXECUTE", Height: 5}, nil).
			Times(1),
		contractClient.EXPECT().
			Query(gomock.Any(), contractAddress, msgstore.NewGetMessageQuery()).
			Return(msgstore.EncodeMessageResponse(newMessage), nil).
			Times(1),
	)

	result, err := deploy.Update(context.Background(), config.Default(), dialer.dial, deploy.UpdateParams{
		Mnemonic:        testMnemonic,
		ContractAddress: contractAddress,
		Message:         newMessage,
	})
	require.NoError(t, err)
	require.Equal(t, &deploy.UpdateResult{
		ContractAddress: contractAddress,
		ExecuteTx:       client.TxResult{TxHash: "EXECUTE", Height: 5},
		Message:         newMessage,
	}, result)
	require.Len(t, dialer.dialCfgs, 1)
}

func TestUpdate_ExecuteError(t *testing.T) {
	expectedErr := errors.New("Unauthorized")

	contractClient := mockclient.NewMockContractClient(gomock.NewController(t))
	contractClient.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)
	// No Query is expected after a failed execution.

	dialer := &recordingDialer{contractClient: contractClient}
	_, err := deploy.Update(context.Background(), config.Default(), dialer.dial, deploy.UpdateParams{
		Mnemonic:        testMnemonic,
		ContractAddress: sample.ContractAddress(),
		Message:         "hello",
	})
	require.ErrorIs(t, err, expectedErr)
}

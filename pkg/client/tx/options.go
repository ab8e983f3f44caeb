package tx

import (
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/retry"
)

// WithSigningKeyName sets the name of the key which should be retrieved from the
// keyring and used for signing transactions.
func WithSigningKeyName(keyName string) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).signingKeyName = keyName
	}
}

// WithGasPrices sets the gas prices used to compute the fee of each transaction.
func WithGasPrices(gasPrices cosmostypes.DecCoins) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).gasPrices = gasPrices
	}
}

// WithCommitTimeout sets how long SignAndBroadcast waits for a broadcast
// transaction to be included in a block.
func WithCommitTimeout(timeout time.Duration) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).commitTimeout = timeout
	}
}

// WithInclusionPollStrategy sets the retry strategy used while polling for the
// inclusion of a broadcast transaction.
func WithInclusionPollStrategy(strategy retry.RetryStrategyFunc) client.TxClientOption {
	return func(client client.TxClient) {
		client.(*txClient).pollStrategy = strategy
	}
}

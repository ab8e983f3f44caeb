//go:generate mockgen -destination=../../testutil/mockclient/contract_client_mock.go -package=mockclient . ContractClient
//go:generate mockgen -destination=../../testutil/mockclient/tx_client_mock.go -package=mockclient . TxClient,TxContext

package client

import (
	"context"
	"time"

	comettypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmoskeyring "github.com/cosmos/cosmos-sdk/crypto/keyring"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/msgstore/deployer/pkg/wallet"
)

// ContractClient is the set of CosmWasm operations used by the workflows.
// Every state-mutating operation blocks until its transaction is included in
// a block (or fails), with an automatically estimated fee.
type ContractClient interface {
	// Upload stores wasmByteCode on chain, signed by sender.
	Upload(
		ctx context.Context,
		sender string,
		wasmByteCode []byte,
	) (*UploadResult, error)

	// Instantiate creates a contract from codeID without admin or funds.
	Instantiate(
		ctx context.Context,
		sender string,
		codeID uint64,
		initMsg []byte,
		label string,
	) (*InstantiateResult, error)

	// Execute calls the contract with msg and no funds.
	Execute(
		ctx context.Context,
		sender string,
		contractAddress string,
		msg []byte,
	) (*TxResult, error)

	// Query runs a smart query and returns the raw JSON response.
	Query(
		ctx context.Context,
		contractAddress string,
		queryMsg []byte,
	) ([]byte, error)
}

// TxResult describes a transaction which was included in a block.
type TxResult struct {
	TxHash    string `yaml:"tx_hash"`
	Height    int64  `yaml:"height"`
	GasWanted int64  `yaml:"gas_wanted"`
	GasUsed   int64  `yaml:"gas_used"`
	RawLog    string `yaml:"raw_log,omitempty"`
}

// UploadResult is the outcome of ContractClient#Upload.
type UploadResult struct {
	TxResult `yaml:",inline"`
	CodeID   uint64 `yaml:"code_id"`
	// Checksum is the hex-encoded sha256 of the stored (uncompressed) code.
	Checksum string `yaml:"checksum"`
}

// InstantiateResult is the outcome of ContractClient#Instantiate.
type InstantiateResult struct {
	TxResult        `yaml:",inline"`
	ContractAddress string `yaml:"contract_address"`
}

// DialConfig is what a Dialer needs to know about the network.
type DialConfig struct {
	// Endpoints are candidate CometBFT RPC endpoints, in order of preference.
	Endpoints     []string
	ChainID       string
	GasPrices     cosmostypes.DecCoins
	GasAdjustment float64
	// CommitTimeout bounds the wait for each transaction's inclusion.
	CommitTimeout time.Duration
}

// Dialer connects a ContractClient which signs with the given identity.
type Dialer func(
	ctx context.Context,
	cfg DialConfig,
	identity *wallet.Identity,
) (ContractClient, error)

// TxClient signs, broadcasts and waits for the inclusion of transactions.
type TxClient interface {
	// SignAndBroadcast builds a transaction from msgs with a simulated gas
	// limit, signs and broadcasts it, then blocks until it is included in a
	// block or the commit timeout elapses. A transaction which fails check-tx
	// or deliver-tx is an error.
	SignAndBroadcast(
		ctx context.Context,
		msgs ...cosmostypes.Msg,
	) (*comettypes.ResultTx, error)
}

// TxClientOption defines a function type that modifies the TxClient.
type TxClientOption func(TxClient)

// TxContext provides an interface which consolidates the operational dependencies
// required to facilitate the sender side of the tx lifecycle: build, sign, encode,
// broadcast, query.
type TxContext interface {
	// GetKeyring returns the associated key management mechanism for the tx context.
	GetKeyring() cosmoskeyring.Keyring

	// NewTxBuilder creates and returns a new tx builder instance.
	NewTxBuilder() cosmosclient.TxBuilder

	// SignTx signs a tx using the specified key name. It can operate in offline mode,
	// and can overwrite any existing signatures based on the provided flags.
	SignTx(
		ctx context.Context,
		keyName string,
		txBuilder cosmosclient.TxBuilder,
		offline, overwriteSig bool,
	) error

	// EncodeTx takes a tx builder and encodes it, returning its byte representation.
	EncodeTx(txBuilder cosmosclient.TxBuilder) ([]byte, error)

	// BroadcastTx broadcasts the given tx to the network.
	BroadcastTx(txBytes []byte) (*cosmostypes.TxResponse, error)

	// QueryTx retrieves a tx status based on its hash and optionally provides
	// proof of the tx.
	QueryTx(
		ctx context.Context,
		txHash []byte,
		prove bool,
	) (*comettypes.ResultTx, error)

	// GetSimulatedTxGas simulates msgs signed by signingKeyName and returns
	// the gas used, scaled by the gas adjustment and rounded up.
	GetSimulatedTxGas(
		ctx context.Context,
		signingKeyName string,
		msgs ...cosmostypes.Msg,
	) (uint64, error)

	// GetClientCtx returns the cosmos-sdk client context.
	GetClientCtx() cosmosclient.Context
}

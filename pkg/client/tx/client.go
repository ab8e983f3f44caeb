package tx

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"cosmossdk.io/depinject"
	"cosmossdk.io/math"
	comettypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/multierr"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/polylog"
	"github.com/msgstore/deployer/pkg/retry"
)

const (
	// DefaultCommitTimeout is how long a broadcast transaction may take to be
	// included in a block before SignAndBroadcast gives up on it.
	DefaultCommitTimeout = 60 * time.Second
)

// defaultPollStrategy polls for tx inclusion from 500ms up to every 4s
// (roughly the block time), until the commit timeout.
var defaultPollStrategy = retry.WithExponentialBackoffFn(-1, 500*time.Millisecond, 4*time.Second)

var _ client.TxClient = (*txClient)(nil)

// txClient orchestrates building, signing, broadcasting, and querying of
// transactions. Unlike an event driven client, it waits for each transaction
// synchronously by polling the node for the tx by hash.
type txClient struct {
	// signingKeyName is the name of the key in the keyring to use for signing
	// transactions.
	signingKeyName string
	// signingAddr is the address of the signing key referenced by signingKeyName.
	// It is hydrated from the keyring by calling Keyring#Key() with signingKeyName.
	signingAddr cosmostypes.AccAddress
	// txCtx is the transactions context which encapsulates transactions building, signing,
	// broadcasting, and querying, as well as keyring access.
	txCtx client.TxContext

	// gasPrices is the gas unit prices used for sending transactions.
	gasPrices cosmostypes.DecCoins
	// commitTimeout bounds the wait for the inclusion of each transaction.
	commitTimeout time.Duration
	// pollStrategy paces the QueryTx calls while waiting for inclusion.
	pollStrategy retry.RetryStrategyFunc
}

// NewTxClient attempts to construct a new TxClient using the given dependencies
// and options.
//
// Required dependencies:
//   - client.TxContext
//
// Available options:
//   - WithSigningKeyName
//   - WithGasPrices
//   - WithCommitTimeout
//   - WithInclusionPollStrategy
func NewTxClient(
	deps depinject.Config,
	opts ...client.TxClientOption,
) (_ client.TxClient, err error) {
	txnClient := &txClient{
		commitTimeout: DefaultCommitTimeout,
		pollStrategy:  defaultPollStrategy,
	}

	if err = depinject.Inject(
		deps,
		&txnClient.txCtx,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(txnClient)
	}

	if err = txnClient.validateConfigAndSetDefaults(); err != nil {
		return nil, err
	}

	return txnClient, nil
}

// SignAndBroadcast signs a set of Cosmos SDK messages, constructs a transaction,
// broadcasts it to the network and waits for it to be committed:
//
//  1. Validates each message in the provided set.
//  2. Simulates the transaction to compute its (adjusted) gas limit.
//  3. Sets the fee to gas limit * gas prices, rounded up.
//  4. Signs the transaction, fetching the account number and sequence.
//  5. Serializes and broadcasts the transaction.
//  6. Checks the broadcast (check-tx) response for errors.
//  7. Polls for the transaction until it is committed or the commit timeout
//     elapses, and checks its deliver-tx result for errors.
func (txnClient *txClient) SignAndBroadcast(
	ctx context.Context,
	msgs ...cosmostypes.Msg,
) (*comettypes.ResultTx, error) {
	logger := polylog.Ctx(ctx)

	var validationErrs error
	for i, msg := range msgs {
		validatableMsg, ok := msg.(cosmostypes.HasValidateBasic)
		if ok {
			if err := validatableMsg.ValidateBasic(); err != nil {
				validationErr := ErrInvalidMsg.Wrapf("in msg with index %d: %s", i, err)
				validationErrs = multierr.Append(validationErrs, validationErr)
			}
		}
	}
	if validationErrs != nil {
		return nil, validationErrs
	}

	// Simulate the transaction to calculate the gas limit.
	gasLimit, err := txnClient.txCtx.GetSimulatedTxGas(ctx, txnClient.signingKeyName, msgs...)
	if err != nil {
		return nil, ErrSimulateTx.Wrap(err.Error())
	}

	// Construct the transactions using cosmos' transactions builder.
	txBuilder := txnClient.txCtx.NewTxBuilder()
	if err = txBuilder.SetMsgs(msgs...); err != nil {
		return nil, err
	}

	txBuilder.SetGasLimit(gasLimit)
	feeCoins := CalculateFee(txnClient.gasPrices, gasLimit)
	txBuilder.SetFeeAmount(feeCoins)

	logger.Debug().
		Uint64("gas_limit", gasLimit).
		Str("fee", feeCoins.String()).
		Int("num_msgs", len(msgs)).
		Msg("signing transaction")

	// sign transactions
	if err = txnClient.txCtx.SignTx(
		ctx,
		txnClient.signingKeyName,
		txBuilder,
		false, true,
	); err != nil {
		return nil, ErrSignTx.Wrap(err.Error())
	}

	// serialize transactions
	txBz, err := txnClient.txCtx.EncodeTx(txBuilder)
	if err != nil {
		return nil, err
	}

	txResponse, err := txnClient.txCtx.BroadcastTx(txBz)
	if err != nil {
		return nil, ErrBroadcastTx.Wrap(err.Error())
	}

	if txResponse.Code != 0 {
		return nil, ErrCheckTx.Wrapf(
			"tx %s failed with code %d (codespace %q): %s",
			txResponse.TxHash, txResponse.Code, txResponse.Codespace, txResponse.RawLog,
		)
	}

	logger.Info().
		Str("tx_hash", txResponse.TxHash).
		Msg("transaction broadcast, waiting for it to be committed")

	return txnClient.waitForCommit(ctx, txResponse.TxHash)
}

// waitForCommit polls the node for the transaction with the given (hex) hash
// until it is found, ctx is done or the commit timeout elapses.
func (txnClient *txClient) waitForCommit(
	ctx context.Context,
	txHashHex string,
) (*comettypes.ResultTx, error) {
	txHash, err := hex.DecodeString(txHashHex)
	if err != nil {
		return nil, ErrBroadcastTx.Wrapf("invalid tx hash %q: %s", txHashHex, err)
	}

	commitCtx, cancel := context.WithTimeout(ctx, txnClient.commitTimeout)
	defer cancel()

	txResult, err := retry.Call(
		commitCtx,
		func(ctx context.Context) (*comettypes.ResultTx, error) {
			return txnClient.txCtx.QueryTx(ctx, txHash, false)
		},
		txnClient.pollStrategy,
	)
	if err != nil {
		// Interruption by the caller is reported as is.
		if ctx.Err() != nil {
			return nil, errors.Join(ctx.Err(), err)
		}
		return nil, ErrCommitTimeout.Wrapf(
			"tx %s not found after %s: %s",
			txHashHex, txnClient.commitTimeout, err,
		)
	}

	if txResult.TxResult.Code != 0 {
		return nil, ErrDeliverTx.Wrapf(
			"tx %s failed at height %d with code %d (codespace %q): %s",
			txHashHex, txResult.Height, txResult.TxResult.Code,
			txResult.TxResult.Codespace, txResult.TxResult.Log,
		)
	}

	polylog.Ctx(ctx).Info().
		Str("tx_hash", txHashHex).
		Int64("height", txResult.Height).
		Int64("gas_used", txResult.TxResult.GasUsed).
		Msg("transaction committed")

	return txResult, nil
}

// CalculateFee returns gasPrices * gasLimit. Any fractional remainder is
// rounded up to a whole unit of the corresponding denom.
func CalculateFee(gasPrices cosmostypes.DecCoins, gasLimit uint64) cosmostypes.Coins {
	gasLimitDec := math.LegacyNewDecFromInt(math.NewIntFromUint64(gasLimit))
	feeAmountDec := gasPrices.MulDec(gasLimitDec)

	feeCoins, changeCoins := feeAmountDec.TruncateDecimal()
	// Since changeCoins is the result of DecCoins#TruncateDecimal, each of its
	// coins is less than one unit of the corresponding fee coin.
	for _, change := range changeCoins {
		if change.IsPositive() {
			feeCoins = feeCoins.Add(cosmostypes.NewInt64Coin(change.Denom, 1))
		}
	}
	return feeCoins
}

// validateConfigAndSetDefaults ensures that the necessary configurations for the
// txClient are set, and populates any missing defaults.
//
//  1. It checks if the signing key name is set and returns an error if it's empty.
//  2. It then retrieves the key record from the keyring using the signing key name
//     and checks its existence.
//  3. The address of the signing key is computed and assigned to txClient#signingAddr.
//  4. Gas prices MUST be valid and non-empty.
//  5. Lastly, it ensures that commitTimeout has a valid value, setting
//     it to DefaultCommitTimeout if it's zero or negative.
func (txnClient *txClient) validateConfigAndSetDefaults() error {
	if txnClient.signingKeyName == "" {
		return ErrEmptySigningKeyName
	}

	keyRecord, err := txnClient.txCtx.GetKeyring().Key(txnClient.signingKeyName)
	if err != nil {
		return ErrNoSuchSigningKey.Wrapf("name %q: %s", txnClient.signingKeyName, err)
	}
	signingAddr, err := keyRecord.GetAddress()
	if err != nil {
		return ErrNoSuchSigningKey.Wrapf("name %q: %s", txnClient.signingKeyName, err)
	}
	txnClient.signingAddr = signingAddr

	if txnClient.gasPrices.Empty() {
		return ErrInvalidGasPrices.Wrap("gas prices MUST be set")
	}
	if err = txnClient.gasPrices.Validate(); err != nil {
		return ErrInvalidGasPrices.Wrap(err.Error())
	}

	if txnClient.commitTimeout <= 0 {
		txnClient.commitTimeout = DefaultCommitTimeout
	}
	if txnClient.pollStrategy == nil {
		txnClient.pollStrategy = defaultPollStrategy
	}
	return nil
}

package wasm

import (
	"context"
	"io"
	"time"

	"cosmossdk.io/depinject"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	cosmostx "github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"go.uber.org/multierr"

	"github.com/msgstore/deployer/app"
	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/client/tx"
	"github.com/msgstore/deployer/pkg/polylog"
	"github.com/msgstore/deployer/pkg/wallet"
)

// DefaultProbeTimeout bounds the status request sent to each candidate endpoint.
const DefaultProbeTimeout = 10 * time.Second

// StatusProber returns the network (chain id) served by the CometBFT RPC
// endpoint.
type StatusProber func(ctx context.Context, endpoint string) (network string, err error)

type dialer struct {
	probe        StatusProber
	probeTimeout time.Duration
}

// DialerOption customizes the dialer returned by NewDialer.
type DialerOption func(*dialer)

// WithStatusProber replaces the CometBFT status request used to select an endpoint.
func WithStatusProber(probe StatusProber) DialerOption {
	return func(d *dialer) {
		d.probe = probe
	}
}

// WithProbeTimeout overrides DefaultProbeTimeout.
func WithProbeTimeout(timeout time.Duration) DialerOption {
	return func(d *dialer) {
		d.probeTimeout = timeout
	}
}

// NewDialer returns a client.Dialer which connects to the first reachable
// endpoint serving the configured chain and signs with the identity's sender key.
func NewDialer(opts ...DialerOption) client.Dialer {
	d := &dialer{
		probe:        ProbeCometStatus,
		probeTimeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d.dial
}

func (d *dialer) dial(
	ctx context.Context,
	cfg client.DialConfig,
	identity *wallet.Identity,
) (client.ContractClient, error) {
	endpoint, err := SelectEndpoint(ctx, cfg.Endpoints, cfg.ChainID, d.probeWithTimeout)
	if err != nil {
		return nil, err
	}

	encCfg, err := app.MakeEncodingConfig()
	if err != nil {
		return nil, err
	}

	cometClient, err := cosmosclient.NewClientFromNode(endpoint)
	if err != nil {
		return nil, ErrNoReachableEndpoint.Wrapf("%s: %s", endpoint, err)
	}

	sender := identity.Sender()
	clientCtx := cosmosclient.Context{}.
		WithCodec(encCfg.Codec).
		WithInterfaceRegistry(encCfg.InterfaceRegistry).
		WithTxConfig(encCfg.TxConfig).
		WithLegacyAmino(encCfg.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithKeyring(identity.Keyring()).
		WithChainID(cfg.ChainID).
		WithNodeURI(endpoint).
		WithClient(cometClient).
		WithBroadcastMode(flags.BroadcastSync).
		WithFromName(sender.Name).
		WithFromAddress(sender.AccAddress).
		WithSkipConfirmation(true).
		WithOutput(io.Discard)

	txFactory := cosmostx.Factory{}.
		WithChainID(cfg.ChainID).
		WithKeybase(identity.Keyring()).
		WithTxConfig(encCfg.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever).
		WithGasAdjustment(cfg.GasAdjustment).
		WithSignMode(signing.SignMode_SIGN_MODE_DIRECT)

	txCtx, err := tx.NewTxContext(depinject.Supply(clientCtx, txFactory))
	if err != nil {
		return nil, err
	}

	txClient, err := tx.NewTxClient(
		depinject.Supply(txCtx),
		tx.WithSigningKeyName(sender.Name),
		tx.WithGasPrices(cfg.GasPrices),
		tx.WithCommitTimeout(cfg.CommitTimeout),
	)
	if err != nil {
		return nil, err
	}

	return NewContractClient(depinject.Supply(
		txClient,
		wasmtypes.NewQueryClient(clientCtx),
		identity,
	))
}

func (d *dialer) probeWithTimeout(ctx context.Context, endpoint string) (string, error) {
	probeCtx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()
	return d.probe(probeCtx, endpoint)
}

// SelectEndpoint returns the first of endpoints which probe reaches and which
// serves chainID. Endpoints are tried in order.
func SelectEndpoint(
	ctx context.Context,
	endpoints []string,
	chainID string,
	probe StatusProber,
) (string, error) {
	logger := polylog.Ctx(ctx)

	if len(endpoints) == 0 {
		return "", ErrNoEndpoints
	}

	var probeErrs error
	for _, endpoint := range endpoints {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		network, err := probe(ctx, endpoint)
		switch {
		case err != nil:
			logger.Warn().
				Err(err).
				Str("endpoint", endpoint).
				Msg("RPC endpoint unreachable, trying the next one")
			probeErrs = multierr.Append(probeErrs, ErrNoReachableEndpoint.Wrapf("%s: %s", endpoint, err))
		case network != chainID:
			logger.Warn().
				Str("endpoint", endpoint).
				Str("network", network).
				Str("chain_id", chainID).
				Msg("RPC endpoint serves another chain, trying the next one")
			probeErrs = multierr.Append(probeErrs, ErrChainIDMismatch.Wrapf(
				"%s serves %q, expected %q", endpoint, network, chainID,
			))
		default:
			logger.Info().
				Str("endpoint", endpoint).
				Str("chain_id", chainID).
				Msg("connected to RPC endpoint")
			return endpoint, nil
		}
	}

	return "", multierr.Append(
		ErrNoReachableEndpoint.Wrapf("none of %d endpoint(s) serve chain %q", len(endpoints), chainID),
		probeErrs,
	)
}

// ProbeCometStatus requests the CometBFT status of the endpoint.
func ProbeCometStatus(ctx context.Context, endpoint string) (string, error) {
	cometClient, err := cosmosclient.NewClientFromNode(endpoint)
	if err != nil {
		return "", err
	}

	status, err := cometClient.Status(ctx)
	if err != nil {
		return "", err
	}
	return status.NodeInfo.Network, nil
}

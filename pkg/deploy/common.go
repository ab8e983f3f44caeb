package deploy

import (
	"context"

	"github.com/msgstore/deployer/app"
	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/wallet"
)

// newIdentity derives the signing identity from mnemonic, which MUST be set.
func newIdentity(cfg config.Config, mnemonic string) (*wallet.Identity, error) {
	encCfg, err := app.MakeEncodingConfig()
	if err != nil {
		return nil, err
	}
	return wallet.FromMnemonic(
		encCfg.Codec,
		mnemonic,
		wallet.WithAddressPrefix(cfg.AddressPrefix),
		wallet.WithHDPath(cfg.HDPath),
	)
}

// connect dials a ContractClient for cfg which signs with identity.
func connect(
	ctx context.Context,
	cfg config.Config,
	dial client.Dialer,
	identity *wallet.Identity,
) (client.ContractClient, error) {
	dialCfg, err := NewDialConfig(cfg)
	if err != nil {
		return nil, err
	}
	return dial(ctx, dialCfg, identity)
}

// NewDialConfig extracts the network settings of cfg.
func NewDialConfig(cfg config.Config) (client.DialConfig, error) {
	gasPrices, err := cfg.GasPrices()
	if err != nil {
		return client.DialConfig{}, err
	}

	return client.DialConfig{
		Endpoints:     cfg.Endpoints(),
		ChainID:       cfg.ChainID,
		GasPrices:     gasPrices,
		GasAdjustment: cfg.GasAdjustment,
		CommitTimeout: cfg.CommitTimeout,
	}, nil
}

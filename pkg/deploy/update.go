package deploy

import (
	"context"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/msgstore"
	"github.com/msgstore/deployer/pkg/polylog"
)

// UpdateParams are the per-invocation inputs of Update.
type UpdateParams struct {
	Mnemonic        string
	ContractAddress string
	// Message is stored verbatim; it MUST NOT be empty.
	Message string
}

// UpdateResult reports the update transaction and the message read back
// afterwards.
type UpdateResult struct {
	ContractAddress string          `yaml:"contract_address"`
	ExecuteTx       client.TxResult `yaml:"execute_tx"`
	Message         string          `yaml:"message"`
}

// Update replaces the message of the contract at params.ContractAddress:
//
//  1. Validates the mnemonic, contract address and message, without any
//     network call.
//  2. Derives the signing identity and connects a ContractClient.
//  3. Executes update_message with params.Message.
//  4. Queries get_message on the same contract.
//
// The contract is assumed to be a message-store instance owned by the sender;
// otherwise the chain rejects the execution.
func Update(
	ctx context.Context,
	cfg config.Config,
	dial client.Dialer,
	params UpdateParams,
) (*UpdateResult, error) {
	logger := polylog.Ctx(ctx)

	if err := params.validate(cfg.AddressPrefix); err != nil {
		return nil, err
	}

	identity, err := newIdentity(cfg, params.Mnemonic)
	if err != nil {
		return nil, err
	}
	sender := identity.Sender().Address

	contractClient, err := connect(ctx, cfg, dial, identity)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("sender", sender).
		Str("contract_address", params.ContractAddress).
		Msg("updating message")

	executeResult, err := contractClient.Execute(
		ctx,
		sender,
		params.ContractAddress,
		msgstore.NewUpdateMessageMsg(params.Message),
	)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("tx_hash", executeResult.TxHash).
		Int64("height", executeResult.Height).
		Msg("message updated")

	message, err := queryMessage(ctx, contractClient, params.ContractAddress)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{
		ContractAddress: params.ContractAddress,
		ExecuteTx:       *executeResult,
		Message:         message,
	}, nil
}

// validate checks the preconditions of Update in order, reporting the first
// one which does not hold.
func (params UpdateParams) validate(addressPrefix string) error {
	if params.Mnemonic == "" {
		return ErrMissingMnemonic
	}

	if strings.TrimSpace(params.ContractAddress) == "" {
		return ErrMissingContractAddress
	}
	if _, err := sdk.GetFromBech32(params.ContractAddress, addressPrefix); err != nil {
		return ErrInvalidContractAddress.Wrapf("%q: %s", params.ContractAddress, err)
	}

	if params.Message == "" {
		return ErrMissingMessage
	}
	return nil
}

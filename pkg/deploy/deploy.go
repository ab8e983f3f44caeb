package deploy

import (
	"bytes"
	"context"
	"os"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/client/wasm"
	"github.com/msgstore/deployer/pkg/config"
	"github.com/msgstore/deployer/pkg/msgstore"
	"github.com/msgstore/deployer/pkg/polylog"
)

// SmokeTestMessage is the message written by the deploy smoke test.
const SmokeTestMessage = "updated message"

// wasmMagic is the preamble of every wasm binary module.
var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}

// DeployParams are the per-invocation inputs of Deploy.
type DeployParams struct {
	// Mnemonic derives the sender key; it MUST be set.
	Mnemonic string
	// RunSmokeTest queries, updates and queries again the new contract.
	RunSmokeTest bool
}

// Deploy uploads the artifact at cfg.WasmPath and instantiates it with
// cfg.InitialMessage:
//
//  1. Validates that the mnemonic is set, without any network call.
//  2. Derives the signing identity; its first account is the sender.
//  3. Connects a ContractClient with dial.
//  4. Reads the artifact.
//  5. Uploads the artifact, obtaining a code id.
//  6. Instantiates the code with cfg.ContractLabel and no admin.
//  7. If requested, runs the smoke test: query, execute update_message with
//     SmokeTestMessage, query.
//
// Once the contract is instantiated, the result is always returned, including
// alongside a smoke test error, so that the new contract address is not lost.
func Deploy(
	ctx context.Context,
	cfg config.Config,
	dial client.Dialer,
	params DeployParams,
) (*DeployResult, error) {
	logger := polylog.Ctx(ctx)

	if params.Mnemonic == "" {
		return nil, ErrMissingMnemonic
	}

	identity, err := newIdentity(cfg, params.Mnemonic)
	if err != nil {
		return nil, err
	}
	sender := identity.Sender().Address

	logger.Info().
		Str("sender", sender).
		Str("chain_id", cfg.ChainID).
		Msg("deploying contract")

	contractClient, err := connect(ctx, cfg, dial, identity)
	if err != nil {
		return nil, err
	}

	wasmByteCode, err := ReadArtifact(cfg.WasmPath)
	if err != nil {
		return nil, err
	}

	uploadResult, err := contractClient.Upload(ctx, sender, wasmByteCode)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Uint64("code_id", uploadResult.CodeID).
		Str("checksum", uploadResult.Checksum).
		Str("tx_hash", uploadResult.TxHash).
		Msg("contract code uploaded")

	instantiateResult, err := contractClient.Instantiate(
		ctx,
		sender,
		uploadResult.CodeID,
		msgstore.NewInstantiateMsg(cfg.InitialMessage),
		cfg.ContractLabel,
	)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("contract_address", instantiateResult.ContractAddress).
		Str("tx_hash", instantiateResult.TxHash).
		Msg("contract instantiated")

	result := &DeployResult{
		ChainID:         cfg.ChainID,
		Sender:          sender,
		CodeID:          uploadResult.CodeID,
		Checksum:        uploadResult.Checksum,
		ContractAddress: instantiateResult.ContractAddress,
		Label:           cfg.ContractLabel,
		UploadTx:        uploadResult.TxResult,
		InstantiateTx:   instantiateResult.TxResult,
	}

	if !params.RunSmokeTest {
		return result, nil
	}

	result.SmokeTest, err = smokeTest(ctx, contractClient, sender, instantiateResult.ContractAddress)
	if err != nil {
		return result, err
	}
	return result, nil
}

// smokeTest reads the initial message, replaces it with SmokeTestMessage and
// reads it back.
func smokeTest(
	ctx context.Context,
	contractClient client.ContractClient,
	sender string,
	contractAddress string,
) (*SmokeTestReport, error) {
	logger := polylog.Ctx(ctx)

	initialMessage, err := queryMessage(ctx, contractClient, contractAddress)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("message", initialMessage).Msg("smoke test: initial message")

	executeResult, err := contractClient.Execute(
		ctx,
		sender,
		contractAddress,
		msgstore.NewUpdateMessageMsg(SmokeTestMessage),
	)
	if err != nil {
		return nil, err
	}

	updatedMessage, err := queryMessage(ctx, contractClient, contractAddress)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("message", updatedMessage).Msg("smoke test: updated message")

	return &SmokeTestReport{
		InitialMessage: initialMessage,
		ExecuteTx:      *executeResult,
		UpdatedMessage: updatedMessage,
	}, nil
}

// queryMessage runs the get_message query.
func queryMessage(
	ctx context.Context,
	contractClient client.ContractClient,
	contractAddress string,
) (string, error) {
	data, err := contractClient.Query(ctx, contractAddress, msgstore.NewGetMessageQuery())
	if err != nil {
		return "", err
	}
	return msgstore.DecodeMessageResponse(data)
}

// ReadArtifact reads a compiled contract, either a raw wasm module or a
// gzip compressed one.
func ReadArtifact(path string) ([]byte, error) {
	wasmByteCode, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrArtifactUnreadable.Wrap(err.Error())
	}

	if !bytes.HasPrefix(wasmByteCode, wasmMagic) && !wasm.IsGzip(wasmByteCode) {
		return nil, ErrArtifactUnreadable.Wrapf("%s is not a wasm module", path)
	}
	return wasmByteCode, nil
}

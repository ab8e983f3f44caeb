package wasm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"

	"cosmossdk.io/depinject"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	comettypes "github.com/cometbft/cometbft/rpc/core/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/polylog"
	"github.com/msgstore/deployer/pkg/wallet"
)

// SmartQuerier is the subset of the wasm module's gRPC query service used by
// the contract client.
type SmartQuerier interface {
	SmartContractState(
		ctx context.Context,
		req *wasmtypes.QuerySmartContractStateRequest,
		opts ...grpc.CallOption,
	) (*wasmtypes.QuerySmartContractStateResponse, error)
}

var _ client.ContractClient = (*contractClient)(nil)

// contractClient implements client.ContractClient by wrapping each operation
// in a wasm module message and handing it to a client.TxClient.
type contractClient struct {
	txClient client.TxClient
	querier  SmartQuerier
	identity *wallet.Identity
}

// NewContractClient constructs a ContractClient.
//
// Required dependencies:
//   - client.TxClient
//   - SmartQuerier
//   - *wallet.Identity
func NewContractClient(deps depinject.Config) (client.ContractClient, error) {
	cc := &contractClient{}

	if err := depinject.Inject(
		deps,
		&cc.txClient,
		&cc.querier,
		&cc.identity,
	); err != nil {
		return nil, err
	}

	return cc, nil
}

// Upload stores wasmByteCode, gzip compressing it first unless it already is.
// The checksum reported by the chain is verified against the uncompressed code.
func (cc *contractClient) Upload(
	ctx context.Context,
	sender string,
	wasmByteCode []byte,
) (*client.UploadResult, error) {
	if err := cc.checkSender(sender); err != nil {
		return nil, err
	}

	rawCode, err := GunzipCode(wasmByteCode)
	if err != nil {
		return nil, err
	}
	compressedCode, err := GzipCode(wasmByteCode)
	if err != nil {
		return nil, err
	}

	polylog.Ctx(ctx).Info().
		Str("sender", sender).
		Int("code_size", len(rawCode)).
		Int("upload_size", len(compressedCode)).
		Msg("uploading contract code")

	txResult, err := cc.txClient.SignAndBroadcast(ctx, &wasmtypes.MsgStoreCode{
		Sender:       sender,
		WASMByteCode: compressedCode,
	})
	if err != nil {
		return nil, err
	}

	resp := &wasmtypes.MsgStoreCodeResponse{}
	if err = decodeMsgResponse(txResult, resp); err != nil {
		return nil, err
	}

	expectedChecksum := sha256.Sum256(rawCode)
	if !bytes.Equal(resp.Checksum, expectedChecksum[:]) {
		return nil, ErrChecksumMismatch.Wrapf(
			"expected %x, chain stored code %d with checksum %x",
			expectedChecksum, resp.CodeID, resp.Checksum,
		)
	}

	return &client.UploadResult{
		TxResult: newTxResult(txResult),
		CodeID:   resp.CodeID,
		Checksum: hex.EncodeToString(resp.Checksum),
	}, nil
}

// Instantiate creates a contract without an admin or funds.
func (cc *contractClient) Instantiate(
	ctx context.Context,
	sender string,
	codeID uint64,
	initMsg []byte,
	label string,
) (*client.InstantiateResult, error) {
	if err := cc.checkSender(sender); err != nil {
		return nil, err
	}

	polylog.Ctx(ctx).Info().
		Str("sender", sender).
		Uint64("code_id", codeID).
		Str("label", label).
		Msg("instantiating contract")

	txResult, err := cc.txClient.SignAndBroadcast(ctx, &wasmtypes.MsgInstantiateContract{
		Sender: sender,
		CodeID: codeID,
		Label:  label,
		Msg:    wasmtypes.RawContractMessage(initMsg),
	})
	if err != nil {
		return nil, err
	}

	resp := &wasmtypes.MsgInstantiateContractResponse{}
	if err = decodeMsgResponse(txResult, resp); err != nil {
		return nil, err
	}

	return &client.InstantiateResult{
		TxResult:        newTxResult(txResult),
		ContractAddress: resp.Address,
	}, nil
}

// Execute calls the contract without funds.
func (cc *contractClient) Execute(
	ctx context.Context,
	sender string,
	contractAddress string,
	msg []byte,
) (*client.TxResult, error) {
	if err := cc.checkSender(sender); err != nil {
		return nil, err
	}

	polylog.Ctx(ctx).Info().
		Str("sender", sender).
		Str("contract", contractAddress).
		Msg("executing contract")

	txResult, err := cc.txClient.SignAndBroadcast(ctx, &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contractAddress,
		Msg:      wasmtypes.RawContractMessage(msg),
	})
	if err != nil {
		return nil, err
	}

	if err = decodeMsgResponse(txResult, &wasmtypes.MsgExecuteContractResponse{}); err != nil {
		return nil, err
	}

	result := newTxResult(txResult)
	return &result, nil
}

// Query runs a smart query against the contract.
func (cc *contractClient) Query(
	ctx context.Context,
	contractAddress string,
	queryMsg []byte,
) ([]byte, error) {
	polylog.Ctx(ctx).Debug().
		Str("contract", contractAddress).
		Msg("querying contract")

	resp, err := cc.querier.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contractAddress,
		QueryData: wasmtypes.RawContractMessage(queryMsg),
	})
	if status.Code(err) == codes.NotFound {
		return nil, ErrNoSuchContract.Wrapf("%s: %s", contractAddress, status.Convert(err).Message())
	}
	if err != nil {
		return nil, ErrQuery.Wrapf("contract %s: %s", contractAddress, err)
	}
	return resp.Data, nil
}

// checkSender ensures the transaction can be signed by the identity's key.
func (cc *contractClient) checkSender(sender string) error {
	if _, err := cc.identity.AccountByAddress(sender); err != nil {
		return ErrUnknownSender.Wrap(err.Error())
	}
	return nil
}

// decodeMsgResponse unmarshals the single msg response of txResult into resp.
func decodeMsgResponse(txResult *comettypes.ResultTx, resp proto.Message) error {
	var txMsgData cosmostypes.TxMsgData
	if err := proto.Unmarshal(txResult.TxResult.Data, &txMsgData); err != nil {
		return ErrUnexpectedMsgResponse.Wrapf("decoding tx msg data: %s", err)
	}

	if len(txMsgData.MsgResponses) != 1 {
		return ErrUnexpectedMsgResponse.Wrapf("expected 1 msg response, got %d", len(txMsgData.MsgResponses))
	}

	msgResponse := txMsgData.MsgResponses[0]
	if expectedTypeURL := cosmostypes.MsgTypeURL(resp); msgResponse.TypeUrl != expectedTypeURL {
		return ErrUnexpectedMsgResponse.Wrapf("expected %s, got %s", expectedTypeURL, msgResponse.TypeUrl)
	}

	if err := proto.Unmarshal(msgResponse.Value, resp); err != nil {
		return ErrUnexpectedMsgResponse.Wrapf("decoding %s: %s", msgResponse.TypeUrl, err)
	}
	return nil
}

func newTxResult(txResult *comettypes.ResultTx) client.TxResult {
	return client.TxResult{
		TxHash:    txResult.Hash.String(),
		Height:    txResult.Height,
		GasWanted: txResult.TxResult.GasWanted,
		GasUsed:   txResult.TxResult.GasUsed,
		RawLog:    txResult.TxResult.Log,
	}
}

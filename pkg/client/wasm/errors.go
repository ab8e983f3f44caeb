package wasm

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "wasm_client"

	ErrNoEndpoints           = sdkerrors.Register(codespace, 1, "no RPC endpoints configured")
	ErrNoReachableEndpoint   = sdkerrors.Register(codespace, 2, "no reachable RPC endpoint")
	ErrChainIDMismatch       = sdkerrors.Register(codespace, 3, "RPC endpoint serves a different chain")
	ErrUnknownSender         = sdkerrors.Register(codespace, 4, "sender is not held by the signing identity")
	ErrUnexpectedMsgResponse = sdkerrors.Register(codespace, 5, "unexpected msg response")
	ErrChecksumMismatch      = sdkerrors.Register(codespace, 6, "stored code checksum mismatch")
	ErrQuery                 = sdkerrors.Register(codespace, 7, "smart query failed")
	ErrCompress              = sdkerrors.Register(codespace, 8, "failed to compress wasm code")
	ErrNoSuchContract        = sdkerrors.Register(codespace, 9, "no such contract")
)

package tx

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "tx_client"

	ErrInvalidMsg          = sdkerrors.Register(codespace, 1, "invalid message")
	ErrEmptySigningKeyName = sdkerrors.Register(codespace, 2, "empty signing key name")
	ErrNoSuchSigningKey    = sdkerrors.Register(codespace, 3, "signing key not found in keyring")
	ErrSimulateTx          = sdkerrors.Register(codespace, 4, "failed to simulate tx")
	ErrSignTx              = sdkerrors.Register(codespace, 5, "failed to sign tx")
	ErrBroadcastTx         = sdkerrors.Register(codespace, 6, "failed to broadcast tx")
	ErrCheckTx             = sdkerrors.Register(codespace, 7, "error encountered during CheckTx")
	ErrDeliverTx           = sdkerrors.Register(codespace, 8, "error encountered during DeliverTx")
	ErrCommitTimeout       = sdkerrors.Register(codespace, 9, "tx was not committed before the commit timeout")
	ErrInvalidGasPrices    = sdkerrors.Register(codespace, 10, "invalid gas prices")
)

package wallet

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "wallet"

	ErrInvalidMnemonic = sdkerrors.Register(codespace, 1, "invalid mnemonic")
	ErrKeyring         = sdkerrors.Register(codespace, 2, "keyring error")
	ErrUnknownAccount  = sdkerrors.Register(codespace, 3, "unknown account")
)

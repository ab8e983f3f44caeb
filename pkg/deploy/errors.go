package deploy

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "deploy"

	ErrMissingMnemonic        = sdkerrors.Register(codespace, 1, "MNEMONIC is not set")
	ErrMissingContractAddress = sdkerrors.Register(codespace, 2, "contract address is required")
	ErrMissingMessage         = sdkerrors.Register(codespace, 3, "new message is required")
	ErrInvalidContractAddress = sdkerrors.Register(codespace, 4, "invalid contract address")
	ErrArtifactUnreadable     = sdkerrors.Register(codespace, 5, "contract artifact is unreadable")
	ErrWriteResult            = sdkerrors.Register(codespace, 6, "unable to write deployment result")
)

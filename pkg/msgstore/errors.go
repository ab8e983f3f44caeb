package msgstore

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "msgstore"

	ErrUnexpectedResponse = sdkerrors.Register(codespace, 1, "unexpected contract response")
	ErrInvalidMsg         = sdkerrors.Register(codespace, 2, "invalid contract message")
)

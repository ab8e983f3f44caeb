// Package msgstore describes the JSON messages understood by the message-store
// CosmWasm contract.
//
// The contract holds a single string and its owner (the instantiator):
//   - instantiate: {"message": "<text>"}
//   - execute:     {"update_message": {"message": "<text>"}} (owner only)
//   - query:       {"get_message": {}} -> "<text>"
package msgstore

import (
	"encoding/json"
)

// InstantiateMsg sets the initial message.
type InstantiateMsg struct {
	Message string `json:"message"`
}

// ExecuteMsg is the contract's execute enum; exactly one variant is set.
type ExecuteMsg struct {
	UpdateMessage *UpdateMessage `json:"update_message,omitempty"`
}

// UpdateMessage replaces the stored message.
type UpdateMessage struct {
	Message string `json:"message"`
}

// QueryMsg is the contract's query enum; exactly one variant is set.
type QueryMsg struct {
	GetMessage *GetMessage `json:"get_message,omitempty"`
}

// GetMessage returns the stored message as a JSON string.
type GetMessage struct{}

// NewInstantiateMsg encodes an InstantiateMsg.
func NewInstantiateMsg(message string) []byte {
	return mustMarshal(InstantiateMsg{Message: message})
}

// NewUpdateMessageMsg encodes the update_message execute variant.
func NewUpdateMessageMsg(message string) []byte {
	return mustMarshal(ExecuteMsg{UpdateMessage: &UpdateMessage{Message: message}})
}

// NewGetMessageQuery encodes the get_message query variant.
func NewGetMessageQuery() []byte {
	return mustMarshal(QueryMsg{GetMessage: &GetMessage{}})
}

// DecodeMessageResponse decodes a get_message response, which must be a JSON
// string.
func DecodeMessageResponse(data []byte) (string, error) {
	var message string
	if err := json.Unmarshal(data, &message); err != nil {
		return "", ErrUnexpectedResponse.Wrapf("get_message response %q is not a JSON string: %s", data, err)
	}
	return message, nil
}

// DecodeInstantiateMsg is the contract-side counterpart of NewInstantiateMsg.
func DecodeInstantiateMsg(data []byte) (InstantiateMsg, error) {
	var msg InstantiateMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return InstantiateMsg{}, ErrInvalidMsg.Wrapf("instantiate: %s", err)
	}
	return msg, nil
}

// DecodeExecuteMsg is the contract-side counterpart of NewUpdateMessageMsg.
func DecodeExecuteMsg(data []byte) (ExecuteMsg, error) {
	var msg ExecuteMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return ExecuteMsg{}, ErrInvalidMsg.Wrapf("execute: %s", err)
	}
	if msg.UpdateMessage == nil {
		return ExecuteMsg{}, ErrInvalidMsg.Wrapf("execute: unknown variant in %s", data)
	}
	return msg, nil
}

// DecodeQueryMsg is the contract-side counterpart of NewGetMessageQuery.
func DecodeQueryMsg(data []byte) (QueryMsg, error) {
	var msg QueryMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return QueryMsg{}, ErrInvalidMsg.Wrapf("query: %s", err)
	}
	if msg.GetMessage == nil {
		return QueryMsg{}, ErrInvalidMsg.Wrapf("query: unknown variant in %s", data)
	}
	return msg, nil
}

// EncodeMessageResponse is the contract-side counterpart of DecodeMessageResponse.
func EncodeMessageResponse(message string) []byte {
	return mustMarshal(message)
}

// mustMarshal is only used with values that always encode.
func mustMarshal(v any) []byte {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

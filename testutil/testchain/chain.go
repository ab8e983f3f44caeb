// Package testchain provides an in-memory stand-in for a chain running the
// message-store contract, for tests of the workflows which depend on state
// carried across invocations.
package testchain

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/msgstore/deployer/app"
	"github.com/msgstore/deployer/pkg/client"
	"github.com/msgstore/deployer/pkg/client/wasm"
	"github.com/msgstore/deployer/pkg/msgstore"
	"github.com/msgstore/deployer/pkg/wallet"
)

var (
	codespace = "testchain"

	ErrNoSuchCode     = sdkerrors.Register(codespace, 1, "no such code")
	ErrNoSuchContract = sdkerrors.Register(codespace, 2, "no such contract")
	ErrUnauthorized   = sdkerrors.Register(codespace, 3, "unauthorized")
	ErrWrongChain     = sdkerrors.Register(codespace, 4, "wrong chain id")
)

var _ client.ContractClient = (*Chain)(nil)

type contract struct {
	codeID  uint64
	owner   string
	label   string
	message string
}

// Chain is a fake chain hosting message-store contracts. It is safe for
// concurrent use.
type Chain struct {
	chainID string

	mu        sync.Mutex
	height    int64
	codes     map[uint64][]byte
	contracts map[string]*contract
	dials     int
}

// NewChain returns an empty chain with the given chain id.
func NewChain(chainID string) *Chain {
	return &Chain{
		chainID:   chainID,
		codes:     make(map[uint64][]byte),
		contracts: make(map[string]*contract),
	}
}

// Dialer returns a client.Dialer connecting to the chain. Dialing fails if the
// configured chain id differs.
func (c *Chain) Dialer() client.Dialer {
	return func(
		_ context.Context,
		cfg client.DialConfig,
		_ *wallet.Identity,
	) (client.ContractClient, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.dials++
		if cfg.ChainID != c.chainID {
			return nil, ErrWrongChain.Wrapf("expected %q, got %q", c.chainID, cfg.ChainID)
		}
		return c, nil
	}
}

// Dials returns the number of times the chain was dialed.
func (c *Chain) Dials() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dials
}

// Upload stores the (uncompressed) code.
func (c *Chain) Upload(
	_ context.Context,
	_ string,
	wasmByteCode []byte,
) (*client.UploadResult, error) {
	code, err := wasm.GunzipCode(wasmByteCode)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	codeID := uint64(len(c.codes) + 1)
	c.codes[codeID] = code
	checksum := sha256.Sum256(code)

	return &client.UploadResult{
		TxResult: c.nextTxResult("store_code"),
		CodeID:   codeID,
		Checksum: hex.EncodeToString(checksum[:]),
	}, nil
}

// Instantiate creates a message-store contract owned by sender.
func (c *Chain) Instantiate(
	_ context.Context,
	sender string,
	codeID uint64,
	initMsg []byte,
	label string,
) (*client.InstantiateResult, error) {
	msg, err := msgstore.DecodeInstantiateMsg(initMsg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.codes[codeID]; !ok {
		return nil, ErrNoSuchCode.Wrapf("code id %d", codeID)
	}

	// Like wasmd's classic address generation, derive the address from the
	// code id and an instance sequence.
	instanceSeq := uint64(len(c.contracts) + 1)
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[:8], codeID)
	binary.BigEndian.PutUint64(key[8:], instanceSeq)
	addrHash := sha256.Sum256(key)
	contractAddress := sdk.MustBech32ifyAddressBytes(app.AccountAddressPrefix, addrHash[:])

	c.contracts[contractAddress] = &contract{
		codeID:  codeID,
		owner:   sender,
		label:   label,
		message: msg.Message,
	}

	return &client.InstantiateResult{
		TxResult:        c.nextTxResult("instantiate"),
		ContractAddress: contractAddress,
	}, nil
}

// Execute handles update_message, which only the owner may call.
func (c *Chain) Execute(
	_ context.Context,
	sender string,
	contractAddress string,
	msg []byte,
) (*client.TxResult, error) {
	executeMsg, err := msgstore.DecodeExecuteMsg(msg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	instance, ok := c.contracts[contractAddress]
	if !ok {
		return nil, ErrNoSuchContract.Wrap(contractAddress)
	}
	if instance.owner != sender {
		return nil, ErrUnauthorized.Wrapf("%s is not the owner of %s", sender, contractAddress)
	}

	instance.message = executeMsg.UpdateMessage.Message

	txResult := c.nextTxResult("execute")
	return &txResult, nil
}

// Query handles get_message.
func (c *Chain) Query(
	_ context.Context,
	contractAddress string,
	queryMsg []byte,
) ([]byte, error) {
	if _, err := msgstore.DecodeQueryMsg(queryMsg); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	instance, ok := c.contracts[contractAddress]
	if !ok {
		return nil, ErrNoSuchContract.Wrap(contractAddress)
	}
	return msgstore.EncodeMessageResponse(instance.message), nil
}

// Message returns the message stored by the contract.
func (c *Chain) Message(contractAddress string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	instance, ok := c.contracts[contractAddress]
	if !ok {
		return "", false
	}
	return instance.message, true
}

// nextTxResult commits a new block holding a single tx. c.mu MUST be held.
func (c *Chain) nextTxResult(kind string) client.TxResult {
	c.height++
	txHash := sha256.Sum256([]byte(fmt.Sprintf("%s/%d", kind, c.height)))

	return client.TxResult{
		TxHash:    fmt.Sprintf("%X", txHash),
		Height:    c.height,
		GasWanted: 200000,
		GasUsed:   150000,
	}
}

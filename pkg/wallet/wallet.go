// Package wallet derives the signing identity used by the CLIs from a BIP-39
// mnemonic. Keys only ever live in an in-memory keyring.
package wallet

import (
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tyler-smith/go-bip39"

	"github.com/msgstore/deployer/app"
)

// SenderKeyName is the keyring uid of the key derived from the mnemonic.
const SenderKeyName = "sender"

// Account is a key held by an Identity.
type Account struct {
	// Name is the keyring uid.
	Name string
	// Address is the bech32 encoding of AccAddress using the identity's prefix.
	Address    string
	AccAddress sdk.AccAddress
}

// Identity is a keyring plus the accounts derived into it.
type Identity struct {
	keyring  keyring.Keyring
	prefix   string
	hdPath   string
	accounts []Account
}

// IdentityOption customizes FromMnemonic.
type IdentityOption func(*Identity)

// WithAddressPrefix sets the bech32 prefix of account addresses.
// Defaults to app.AccountAddressPrefix.
func WithAddressPrefix(prefix string) IdentityOption {
	return func(id *Identity) {
		id.prefix = prefix
	}
}

// WithHDPath overrides the derivation path, sdk.FullFundraiserPath by default.
func WithHDPath(hdPath string) IdentityOption {
	return func(id *Identity) {
		id.hdPath = hdPath
	}
}

// FromMnemonic derives the sender key from mnemonic into a new in-memory
// keyring. The mnemonic's whitespace is normalized before validation.
func FromMnemonic(
	cdc codec.Codec,
	mnemonic string,
	opts ...IdentityOption,
) (*Identity, error) {
	id := &Identity{
		keyring: keyring.NewInMemory(cdc),
		prefix:  app.AccountAddressPrefix,
		hdPath:  sdk.FullFundraiserPath,
	}
	for _, opt := range opts {
		opt(id)
	}

	mnemonic = NormalizeMnemonic(mnemonic)
	if mnemonic == "" {
		return nil, ErrInvalidMnemonic.Wrap("mnemonic is empty")
	}
	// Never include the mnemonic itself in the error.
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic.Wrapf(
			"mnemonic of %d words failed BIP-39 validation",
			len(strings.Fields(mnemonic)),
		)
	}

	record, err := id.keyring.NewAccount(
		SenderKeyName,
		mnemonic,
		keyring.DefaultBIP39Passphrase,
		id.hdPath,
		hd.Secp256k1,
	)
	if err != nil {
		return nil, ErrKeyring.Wrapf("deriving key %q: %s", SenderKeyName, err)
	}

	accAddress, err := record.GetAddress()
	if err != nil {
		return nil, ErrKeyring.Wrapf("getting address of key %q: %s", SenderKeyName, err)
	}

	address, err := sdk.Bech32ifyAddressBytes(id.prefix, accAddress)
	if err != nil {
		return nil, ErrKeyring.Wrapf("encoding address with prefix %q: %s", id.prefix, err)
	}

	id.accounts = append(id.accounts, Account{
		Name:       SenderKeyName,
		Address:    address,
		AccAddress: accAddress,
	})
	return id, nil
}

// NormalizeMnemonic collapses all whitespace runs to single spaces.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

// Keyring returns the in-memory keyring holding the identity's keys.
func (id *Identity) Keyring() keyring.Keyring {
	return id.keyring
}

// Sender is the first account, which signs every transaction.
func (id *Identity) Sender() Account {
	return id.accounts[0]
}

// AccountByAddress looks up the account with the given bech32 address.
func (id *Identity) AccountByAddress(address string) (Account, error) {
	for _, account := range id.accounts {
		if account.Address == address {
			return account, nil
		}
	}
	return Account{}, ErrUnknownAccount.Wrapf("no key for address %s", address)
}

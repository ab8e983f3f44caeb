package app

import (
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// Name is used as the keyring service name and the default config file name.
	Name = "msgstore"

	// AccountAddressPrefix is the bech32 human readable part of Babylon
	// account addresses.
	AccountAddressPrefix = "bbn"
)

var initSDKConfigOnce sync.Once

// InitSDKConfig sets and seals the cosmos-sdk bech32 prefixes so that
// sdk.AccAddress#String() (used by the auth account retriever) renders
// Babylon addresses. It is safe to call more than once.
func InitSDKConfig() {
	initSDKConfigOnce.Do(func() {
		accountPubKeyPrefix := AccountAddressPrefix + "pub"
		validatorAddressPrefix := AccountAddressPrefix + "valoper"
		validatorPubKeyPrefix := AccountAddressPrefix + "valoperpub"
		consNodeAddressPrefix := AccountAddressPrefix + "valcons"
		consNodePubKeyPrefix := AccountAddressPrefix + "valconspub"

		config := sdk.GetConfig()
		config.SetBech32PrefixForAccount(AccountAddressPrefix, accountPubKeyPrefix)
		config.SetBech32PrefixForValidator(validatorAddressPrefix, validatorPubKeyPrefix)
		config.SetBech32PrefixForConsensusNode(consNodeAddressPrefix, consNodePubKeyPrefix)
		config.Seal()
	})
}

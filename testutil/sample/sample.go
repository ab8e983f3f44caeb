package sample

import (
	"crypto/sha256"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/msgstore/deployer/app"
)

// AccAddress returns a random sample account address with the Babylon prefix.
func AccAddress() string {
	pk := secp256k1.GenPrivKey().PubKey()
	return sdk.MustBech32ifyAddressBytes(app.AccountAddressPrefix, pk.Address())
}

// ContractAddress returns a random sample contract address. Like real
// CosmWasm contract addresses, it is 32 bytes long.
func ContractAddress() string {
	pk := secp256k1.GenPrivKey().PubKey()
	addr := sha256.Sum256(pk.Bytes())
	return sdk.MustBech32ifyAddressBytes(app.AccountAddressPrefix, addr[:])
}

// WasmCode returns a minimal byte string carrying the wasm magic number and
// version, followed by size filler bytes.
func WasmCode(size int) []byte {
	code := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	for i := 0; i < size; i++ {
		code = append(code, byte(i))
	}
	return code
}

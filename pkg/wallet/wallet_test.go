package wallet_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/msgstore/deployer/app"
	"github.com/msgstore/deployer/pkg/wallet"
)

const testMnemonic = "baby advance work soap slow exclude blur humble lucky rough teach wide chuckle captain rack laundry butter main very cannon donate armor dress follow"

func TestFromMnemonic(t *testing.T) {
	encCfg, err := app.MakeEncodingConfig()
	require.NoError(t, err)

	id, err := wallet.FromMnemonic(encCfg.Codec, testMnemonic)
	require.NoError(t, err)

	require.Equal(t, wallet.SenderKeyName, id.Sender().Name)
	require.True(t, strings.HasPrefix(id.Sender().Address, "bbn1"))

	accAddress, err := sdk.GetFromBech32(id.Sender().Address, app.AccountAddressPrefix)
	require.NoError(t, err)
	require.Equal(t, []byte(id.Sender().AccAddress), accAddress)

	record, err := id.Keyring().Key(wallet.SenderKeyName)
	require.NoError(t, err)
	recordAddress, err := record.GetAddress()
	require.NoError(t, err)
	require.Equal(t, id.Sender().AccAddress, recordAddress)

	account, err := id.AccountByAddress(id.Sender().Address)
	require.NoError(t, err)
	require.Equal(t, id.Sender(), account)

	_, err = id.AccountByAddress("bbn1unknown")
	require.ErrorIs(t, err, wallet.ErrUnknownAccount)
}

func TestFromMnemonic_Deterministic(t *testing.T) {
	encCfg, err := app.MakeEncodingConfig()
	require.NoError(t, err)

	id1, err := wallet.FromMnemonic(encCfg.Codec, testMnemonic)
	require.NoError(t, err)

	// Extra whitespace is normalized away.
	spaced := "  " + strings.ReplaceAll(testMnemonic, " ", "\n  ") + "\n"
	id2, err := wallet.FromMnemonic(encCfg.Codec, spaced)
	require.NoError(t, err)
	require.Equal(t, id1.Sender().Address, id2.Sender().Address)

	// A different prefix encodes the same key.
	id3, err := wallet.FromMnemonic(encCfg.Codec, testMnemonic, wallet.WithAddressPrefix("cosmos"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id3.Sender().Address, "cosmos1"))
	require.Equal(t, id1.Sender().AccAddress, id3.Sender().AccAddress)

	// A different HD path derives a different key.
	id4, err := wallet.FromMnemonic(encCfg.Codec, testMnemonic, wallet.WithHDPath("m/44'/118'/0'/0/1"))
	require.NoError(t, err)
	require.NotEqual(t, id1.Sender().Address, id4.Sender().Address)
}

func TestFromMnemonic_Invalid(t *testing.T) {
	encCfg, err := app.MakeEncodingConfig()
	require.NoError(t, err)

	tests := []struct {
		desc     string
		mnemonic string
	}{
		{desc: "empty", mnemonic: ""},
		{desc: "whitespace only", mnemonic: " \t\n"},
		{desc: "not a bip39 phrase", mnemonic: "not a valid mnemonic at all"},
		{desc: "bad checksum", mnemonic: strings.TrimSpace(strings.Repeat("abandon ", 12))},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := wallet.FromMnemonic(encCfg.Codec, test.mnemonic)
			require.ErrorIs(t, err, wallet.ErrInvalidMnemonic)
			if strings.TrimSpace(test.mnemonic) != "" {
				require.NotContains(t, err.Error(), strings.TrimSpace(test.mnemonic))
			}
		})
	}
}

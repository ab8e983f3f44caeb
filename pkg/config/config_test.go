package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/msgstore/deployer/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(config.WithConfigSearchPaths(t.TempDir()))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	require.Equal(t, config.DefaultRPCEndpoint, cfg.RPCEndpoint)
	require.Equal(t, config.DefaultChainID, cfg.ChainID)
	require.Equal(t, config.DefaultGasPrice, cfg.GasPrice)
	require.Equal(t, config.DefaultGasAdjustment, cfg.GasAdjustment)
	require.Equal(t, "bbn", cfg.AddressPrefix)
	require.Equal(t, config.DefaultRPCEndpoints, cfg.Endpoints())
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		desc     string
		env      string
		value    string
		expectFn func(t *testing.T, cfg config.Config)
	}{
		{
			desc:  "rpc endpoint",
			env:   config.EnvRPCEndpoint,
			value: "http://localhost:26657",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, "http://localhost:26657", cfg.RPCEndpoint)
				require.Equal(t, []string{"http://localhost:26657"}, cfg.Endpoints())
			},
		},
		{
			desc:  "chain id",
			env:   config.EnvChainID,
			value: "bbn-localnet",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, "bbn-localnet", cfg.ChainID)
			},
		},
		{
			desc:  "gas price",
			env:   config.EnvGasPrice,
			value: "0.01ubbn",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, "0.01ubbn", cfg.GasPrice)
			},
		},
		{
			desc:  "gas adjustment",
			env:   config.EnvGasAdjustment,
			value: "1.5",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, 1.5, cfg.GasAdjustment)
			},
		},
		{
			desc:  "commit timeout",
			env:   config.EnvCommitTimeout,
			value: "90s",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, 90*time.Second, cfg.CommitTimeout)
			},
		},
		{
			desc:  "wasm path",
			env:   config.EnvWasmPath,
			value: "./artifacts/message_store.wasm",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, "./artifacts/message_store.wasm", cfg.WasmPath)
			},
		},
		{
			desc:  "hd path",
			env:   config.EnvHDPath,
			value: "m/44'/118'/0'/0/1",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, "m/44'/118'/0'/0/1", cfg.HDPath)
			},
		},
		{
			desc:  "empty value falls back to default",
			env:   config.EnvChainID,
			value: "",
			expectFn: func(t *testing.T, cfg config.Config) {
				require.Equal(t, config.DefaultChainID, cfg.ChainID)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.env, test.value)

			cfg, err := config.Load(config.WithConfigSearchPaths(t.TempDir()))
			require.NoError(t, err)
			test.expectFn(t, cfg)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	configDir := t.TempDir()
	configYAML := `chain_id: bbn-devnet
gas_price: 0.005ubbn
contract_label: my_store
`
	err := os.WriteFile(filepath.Join(configDir, config.DefaultConfigFileName+".yaml"), []byte(configYAML), 0o600)
	require.NoError(t, err)

	cfg, err := config.Load(config.WithConfigSearchPaths(configDir))
	require.NoError(t, err)
	require.Equal(t, "bbn-devnet", cfg.ChainID)
	require.Equal(t, "0.005ubbn", cfg.GasPrice)
	require.Equal(t, "my_store", cfg.ContractLabel)
	require.Equal(t, config.DefaultInitialMessage, cfg.InitialMessage)

	// Environment takes precedence over the config file.
	t.Setenv(config.EnvChainID, "bbn-test-5")
	cfg, err = config.Load(config.WithConfigSearchPaths(configDir))
	require.NoError(t, err)
	require.Equal(t, "bbn-test-5", cfg.ChainID)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(config.WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.ErrorIs(t, err, config.ErrReadConfigFile)
}

func TestLoad_InvalidGasPrice(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvGasPrice, "not-a-price")

	// Load leaves validation to the caller, which may still override the value.
	cfg, err := config.Load(config.WithConfigSearchPaths(t.TempDir()))
	require.NoError(t, err)
	require.Equal(t, "not-a-price", cfg.GasPrice)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg.GasPrice = config.DefaultGasPrice
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.ChainID = ""
	cfg.GasAdjustment = 0
	cfg.ContractLabel = ""
	cfg.HDPath = "m/44'/118'"
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorContains(t, err, "chain id")
	require.ErrorContains(t, err, "gas adjustment")
	require.ErrorContains(t, err, "contract label")
	require.ErrorContains(t, err, "hd path")
}

func TestConfig_Endpoints(t *testing.T) {
	cfg := config.Default()
	cfg.RPCEndpoints = []string{
		config.DefaultRPCEndpoint,
		" ",
		"https://rpc-babylon-testnet.imperator.co",
	}
	require.Equal(t, []string{
		config.DefaultRPCEndpoint,
		"https://rpc-babylon-testnet.imperator.co",
	}, cfg.Endpoints())

	cfg.RPCEndpoint = ""
	cfg.RPCEndpoints = nil
	require.Empty(t, cfg.Endpoints())
}

func TestMnemonicFromEnv(t *testing.T) {
	t.Setenv(config.EnvMnemonic, "  word word  ")
	require.Equal(t, "word word", config.MnemonicFromEnv())

	t.Setenv(config.EnvMnemonic, "")
	require.Empty(t, config.MnemonicFromEnv())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables which are present, even if empty.
	require.NoError(t, os.Unsetenv(config.EnvChainID))

	dotEnvPath := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(dotEnvPath, []byte("CHAIN_ID=bbn-from-dotenv\nGAS_PRICE=0.003ubbn\n"), 0o600)
	require.NoError(t, err)

	// Already-set variables are not overridden.
	t.Setenv(config.EnvGasPrice, "0.004ubbn")

	require.NoError(t, config.LoadDotEnv(dotEnvPath, filepath.Join(t.TempDir(), "missing.env")))

	cfg, err := config.Load(config.WithConfigSearchPaths(t.TempDir()))
	require.NoError(t, err)
	require.Equal(t, "bbn-from-dotenv", cfg.ChainID)
	require.Equal(t, "0.004ubbn", cfg.GasPrice)
}

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into the test; empty values are treated as unset.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, env := range []string{
		config.EnvRPCEndpoint,
		config.EnvRPCEndpoints,
		config.EnvChainID,
		config.EnvGasPrice,
		config.EnvGasAdjustment,
		config.EnvContractLabel,
		config.EnvInitialMessage,
		config.EnvWasmPath,
		config.EnvCommitTimeout,
		config.EnvHDPath,
	} {
		t.Setenv(env, "")
	}
}

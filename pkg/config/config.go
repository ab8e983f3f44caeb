package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/msgstore/deployer/app"
)

// Environment variables recognized by Load. Except for EnvMnemonic, each one
// overrides the config key of the same name (lower-cased) when it is set to a
// non-empty value.
const (
	EnvMnemonic       = "MNEMONIC"
	EnvRPCEndpoint    = "RPC_ENDPOINT"
	EnvRPCEndpoints   = "RPC_ENDPOINTS"
	EnvChainID        = "CHAIN_ID"
	EnvGasPrice       = "GAS_PRICE"
	EnvGasAdjustment  = "GAS_ADJUSTMENT"
	EnvContractLabel  = "CONTRACT_LABEL"
	EnvInitialMessage = "INITIAL_MESSAGE"
	EnvWasmPath       = "WASM_PATH"
	EnvCommitTimeout  = "COMMIT_TIMEOUT"
	EnvHDPath         = "HD_PATH"
)

// Defaults target the Babylon testnet.
const (
	DefaultRPCEndpoint    = "https://babylon-testnet-rpc.nodes.guru"
	DefaultChainID        = "bbn-test-5"
	DefaultGasPrice       = "0.002ubbn"
	DefaultGasAdjustment  = 1.3
	DefaultContractLabel  = "message_store"
	DefaultInitialMessage = "initial message"
	DefaultWasmPath       = "../babylon_contract.wasm"
	DefaultCommitTimeout  = 60 * time.Second
	DefaultHDPath         = sdk.FullFundraiserPath

	// DefaultConfigFileName is the name (without extension) of the optional
	// YAML config file searched for in DefaultConfigSearchPaths.
	DefaultConfigFileName = app.Name
)

var (
	// DefaultRPCEndpoints are tried in order when RPC_ENDPOINT is not overridden.
	DefaultRPCEndpoints = []string{
		"https://babylon-testnet-rpc.nodes.guru",
		"https://babylon-testnet-rpc.polkachu.com",
		"https://rpc-babylon-testnet.imperator.co",
	}

	DefaultConfigSearchPaths = []string{".", "$HOME/." + app.Name}
)

// config keys, as used in the YAML config file.
const (
	keyRPCEndpoint    = "rpc_endpoint"
	keyRPCEndpoints   = "rpc_endpoints"
	keyChainID        = "chain_id"
	keyGasPrice       = "gas_price"
	keyGasAdjustment  = "gas_adjustment"
	keyContractLabel  = "contract_label"
	keyInitialMessage = "initial_message"
	keyWasmPath       = "wasm_path"
	keyCommitTimeout  = "commit_timeout"
	keyHDPath         = "hd_path"
)

var envByKey = map[string]string{
	keyRPCEndpoint:    EnvRPCEndpoint,
	keyRPCEndpoints:   EnvRPCEndpoints,
	keyChainID:        EnvChainID,
	keyGasPrice:       EnvGasPrice,
	keyGasAdjustment:  EnvGasAdjustment,
	keyContractLabel:  EnvContractLabel,
	keyInitialMessage: EnvInitialMessage,
	keyWasmPath:       EnvWasmPath,
	keyCommitTimeout:  EnvCommitTimeout,
	keyHDPath:         EnvHDPath,
}

// Config is the effective configuration of a single CLI invocation.
// It is constructed once by Load and passed by value from then on.
type Config struct {
	// RPCEndpoint is the primary CometBFT RPC endpoint.
	RPCEndpoint string `mapstructure:"rpc_endpoint" yaml:"rpc_endpoint"`
	// RPCEndpoints are fallbacks, only consulted when RPCEndpoint is the default.
	RPCEndpoints []string `mapstructure:"rpc_endpoints" yaml:"rpc_endpoints"`
	ChainID      string   `mapstructure:"chain_id" yaml:"chain_id"`
	// GasPrice is a cosmos-sdk DecCoins string (e.g. "0.002ubbn").
	GasPrice      string  `mapstructure:"gas_price" yaml:"gas_price"`
	GasAdjustment float64 `mapstructure:"gas_adjustment" yaml:"gas_adjustment"`

	ContractLabel  string `mapstructure:"contract_label" yaml:"contract_label"`
	InitialMessage string `mapstructure:"initial_message" yaml:"initial_message"`
	// WasmPath is the compiled contract artifact, relative to the working directory.
	WasmPath string `mapstructure:"wasm_path" yaml:"wasm_path"`

	// CommitTimeout bounds how long to wait for a broadcast tx to be included in a block.
	CommitTimeout time.Duration `mapstructure:"commit_timeout" yaml:"commit_timeout"`

	// HDPath is the BIP-44 path the sender key is derived at.
	HDPath string `mapstructure:"hd_path" yaml:"hd_path"`

	// AddressPrefix is fixed to the Babylon account prefix.
	AddressPrefix string `mapstructure:"-" yaml:"-"`
}

// Default returns the static default configuration.
func Default() Config {
	return Config{
		RPCEndpoint:    DefaultRPCEndpoint,
		RPCEndpoints:   append([]string(nil), DefaultRPCEndpoints...),
		ChainID:        DefaultChainID,
		GasPrice:       DefaultGasPrice,
		GasAdjustment:  DefaultGasAdjustment,
		ContractLabel:  DefaultContractLabel,
		InitialMessage: DefaultInitialMessage,
		WasmPath:       DefaultWasmPath,
		CommitTimeout:  DefaultCommitTimeout,
		HDPath:         DefaultHDPath,
		AddressPrefix:  app.AccountAddressPrefix,
	}
}

type loader struct {
	configFile  string
	searchPaths []string
}

// LoadOption customizes where Load looks for a config file.
type LoadOption func(*loader)

// WithConfigFile makes Load read the given config file. Unlike the default
// search, a missing file is an error.
func WithConfigFile(path string) LoadOption {
	return func(ld *loader) {
		ld.configFile = path
	}
}

// WithConfigSearchPaths replaces DefaultConfigSearchPaths.
func WithConfigSearchPaths(paths ...string) LoadOption {
	return func(ld *loader) {
		ld.searchPaths = paths
	}
}

// Load resolves the effective configuration. Values are read from the following
// sources in order of precedence (highest to lowest):
// 1. Non-empty environment variables (see the Env* constants)
// 2. The config file, if any
// 3. Default()
//
// The result is not validated, since callers MAY override it further (e.g.
// with flags); call Config.Validate once it is final.
// The mnemonic is not part of Config; see MnemonicFromEnv.
func Load(opts ...LoadOption) (Config, error) {
	ld := &loader{searchPaths: DefaultConfigSearchPaths}
	for _, opt := range opts {
		opt(ld)
	}

	// A private viper instance keeps the resolved values out of global state.
	v := viper.New()
	setViperDefaults(v, Default())

	for key, env := range envByKey {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, ErrInvalidConfig.Wrapf("binding %s: %s", env, err)
		}
	}

	if err := readConfigFile(v, ld); err != nil {
		return Config{}, err
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err.Error())
	}
	cfg.AddressPrefix = app.AccountAddressPrefix

	return cfg, nil
}

func setViperDefaults(v *viper.Viper, defaults Config) {
	v.SetDefault(keyRPCEndpoint, defaults.RPCEndpoint)
	v.SetDefault(keyRPCEndpoints, defaults.RPCEndpoints)
	v.SetDefault(keyChainID, defaults.ChainID)
	v.SetDefault(keyGasPrice, defaults.GasPrice)
	v.SetDefault(keyGasAdjustment, defaults.GasAdjustment)
	v.SetDefault(keyContractLabel, defaults.ContractLabel)
	v.SetDefault(keyInitialMessage, defaults.InitialMessage)
	v.SetDefault(keyWasmPath, defaults.WasmPath)
	v.SetDefault(keyCommitTimeout, defaults.CommitTimeout)
	v.SetDefault(keyHDPath, defaults.HDPath)
}

// readConfigFile loads the config file given by WithConfigFile or, failing
// that, the first DefaultConfigFileName.yaml found in the search paths.
func readConfigFile(v *viper.Viper, ld *loader) error {
	if ld.configFile != "" {
		v.SetConfigFile(ld.configFile)
	} else {
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
		for _, path := range ld.searchPaths {
			v.AddConfigPath(path)
		}
	}

	err := v.ReadInConfig()
	switch {
	case err == nil:
		return nil
	// It's okay if no config file was found while searching; configuration
	// MAY be done via environment variables only.
	case ld.configFile == "" && errors.As(err, &viper.ConfigFileNotFoundError{}):
		return nil
	default:
		return ErrReadConfigFile.Wrap(err.Error())
	}
}

// Validate checks the configuration for correctness:
// - ChainID must be set
// - at least one RPC endpoint must be set
// - GasPrice must parse as non-empty cosmos-sdk DecCoins
// - GasAdjustment and CommitTimeout must be positive
// - ContractLabel must be set
// - HDPath must be a valid BIP-44 path
//
// All violations are reported together.
func (cfg Config) Validate() error {
	var errs error

	if cfg.ChainID == "" {
		errs = multierr.Append(errs, ErrInvalidConfig.Wrap("chain id MUST be set"))
	}

	if len(cfg.Endpoints()) == 0 {
		errs = multierr.Append(errs, ErrInvalidConfig.Wrap("at least one RPC endpoint MUST be set"))
	}

	if _, err := cfg.GasPrices(); err != nil {
		errs = multierr.Append(errs, err)
	}

	if cfg.GasAdjustment <= 0 {
		errs = multierr.Append(errs, ErrInvalidConfig.Wrapf("gas adjustment MUST be positive, got %v", cfg.GasAdjustment))
	}

	if cfg.CommitTimeout <= 0 {
		errs = multierr.Append(errs, ErrInvalidConfig.Wrapf("commit timeout MUST be positive, got %s", cfg.CommitTimeout))
	}

	if cfg.ContractLabel == "" {
		errs = multierr.Append(errs, ErrInvalidConfig.Wrap("contract label MUST be set"))
	}

	if _, err := hd.NewParamsFromPath(cfg.HDPath); err != nil {
		errs = multierr.Append(errs, ErrInvalidConfig.Wrapf("hd path %q: %s", cfg.HDPath, err))
	}

	return errs
}

// GasPrices parses GasPrice.
func (cfg Config) GasPrices() (sdk.DecCoins, error) {
	gasPrices, err := sdk.ParseDecCoins(cfg.GasPrice)
	if err != nil {
		return nil, ErrInvalidConfig.Wrapf("gas price %q: %s", cfg.GasPrice, err)
	}
	if gasPrices.Empty() {
		return nil, ErrInvalidConfig.Wrap("gas price MUST be set")
	}
	return gasPrices, nil
}

// Endpoints returns the RPC endpoints to try, in order. An overridden
// RPCEndpoint is used exclusively; otherwise the default endpoint is followed
// by the fallbacks.
func (cfg Config) Endpoints() []string {
	if cfg.RPCEndpoint != "" && cfg.RPCEndpoint != DefaultRPCEndpoint {
		return []string{cfg.RPCEndpoint}
	}

	seen := make(map[string]struct{})
	var endpoints []string
	for _, endpoint := range append([]string{cfg.RPCEndpoint}, cfg.RPCEndpoints...) {
		endpoint = strings.TrimSpace(endpoint)
		if endpoint == "" {
			continue
		}
		if _, ok := seen[endpoint]; ok {
			continue
		}
		seen[endpoint] = struct{}{}
		endpoints = append(endpoints, endpoint)
	}
	return endpoints
}

// MnemonicFromEnv returns the signing mnemonic, or "" if MNEMONIC is unset.
func MnemonicFromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvMnemonic))
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env") into
// the process environment. Variables which are already set are not
// overridden and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		err := godotenv.Load(path)
		switch {
		case err == nil, errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return ErrLoadDotEnv.Wrapf("%s: %s", path, err)
		}
	}
	return nil
}

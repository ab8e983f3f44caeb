package flags

const (
	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"
	DefaultLogLevel   = "info"

	FlagLogOutput      = "log-output"
	FlagLogOutputUsage = "The logging output (file path); defaults to stderr"
	DefaultLogOutput   = "-"

	FlagConfig      = "config"
	FlagConfigUsage = "path to a YAML config file; by default msgstore.yaml is searched for in the working directory and $HOME/.msgstore"

	FlagOutputFile      = "output-file"
	FlagOutputFileUsage = "path to a YAML file where the deployment result (code id, contract address, tx hashes) will be written"

	FlagSmokeTest      = "test"
	FlagSmokeTestUsage = "after instantiating, query the message, update it and query it again"

	// Usages of the cosmos-sdk client flags registered by cmd.AddNetworkFlagsToCmd.
	FlagNodeUsage          = "CometBFT RPC endpoint; overrides RPC_ENDPOINT and disables the fallback endpoints"
	FlagChainIDUsage       = "chain id the RPC endpoint must serve; overrides CHAIN_ID"
	FlagGasPricesUsage     = "gas prices in decimal coins (e.g. 0.002ubbn); overrides GAS_PRICE"
	FlagGasAdjustmentUsage = "factor applied to the simulated gas; overrides GAS_ADJUSTMENT"
)

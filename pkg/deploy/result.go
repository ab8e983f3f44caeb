package deploy

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/msgstore/deployer/pkg/client"
)

// DeployResult describes a deployed contract. It is what `deploy
// --output-file` persists.
type DeployResult struct {
	ChainID         string          `yaml:"chain_id"`
	Sender          string          `yaml:"sender"`
	CodeID          uint64          `yaml:"code_id"`
	Checksum        string          `yaml:"checksum"`
	ContractAddress string          `yaml:"contract_address"`
	Label           string          `yaml:"label"`
	UploadTx        client.TxResult `yaml:"upload_tx"`
	InstantiateTx   client.TxResult `yaml:"instantiate_tx"`
	// SmokeTest is only set when the smoke test was run.
	SmokeTest *SmokeTestReport `yaml:"smoke_test,omitempty"`
}

// SmokeTestReport holds the two query results around the smoke test update.
type SmokeTestReport struct {
	InitialMessage string          `yaml:"initial_message"`
	ExecuteTx      client.TxResult `yaml:"execute_tx"`
	UpdatedMessage string          `yaml:"updated_message"`
}

// WriteFile writes the result as YAML, replacing any existing file.
func (result *DeployResult) WriteFile(path string) error {
	resultYAML, err := yaml.Marshal(result)
	if err != nil {
		return ErrWriteResult.Wrap(err.Error())
	}

	if err = os.WriteFile(path, resultYAML, 0o644); err != nil {
		return ErrWriteResult.Wrap(err.Error())
	}
	return nil
}

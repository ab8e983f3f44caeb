// Package client defines the narrow chain capabilities the deploy and update
// workflows depend on: uploading, instantiating, executing and querying a
// CosmWasm contract, plus the transaction plumbing beneath them.
//
// The concrete implementation lives in the wasm and tx subpackages and is
// built on the cosmos-sdk client libraries. Workflows only depend on the
// interfaces defined here so that they can be tested without a network.
package client

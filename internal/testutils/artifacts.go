// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// StorageABI is the ABI of a contract with a no-argument constructor.
const StorageABI = `[{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},` +
	`{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}]`

// StorageBytecode is creation code returning an empty runtime.
const StorageBytecode = "0x6080604052348015600f57600080fd5b50603f80601d6000396000f3fe"

// WriteHardhatArtifact writes <dir>/contracts/<name>.sol/<name>.json and
// returns its path.
func WriteHardhatArtifact(t *testing.T, dir, name, bytecode string) string {
	t.Helper()
	path := filepath.Join(dir, "contracts", name+".sol", name+".json")
	body := fmt.Sprintf(`{"_format":"hh-sol-artifact-1","contractName":%q,"sourceName":"contracts/%s.sol","abi":%s,"bytecode":%q}`,
		name, name, StorageABI, bytecode)
	writeFile(t, path, body)
	return path
}

// WriteForgeArtifact writes <dir>/<name>.sol/<name>.json in the Foundry
// layout and returns its path.
func WriteForgeArtifact(t *testing.T, dir, name, bytecode string) string {
	t.Helper()
	path := filepath.Join(dir, name+".sol", name+".json")
	body := fmt.Sprintf(`{"abi":%s,"bytecode":{"object":%q,"linkReferences":{}},"deployedBytecode":{"object":"0x"}}`,
		StorageABI, bytecode)
	writeFile(t, path, body)
	return path
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

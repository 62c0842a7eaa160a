// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/crowdfund/pkg/ux"
	"github.com/stretchr/testify/require"
)

const (
	// first Hardhat/Anvil development account
	HardhatKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	HardhatAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	SepoliaConfig = `defaultNetwork: sepolia
networks:
  sepolia:
    url: https://rpc.sepolia.org
    chainId: 11155111
    confirm: true
`
)

var crowdfundEnv = []string{
	"CROWDFUND_NETWORK",
	"CROWDFUND_RPC_URL",
	"CROWDFUND_PRIVATE_KEY",
	"CROWDFUND_MNEMONIC",
	"CROWDFUND_ARTIFACTS",
	"CROWDFUND_ARTIFACTS_DIR",
	"CROWDFUND_GAS_LIMIT",
	"CROWDFUND_DEFAULTNETWORK",
	"CROWDFUND_NON_INTERACTIVE",
	"CI",
}

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(io.Discard)
	return require.New(t)
}

// Isolate points HOME and the working directory at a fresh temp dir and
// clears CROWDFUND_* variables. It returns the directory.
func Isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, name := range crowdfundEnv {
		t.Setenv(name, "")
	}
	t.Chdir(dir)
	return dir
}

// WriteConfig writes [body] as a config file in [dir] and returns its path.
func WriteConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "test-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

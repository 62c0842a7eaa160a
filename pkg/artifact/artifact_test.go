// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testABI = `[{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},` +
		`{"inputs":[],"name":"goal","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

	hardhatArtifact = `{"_format":"hh-sol-artifact-1","contractName":"Crowdfunding",` +
		`"sourceName":"contracts/Crowdfunding.sol","abi":` + testABI + `,"bytecode":"0x6080604052","deployedBytecode":"0x6080"}`

	forgeArtifact = `{"abi":` + testABI + `,"bytecode":{"object":"0x6080604052","linkReferences":{}},` +
		`"deployedBytecode":{"object":"0x6080"}}`

	interfaceArtifact = `{"contractName":"ICrowdfunding","abi":` + testABI + `,"bytecode":"0x"}`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadHardhatLayout(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "contracts", "Crowdfunding.sol", "Crowdfunding.json"), hardhatArtifact)
	writeFile(t, filepath.Join(dir, "contracts", "Crowdfunding.sol", "Crowdfunding.dbg.json"), `{"buildInfo":"x"}`)

	a, err := Load(dir, "Crowdfunding")
	require.NoError(err)
	require.Equal("Crowdfunding", a.ContractName)
	require.Equal("contracts/Crowdfunding.sol", a.SourceName)
	require.Equal([]byte{0x60, 0x80, 0x60, 0x40, 0x52}, a.Bytecode)
	require.Contains(a.ABI.Methods, "goal")
}

func TestLoadForgeLayout(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Crowdfunding.sol", "Crowdfunding.json"), forgeArtifact)

	a, err := Load(dir, "Crowdfunding")
	require.NoError(err)
	require.Equal("Crowdfunding", a.ContractName)
	require.Equal([]byte{0x60, 0x80, 0x60, 0x40, 0x52}, a.Bytecode)
}

func TestLoadNestedSource(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "build-info", "Crowdfunding.json"), `not json`)
	writeFile(t, filepath.Join(dir, "contracts", "funding", "Campaigns.sol", "Crowdfunding.json"), hardhatArtifact)

	path, err := Find(dir, "Crowdfunding")
	require.NoError(err)
	require.Equal(filepath.Join(dir, "contracts", "funding", "Campaigns.sol", "Crowdfunding.json"), path)
}

func TestLoadMissingArtifact(t *testing.T) {
	require := require.New(t)

	_, err := Load(t.TempDir(), "Crowdfunding")
	require.ErrorIs(err, ErrArtifactNotFound)

	_, err = Load(filepath.Join(t.TempDir(), "does-not-exist"), "Crowdfunding")
	require.ErrorIs(err, ErrArtifactNotFound)

	_, err = Load(t.TempDir(), "")
	require.ErrorIs(err, ErrArtifactNotFound)
}

func TestLoadInterfaceHasNoBytecode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "contracts", "ICrowdfunding.sol", "ICrowdfunding.json"), interfaceArtifact)

	_, err := Load(dir, "ICrowdfunding")
	require.ErrorIs(t, err, ErrNoBytecode)
}

func TestParseRejectsBrokenFiles(t *testing.T) {
	require := require.New(t)

	_, err := Parse("a.json", []byte(`{`))
	require.Error(err)

	_, err = Parse("b.json", []byte(`{"bytecode":"0x60"}`))
	require.ErrorContains(err, "no abi")

	_, err = Parse("c.json", []byte(`{"abi":[{"type":"bogus"}],"bytecode":"0x60"}`))
	require.Error(err)

	_, err = Parse("d.json", []byte(`{"abi":[],"bytecode":"0xzz"}`))
	require.ErrorContains(err, "invalid bytecode")
}

func TestParseNamesFromFile(t *testing.T) {
	a, err := Parse(filepath.Join("out", "Crowdfunding.sol", "Crowdfunding.json"), []byte(forgeArtifact))
	require.NoError(t, err)
	require.Equal(t, "Crowdfunding", a.ContractName)
}

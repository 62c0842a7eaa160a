// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package artifact resolves precompiled contract artifacts from Hardhat and
// Foundry build output.
package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common/hexutil"
)

var (
	ErrArtifactNotFound = errors.New("contract artifact not found")
	ErrNoBytecode       = errors.New("contract artifact has no bytecode")
)

const (
	buildInfoDir  = "build-info"
	debugFileSuff = ".dbg.json"
)

// Artifact is a compiled contract ready to be deployed.
type Artifact struct {
	ContractName string
	SourceName   string
	ABI          abi.ABI
	Bytecode     []byte
	Path         string
}

// on-disk shape shared by hardhat and forge; bytecode is either a hex
// string (hardhat) or an object with an "object" field (forge)
type artifactFile struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

type forgeBytecode struct {
	Object string `json:"object"`
}

// Load finds the artifact for contract [name] below [dir] and parses it.
func Load(dir, name string) (*Artifact, error) {
	path, err := Find(dir, name)
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// Find returns the path of the artifact for contract [name] below [dir].
// The hardhat layout is tried first, then the forge layout, then any
// <name>.json found walking [dir].
func Find(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty contract name", ErrArtifactNotFound)
	}
	fileName := name + ".json"
	candidates := []string{
		filepath.Join(dir, "contracts", name+".sol", fileName),
		filepath.Join(dir, name+".sol", fileName),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	found := ""
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == buildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == fileName && !strings.HasSuffix(path, debugFileSuff) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, fs.ErrNotExist) {
		return "", fmt.Errorf("failed searching %s for %s: %w", dir, fileName, walkErr)
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s in %s (did you compile the contracts?)", ErrArtifactNotFound, name, dir)
	}
	return found, nil
}

// ReadFile parses the artifact stored at [path].
func ReadFile(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, err
	}
	return Parse(path, data)
}

// Parse decodes artifact JSON. [path] is only used for naming and errors.
func Parse(path string, data []byte) (*Artifact, error) {
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artifact %s: %w", path, err)
	}
	if len(file.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}
	parsedABI, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi of %s: %w", path, err)
	}
	bytecodeHex, err := bytecodeString(file.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("failed to read bytecode of %s: %w", path, err)
	}
	if bytecodeHex == "" || bytecodeHex == "0x" {
		return nil, fmt.Errorf("%w: %s (abstract contract or interface?)", ErrNoBytecode, path)
	}
	if !strings.HasPrefix(bytecodeHex, "0x") {
		bytecodeHex = "0x" + bytecodeHex
	}
	bytecode, err := hexutil.Decode(bytecodeHex)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}

	name := file.ContractName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &Artifact{
		ContractName: name,
		SourceName:   file.SourceName,
		ABI:          parsedABI,
		Bytecode:     bytecode,
		Path:         path,
	}, nil
}

func bytecodeString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj forgeBytecode
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	return obj.Object, nil
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package key resolves the private key that signs contract deployments.
package key

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/go-bip39"
)

var (
	ErrNoKey                = errors.New("no deployer key provided")
	ErrInvalidPrivateKey    = errors.New("invalid private key")
	ErrInvalidPrivateKeyLen = errors.New("invalid private key length (expect 64 bytes in hex)")
	ErrInvalidMnemonic      = errors.New("invalid mnemonic phrase")
)

// EVMCoinType is the BIP-44 coin type used by EVM wallets (60')
const EVMCoinType = 60

// DerivationPath is the path derived from a mnemonic
const DerivationPath = "m/44'/60'/0'/0/0"

const privateKeyHexLen = 64

// Resolve returns the deployer key. A private key wins over a mnemonic;
// ErrNoKey is returned when neither is given.
func Resolve(privateKey, mnemonic string) (*ecdsa.PrivateKey, error) {
	privateKey = strings.TrimSpace(privateKey)
	mnemonic = strings.TrimSpace(mnemonic)
	switch {
	case privateKey != "":
		return FromHex(privateKey)
	case mnemonic != "":
		return FromMnemonic(mnemonic)
	default:
		return nil, ErrNoKey
	}
}

// ValidateHex checks that [privateKey] is a 32 byte hex string, with or
// without 0x prefix.
func ValidateHex(privateKey string) error {
	privateKey = strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	if len(privateKey) != privateKeyHexLen {
		return ErrInvalidPrivateKeyLen
	}
	if _, err := hex.DecodeString(privateKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return nil
}

// FromHex parses a hex encoded secp256k1 private key.
func FromHex(privateKey string) (*ecdsa.PrivateKey, error) {
	if err := ValidateHex(privateKey); err != nil {
		return nil, err
	}
	k, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return k, nil
}

// FromMnemonic derives the first account key (m/44'/60'/0'/0/0) of a BIP-39
// mnemonic with an empty passphrase.
func FromMnemonic(mnemonic string) (*ecdsa.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, "")
	return deriveKey(seed)
}

func deriveKey(seed []byte) (*ecdsa.PrivateKey, error) {
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + EVMCoinType,
		hdkeychain.HardenedKeyStart + 0,
		0,
		0,
	}
	k := masterKey
	for i, index := range path {
		k, err = k.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive level %d of %s: %w", i+1, DerivationPath, err)
		}
	}
	ecPrivKey, err := k.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	return ecPrivKey.ToECDSA(), nil
}

// Address returns the account address controlled by [k].
func Address(k *ecdsa.PrivateKey) common.Address {
	return common.PubkeyToAddress(k.PublicKey)
}

// Hex encodes [k] without 0x prefix.
func Hex(k *ecdsa.PrivateKey) string {
	return hex.EncodeToString(crypto.FromECDSA(k))
}

// Generate creates a new random deployer key.
func Generate() (*ecdsa.PrivateKey, error) {
	return crypto.GenerateKey()
}

// LoadFile reads a hex private key stored in [path], as written by Save.
func LoadFile(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromHex(string(bytes.TrimSpace(data)))
}

// Save writes [k] to [path] in the format read by LoadFile.
func Save(k *ecdsa.PrivateKey, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Hex(k)), 0o600)
}

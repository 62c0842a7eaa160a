// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/luxfi/geth/core/types"
)

// transform a tx operation error into an error that contains:
// - the [err] itself
// - the [tx] hash (or information on the tx not being submitted)
// - another descriptive [msg], together with formated [args]
func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}

// dumps a [tx] hexa description, for it to be separately issued using external tools
func TxDump(description string, tx *types.Transaction) (string, error) {
	if tx == nil {
		return "", fmt.Errorf("can't dump nil tx")
	}
	bs, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failure marshalling raw evm tx: %w", err)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tx Dump For %s:\n", description)
	fmt.Fprintf(&sb, "0x%s\n", hex.EncodeToString(bs))
	fmt.Fprintf(&sb, "Tx Hash: %s\n", tx.Hash())
	fmt.Fprintf(&sb, "Nonce: %d Gas: %d\n", tx.Nonce(), tx.Gas())
	return sb.String(), nil
}

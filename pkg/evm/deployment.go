// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"sync"

	"github.com/luxfi/crowdfund/pkg/deployer"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
)

// WaitFunc blocks until [tx] has been mined and returns the address of the
// contract it created.
type WaitFunc func(ctx context.Context, tx *types.Transaction) (common.Address, error)

// Deployment is a submitted contract creation transaction.
type Deployment struct {
	name string
	tx   *types.Transaction
	wait WaitFunc

	mu        sync.Mutex
	address   common.Address
	confirmed bool
}

var _ deployer.Deployment = (*Deployment)(nil)

// NewDeployment wraps a submitted [tx] for contract [name].
func NewDeployment(name string, tx *types.Transaction, wait WaitFunc) *Deployment {
	return &Deployment{
		name: name,
		tx:   tx,
		wait: wait,
	}
}

// Tx returns the submitted transaction.
func (d *Deployment) Tx() *types.Transaction {
	return d.tx
}

// WaitForDeployment blocks until the contract code is present on chain. A
// failed wait leaves the deployment unconfirmed.
func (d *Deployment) WaitForDeployment(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.confirmed {
		return nil
	}
	address, err := d.wait(ctx, d.tx)
	if err != nil {
		return TransactionError(d.tx, err, "failure waiting for %s deployment", d.name)
	}
	d.address = address
	d.confirmed = true
	return nil
}

// Target returns the deployed address, or deployer.ErrNotDeployed before
// WaitForDeployment has succeeded.
func (d *Deployment) Target() (common.Address, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.confirmed {
		return common.Address{}, deployer.ErrNotDeployed
	}
	return d.address, nil
}

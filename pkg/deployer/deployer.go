// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deployer runs a single contract deployment: submit, wait for
// confirmation, report the address.
package deployer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/geth/common"
)

var (
	// ErrDeploymentFailed is wrapped by every error returned from Run.
	ErrDeploymentFailed = errors.New("deployment failed")
	// ErrNotDeployed is returned by Deployment.Target before confirmation.
	ErrNotDeployed = errors.New("contract deployment not confirmed yet")
)

// Deployer submits contract deployments.
type Deployer interface {
	// DeployContract submits the deployment transaction for the named
	// contract artifact and returns as soon as it has been sent.
	DeployContract(ctx context.Context, name string) (Deployment, error)
}

// Deployment is the handle of a submitted deployment.
type Deployment interface {
	// WaitForDeployment blocks until the deployment is confirmed on chain.
	WaitForDeployment(ctx context.Context) error
	// Target returns the contract address. It returns ErrNotDeployed until
	// WaitForDeployment has succeeded.
	Target() (common.Address, error)
}

// Run deploys [name] through [d], waits for the confirmation and writes the
// deployed address to [w]. Nothing is written unless the deployment is
// confirmed.
func Run(ctx context.Context, d Deployer, name string, w io.Writer) error {
	dep, err := d.DeployContract(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: failed to deploy %s: %w", ErrDeploymentFailed, name, err)
	}
	if err := dep.WaitForDeployment(ctx); err != nil {
		return fmt.Errorf("%w: failed waiting for %s deployment: %w", ErrDeploymentFailed, name, err)
	}
	addr, err := dep.Target()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDeploymentFailed, name, err)
	}
	if _, err := fmt.Fprintf(w, constants.DeployedMessageFormat+"\n", name, addr.Hex()); err != nil {
		return fmt.Errorf("failed to report %s address: %w", name, err)
	}
	return nil
}

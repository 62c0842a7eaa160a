// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploycmd

import (
	"context"
	"io"

	"github.com/luxfi/crowdfund/pkg/deployer"
	"github.com/luxfi/crowdfund/pkg/ux"
)

// spinningDeployer shows a spinner on [w] while a deployment is confirmed.
type spinningDeployer struct {
	deployer.Deployer
	w io.Writer
}

func newSpinningDeployer(d deployer.Deployer, w io.Writer) deployer.Deployer {
	return &spinningDeployer{Deployer: d, w: w}
}

func (s *spinningDeployer) DeployContract(ctx context.Context, name string) (deployer.Deployment, error) {
	dep, err := s.Deployer.DeployContract(ctx, name)
	if err != nil {
		return nil, err
	}
	return &spinningDeployment{Deployment: dep, name: name, w: s.w}, nil
}

type spinningDeployment struct {
	deployer.Deployment
	name string
	w    io.Writer
}

func (s *spinningDeployment) WaitForDeployment(ctx context.Context) error {
	spinner := ux.StartSpinner(s.w, "Waiting for "+s.name+" deployment")
	defer spinner.Stop()
	return s.Deployment.WaitForDeployment(ctx)
}

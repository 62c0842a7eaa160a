// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keycmd

import (
	"github.com/luxfi/crowdfund/pkg/key"
	"github.com/luxfi/crowdfund/pkg/ux"
	"github.com/spf13/cobra"
)

// crowdfund key address
func newAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the deployer address",
		Long: `Prints the address that signs deployments on the selected network, resolved
from the network private key, mnemonic, or the stored deployer key.`,
		Args: cobra.NoArgs,
		RunE: printAddress,
	}
}

func printAddress(_ *cobra.Command, _ []string) error {
	net, err := app.Conf.SelectedNetwork()
	if err != nil {
		return err
	}
	k, err := app.DeployerKey(net)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s", key.Address(k).Hex())
	return nil
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"strconv"

	"github.com/luxfi/crowdfund/pkg/ux"
	"github.com/spf13/cobra"
)

// crowdfund config networks
func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List deployment networks",
		Args:  cobra.NoArgs,
		RunE:  listNetworks,
	}
}

func listNetworks(_ *cobra.Command, _ []string) error {
	nets, err := app.Conf.Networks()
	if err != nil {
		return err
	}
	selected := app.Conf.NetworkName()

	table := ux.Logger.DefaultTable("Network", "URL", "Chain ID", "Confirm", "Selected")
	for _, net := range nets {
		chainID := "any"
		if net.ChainID != 0 {
			chainID = strconv.FormatInt(net.ChainID, 10)
		}
		mark := ""
		if net.Name == selected {
			mark = "*"
		}
		if err := table.Append([]string{net.Name, net.URL, chainID, strconv.FormatBool(net.Confirm), mark}); err != nil {
			return err
		}
	}
	return table.Render()
}

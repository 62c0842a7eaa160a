// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/crowdfund/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Crowdfund

func NewCmd(injectedApp *application.Crowdfund) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create crowdfund configuration",
		Long:  `Show the configured deployment networks or write a starter crowdfund.yaml`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newNetworksCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}

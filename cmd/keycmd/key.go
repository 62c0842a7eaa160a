// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keycmd

import (
	"fmt"

	"github.com/luxfi/crowdfund/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Crowdfund

func NewCmd(injectedApp *application.Crowdfund) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Inspect and create the deployer key",
		Long: `The key command suite shows which account will sign deployments and can
create a local deployer key for development networks. The generated key is
stored unencrypted; DO NOT use it on Mainnet.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}

	// crowdfund key address
	cmd.AddCommand(newAddressCmd())

	// crowdfund key generate
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"errors"
	"fmt"

	"github.com/luxfi/crowdfund/pkg/config"
	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/prompts"
	"github.com/luxfi/crowdfund/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	initOutput string
	initForce  bool
)

// crowdfund config init
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter crowdfund.yaml",
		Long: `Writes a crowdfund.yaml with a localhost network (chain ID 31337) and a
sepolia network that asks for confirmation before deploying.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initOutput, "output", "o", constants.StarterConfigFileName, "path of the config file to write")
	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config file")

	return cmd
}

func runInit(_ *cobra.Command, _ []string) error {
	force := initForce
	err := config.WriteStarter(initOutput, force)
	if errors.Is(err, config.ErrConfigExists) {
		overwrite, promptErr := app.Prompt.CaptureYesNo(fmt.Sprintf("%s already exists. Overwrite it?", initOutput))
		if promptErr != nil {
			if errors.Is(promptErr, prompts.ErrNonInteractive) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			return promptErr
		}
		if !overwrite {
			return constants.ErrUserAborted
		}
		err = config.WriteStarter(initOutput, true)
	}
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Created config at %s", initOutput)
	return nil
}

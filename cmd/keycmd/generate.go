// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keycmd

import (
	"errors"
	"fmt"

	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/key"
	"github.com/luxfi/crowdfund/pkg/prompts"
	"github.com/luxfi/crowdfund/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceGenerate bool

// crowdfund key generate
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a local deployer key",
		Long: `Creates a random secp256k1 key and stores it in ~/.crowdfund/key/deployer.pk.
It is used when no private key or mnemonic is configured for the network.`,
		Args: cobra.NoArgs,
		RunE: generateKey,
	}
	cmd.Flags().BoolVarP(&forceGenerate, "force", "f", false, "overwrite an existing deployer key")
	return cmd
}

func generateKey(_ *cobra.Command, _ []string) error {
	path := app.GetKeyPath()
	if app.KeyExists() && !forceGenerate {
		overwrite, err := app.Prompt.CaptureYesNo(fmt.Sprintf("A deployer key already exists at %s. Overwrite it?", path))
		if err != nil {
			if errors.Is(err, prompts.ErrNonInteractive) {
				return fmt.Errorf("deployer key already exists at %s (use --force to overwrite)", path)
			}
			return err
		}
		if !overwrite {
			return constants.ErrUserAborted
		}
	}

	k, err := key.Generate()
	if err != nil {
		return fmt.Errorf("failed generating key: %w", err)
	}
	if err := key.Save(k, path); err != nil {
		return fmt.Errorf("failed saving key: %w", err)
	}
	app.Log.Info("generated deployer key", zap.String("path", path))
	ux.Logger.PrintToUser("Generated deployer key %s", key.Address(k).Hex())
	ux.Logger.PrintToUser("Stored at %s", path)
	return nil
}

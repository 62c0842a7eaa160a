// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploycmd

import (
	"context"
	"time"

	"github.com/luxfi/crowdfund/cmd/flags"
	"github.com/luxfi/crowdfund/pkg/application"
	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/deployer"
	"github.com/luxfi/crowdfund/pkg/evm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PrivateKeyFlag = "private-key"
	ArtifactsFlag  = "artifacts"
	GasLimitFlag   = "gas-limit"
)

var app *application.Crowdfund

// Flags tune a single deployment. The zero value deploys with the network
// settings and waits without a deadline.
type Flags struct {
	RPC        string
	PrivateKey string
	Artifacts  string
	GasLimit   uint64
	Timeout    time.Duration
	DumpTx     bool
	Yes        bool
}

// crowdfund deploy
func NewCmd(injectedApp *application.Crowdfund) *cobra.Command {
	app = injectedApp
	f := Flags{}
	cmd := &cobra.Command{
		Use:   "deploy [contract]",
		Short: "Deploy a precompiled contract",
		Long: `Deploys the named contract artifact (Crowdfunding by default) and waits for
the deployment to be confirmed. Artifacts are looked up in the Hardhat
(artifacts/contracts/<Name>.sol/<Name>.json) and Foundry (out/<Name>.sol/<Name>.json)
layouts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := constants.DefaultContractName
			if len(args) == 1 {
				name = args[0]
			}
			return Deploy(cmd, name, f)
		},
	}
	flags.AddRPCFlagToCmd(cmd, &f.RPC)
	cmd.Flags().StringVar(&f.PrivateKey, PrivateKeyFlag, "", "hex private key of the deployer")
	cmd.Flags().StringVar(&f.Artifacts, ArtifactsFlag, "", "directory holding compiled contract artifacts")
	cmd.Flags().Uint64Var(&f.GasLimit, GasLimitFlag, 0, "gas limit of the deployment transaction (0 estimates)")
	cmd.Flags().DurationVar(&f.Timeout, "timeout", 0, "give up waiting for confirmation after this long (0 waits forever)")
	cmd.Flags().BoolVar(&f.DumpTx, "dump-tx", false, "write the raw signed deployment transaction to stderr")
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false, "do not ask for confirmation on networks marked confirm")
	return cmd
}

// Deploy deploys contract [name] on the selected network and prints its
// address once confirmed. The rpc, key, artifacts and gas limit flags reach
// it through the config, which has them bound.
func Deploy(cmd *cobra.Command, name string, f Flags) error {
	net, err := app.Conf.SelectedNetwork()
	if err != nil {
		return err
	}
	if f.Yes {
		net.Confirm = false
	}

	k, err := app.DeployerKey(net)
	if err != nil {
		return err
	}
	if err := app.ConfirmDeploy(net, name); err != nil {
		return err
	}

	ctx := cmd.Context()
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	opts := evm.Options{}
	if f.DumpTx {
		opts.TxDump = cmd.ErrOrStderr()
	}
	client, err := app.NewClient(ctx, app.Log, net, k, opts)
	if err != nil {
		return err
	}
	defer client.Close()

	app.Log.Info("deploying",
		zap.String("contract", name),
		zap.String("network", net.Name),
		zap.Duration("timeout", f.Timeout),
	)
	return deployer.Run(ctx, newSpinningDeployer(client, cmd.ErrOrStderr()), name, cmd.OutOrStdout())
}

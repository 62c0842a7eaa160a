// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/crowdfund/pkg/config"
	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/deployer"
	"github.com/luxfi/crowdfund/pkg/evm"
	"github.com/luxfi/crowdfund/pkg/key"
	"github.com/luxfi/crowdfund/pkg/prompts"
	"go.uber.org/zap"
)

const (
	keyDirName  = "key"
	keyFileName = "deployer.pk"
)

// Client is a connected deployer that must be closed after use.
type Client interface {
	deployer.Deployer
	Close()
}

// ClientFactory connects to [net] with the deployer key [k].
type ClientFactory func(
	ctx context.Context,
	log *zap.Logger,
	net config.Network,
	k *ecdsa.PrivateKey,
	opts evm.Options,
) (Client, error)

// NewEVMClient is the ClientFactory used outside of tests.
func NewEVMClient(
	ctx context.Context,
	log *zap.Logger,
	net config.Network,
	k *ecdsa.PrivateKey,
	opts evm.Options,
) (Client, error) {
	return evm.NewClient(ctx, log, net, k, opts)
}

type Crowdfund struct {
	Log       *zap.Logger
	baseDir   string
	Conf      *config.Config
	Prompt    prompts.Prompter
	NewClient ClientFactory
}

func New() *Crowdfund {
	return &Crowdfund{NewClient: NewEVMClient}
}

func (app *Crowdfund) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	if app.NewClient == nil {
		app.NewClient = NewEVMClient
	}
}

func (app *Crowdfund) GetBaseDir() string {
	return app.baseDir
}

func (app *Crowdfund) GetKeyDir() string {
	return filepath.Join(app.GetBaseDir(), keyDirName)
}

// GetKeyPath is where `crowdfund key generate` stores the deployer key.
func (app *Crowdfund) GetKeyPath() string {
	return filepath.Join(app.GetKeyDir(), keyFileName)
}

func (app *Crowdfund) KeyExists() bool {
	_, err := os.Stat(app.GetKeyPath())
	return err == nil
}

// DeployerKey resolves the signing key for [net]: private key, then
// mnemonic, then the stored key file, then an interactive prompt.
func (app *Crowdfund) DeployerKey(net config.Network) (*ecdsa.PrivateKey, error) {
	k, err := key.Resolve(net.PrivateKey, net.Mnemonic)
	if !errors.Is(err, key.ErrNoKey) {
		return k, err
	}
	if app.KeyExists() {
		app.Log.Debug("using stored deployer key", zap.String("path", app.GetKeyPath()))
		return key.LoadFile(app.GetKeyPath())
	}
	hexKey, err := app.Prompt.CapturePrivateKey("Deployer private key")
	if err != nil {
		if errors.Is(err, prompts.ErrNonInteractive) {
			return nil, fmt.Errorf("%w: set --private-key, %s_PRIVATE_KEY or %s_MNEMONIC",
				key.ErrNoKey, constants.EnvPrefix, constants.EnvPrefix)
		}
		return nil, err
	}
	return key.FromHex(hexKey)
}

// ConfirmDeploy asks before deploying [name] to networks marked confirm.
func (app *Crowdfund) ConfirmDeploy(net config.Network, name string) error {
	if !net.Confirm {
		return nil
	}
	ok, err := app.Prompt.CaptureNoYes(fmt.Sprintf("Deploy %s to %s?", name, net.Name))
	if err != nil {
		return err
	}
	if !ok {
		return constants.ErrUserAborted
	}
	return nil
}

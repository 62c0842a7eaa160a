// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evm submits contract deployments to an EVM JSON-RPC endpoint.
package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/luxfi/crowdfund/pkg/artifact"
	"github.com/luxfi/crowdfund/pkg/config"
	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/deployer"
	"github.com/luxfi/crowdfund/pkg/key"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/geth/ethclient"
	"go.uber.org/zap"
)

var ErrChainIDMismatch = errors.New("chain ID mismatch")

// Options tune a Client beyond what the network config carries.
type Options struct {
	// TxDump receives the raw signed deployment transaction when set.
	TxDump io.Writer
}

// Client deploys contract artifacts from a local build directory.
type Client struct {
	log          *zap.Logger
	eth          *ethclient.Client
	network      config.Network
	chainID      *big.Int
	opts         *bind.TransactOpts
	artifactsDir string
	txDump       io.Writer
}

var _ deployer.Deployer = (*Client)(nil)

// NewClient connects to [net] and prepares a transactor signing with [k].
func NewClient(
	ctx context.Context,
	log *zap.Logger,
	net config.Network,
	k *ecdsa.PrivateKey,
	options Options,
) (*Client, error) {
	if k == nil {
		return nil, key.ErrNoKey
	}
	dialCtx, cancel := context.WithTimeout(ctx, constants.DialTimeout)
	defer cancel()
	eth, err := ethclient.DialContext(dialCtx, net.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", net.URL, err)
	}

	chainID, err := eth.ChainID(dialCtx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", net.URL, err)
	}
	if net.ChainID != 0 && chainID.Int64() != net.ChainID {
		eth.Close()
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrChainIDMismatch, net.ChainID, chainID.Int64())
	}

	opts, err := bind.NewKeyedTransactorWithChainID(k, chainID)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.GasLimit = net.GasLimit

	artifactsDir := net.ArtifactsDir
	if artifactsDir == "" {
		artifactsDir = constants.DefaultArtifactsDir
	}

	log.Debug("connected",
		zap.String("network", net.Name),
		zap.String("url", net.URL),
		zap.String("chainID", chainID.String()),
		zap.String("deployer", opts.From.Hex()),
	)

	return &Client{
		log:          log,
		eth:          eth,
		network:      net,
		chainID:      chainID,
		opts:         opts,
		artifactsDir: artifactsDir,
		txDump:       options.TxDump,
	}, nil
}

// DeployContract loads the [name] artifact and submits its creation
// transaction. It does not wait for the transaction to be mined.
func (c *Client) DeployContract(ctx context.Context, name string) (deployer.Deployment, error) {
	art, err := artifact.Load(c.artifactsDir, name)
	if err != nil {
		return nil, err
	}
	c.log.Info("deploying contract",
		zap.String("contract", art.ContractName),
		zap.String("artifact", art.Path),
		zap.String("network", c.network.Name),
		zap.Stringer("chainID", c.chainID),
	)

	opts := *c.opts
	opts.Context = ctx
	_, tx, _, err := bind.DeployContract(&opts, art.ABI, art.Bytecode, c.eth)
	if err != nil {
		return nil, TransactionError(tx, err, "failure deploying %s", name)
	}
	c.log.Info("deployment submitted",
		zap.String("contract", name),
		zap.String("txHash", tx.Hash().Hex()),
	)

	if c.txDump != nil {
		dump, err := TxDump(name+" deployment", tx)
		if err != nil {
			c.log.Warn("failed dumping deployment tx", zap.Error(err))
		} else {
			_, _ = io.WriteString(c.txDump, dump)
		}
	}

	return NewDeployment(name, tx, c.waitDeployed), nil
}

func (c *Client) waitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error) {
	address, err := bind.WaitDeployed(ctx, c.eth, tx)
	if err != nil {
		return common.Address{}, err
	}
	c.log.Info("deployment confirmed", zap.String("address", address.Hex()))
	return address, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

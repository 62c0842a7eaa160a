// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".crowdfund"

	DefaultConfigFileName = "crowdfund"
	DefaultConfigFileType = "yaml"
	StarterConfigFileName = DefaultConfigFileName + "." + DefaultConfigFileType

	// contract deployed by a bare `crowdfund` invocation
	DefaultContractName = "Crowdfunding"

	// line printed once the deployment is confirmed
	DeployedMessageFormat = "%s Contract Deployed at %s"

	DefaultNetwork      = "localhost"
	DefaultRPCURL       = "http://127.0.0.1:8545"
	DefaultArtifactsDir = "artifacts"
	DefaultLogLevel     = "warn"

	DialTimeout      = 30 * time.Second
	SpinnerTickEvery = 120 * time.Millisecond

	// Config keys
	ConfigDefaultNetworkKey = "defaultNetwork"
	ConfigArtifactsKey      = "artifacts"
	ConfigNetworksKey       = "networks"
	ConfigNetworkKey        = "network"
	ConfigRPCURLKey         = "rpc-url"
	ConfigPrivateKeyKey     = "private-key"
	ConfigMnemonicKey       = "mnemonic"
	ConfigGasLimitKey       = "gas-limit"
	ConfigArtifactsFlagKey  = "artifacts-dir"
	ConfigLogLevelKey       = "log-level"
	ConfigNonInteractiveKey = "non-interactive"

	// Environment
	EnvPrefix         = "CROWDFUND"
	EnvNonInteractive = EnvPrefix + "_NON_INTERACTIVE"
	EnvCI             = "CI"
)

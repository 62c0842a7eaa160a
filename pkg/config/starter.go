// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/crowdfund/pkg/constants"
	"gopkg.in/yaml.v3"
)

var ErrConfigExists = errors.New("config file already exists")

// File is the on-disk shape of crowdfund.yaml.
type File struct {
	DefaultNetwork string             `yaml:"defaultNetwork"`
	Artifacts      string             `yaml:"artifacts"`
	Networks       map[string]Network `yaml:"networks"`
}

// Starter is the config written by `crowdfund config init`.
func Starter() File {
	return File{
		DefaultNetwork: constants.DefaultNetwork,
		Artifacts:      constants.DefaultArtifactsDir,
		Networks: map[string]Network{
			constants.DefaultNetwork: {
				URL:     constants.DefaultRPCURL,
				ChainID: 31337,
			},
			"sepolia": {
				URL:     "https://rpc.sepolia.org",
				ChainID: 11155111,
				Confirm: true,
			},
		},
	}
}

// WriteStarter writes the starter config to [path]. An existing file is
// only replaced when [force] is set.
func WriteStarter(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	out, err := yaml.Marshal(Starter())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, out, constants.WriteReadReadPerms)
}

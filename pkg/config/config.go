// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/spf13/viper"
)

// Network is a deployment target.
type Network struct {
	Name       string `mapstructure:"-" yaml:"-"`
	URL        string `mapstructure:"url" yaml:"url"`
	ChainID    int64  `mapstructure:"chainId" yaml:"chainId,omitempty"`
	PrivateKey string `mapstructure:"privateKey" yaml:"privateKey,omitempty"`
	Mnemonic   string `mapstructure:"mnemonic" yaml:"mnemonic,omitempty"`
	GasLimit   uint64 `mapstructure:"gasLimit" yaml:"gasLimit,omitempty"`
	Confirm    bool   `mapstructure:"confirm" yaml:"confirm,omitempty"`

	// ArtifactsDir defaults to the top level artifacts setting.
	ArtifactsDir string `mapstructure:"artifacts" yaml:"artifacts,omitempty"`
}

// Config resolves settings with priority flags > env vars > config file > defaults.
type Config struct {
	v *viper.Viper
}

// New wraps [v]. Env binding and defaults are installed on it.
func New(v *viper.Viper) *Config {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault(constants.ConfigDefaultNetworkKey, constants.DefaultNetwork)
	v.SetDefault(constants.ConfigArtifactsKey, constants.DefaultArtifactsDir)
	return &Config{v: v}
}

// Load reads [cfgFile], or when empty the first crowdfund.yaml found in the
// working directory or ~/.crowdfund. A missing default file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	c := New(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		}
		v.SetConfigName(constants.DefaultConfigFileName)
		v.SetConfigType(constants.DefaultConfigFileType)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed reading config: %w", err)
		}
	}
	return c, nil
}

// Viper exposes the underlying store for flag binding.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// ConfigFileUsed returns the path of the loaded config file, if any.
func (c *Config) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}

// ArtifactsDir returns where compiled contract artifacts are looked up.
func (c *Config) ArtifactsDir() string {
	return c.v.GetString(constants.ConfigArtifactsKey)
}

// NetworkName returns the selected network: --network / CROWDFUND_NETWORK,
// then defaultNetwork from the config file.
func (c *Config) NetworkName() string {
	if name := c.v.GetString(constants.ConfigNetworkKey); name != "" {
		return name
	}
	return c.v.GetString(constants.ConfigDefaultNetworkKey)
}

// Network returns the named network with flag and env overrides applied.
func (c *Config) Network(name string) (Network, error) {
	net, err := c.configuredNetwork(name)
	if err != nil {
		return Network{}, err
	}
	if url := c.v.GetString(constants.ConfigRPCURLKey); url != "" {
		net.URL = url
	}
	if pk := c.v.GetString(constants.ConfigPrivateKeyKey); pk != "" {
		net.PrivateKey = pk
	}
	if mnemonic := c.v.GetString(constants.ConfigMnemonicKey); mnemonic != "" {
		net.Mnemonic = mnemonic
	}
	if gasLimit := c.v.GetUint64(constants.ConfigGasLimitKey); gasLimit != 0 {
		net.GasLimit = gasLimit
	}
	if dir := c.v.GetString(constants.ConfigArtifactsFlagKey); dir != "" {
		net.ArtifactsDir = dir
	}
	if net.URL == "" {
		return Network{}, fmt.Errorf("network %s has no url", name)
	}
	return net, nil
}

// SelectedNetwork is Network(NetworkName()).
func (c *Config) SelectedNetwork() (Network, error) {
	return c.Network(c.NetworkName())
}

// Networks lists the networks of the config file sorted by name. The
// built-in localhost network is included when not overridden.
func (c *Config) Networks() ([]Network, error) {
	names := map[string]struct{}{constants.DefaultNetwork: {}}
	for name := range c.v.GetStringMap(constants.ConfigNetworksKey) {
		names[name] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	nets := make([]Network, 0, len(sorted))
	for _, name := range sorted {
		net, err := c.configuredNetwork(name)
		if err != nil {
			return nil, err
		}
		nets = append(nets, net)
	}
	return nets, nil
}

func (c *Config) configuredNetwork(name string) (Network, error) {
	key := constants.ConfigNetworksKey + "." + name
	if !c.v.IsSet(key) {
		if name == constants.DefaultNetwork {
			return Network{Name: name, URL: constants.DefaultRPCURL, ArtifactsDir: c.ArtifactsDir()}, nil
		}
		return Network{}, fmt.Errorf("%w: %q", constants.ErrUnknownNetwork, name)
	}
	var net Network
	if err := c.v.UnmarshalKey(key, &net); err != nil {
		return Network{}, fmt.Errorf("invalid config for network %s: %w", name, err)
	}
	net.Name = name
	if net.ArtifactsDir == "" {
		net.ArtifactsDir = c.ArtifactsDir()
	}
	return net, nil
}

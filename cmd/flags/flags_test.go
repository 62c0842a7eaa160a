// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestValidateRPC(t *testing.T) {
	for _, valid := range []string{"", "http://127.0.0.1:8545", "https://rpc.sepolia.org", "wss://node/ws"} {
		require.NoError(t, ValidateRPC(valid), valid)
	}
	for _, invalid := range []string{"127.0.0.1:8545", "ftp://host", "http://", "://"} {
		require.Error(t, ValidateRPC(invalid), invalid)
	}
}

func TestAddRPCFlagToCmd(t *testing.T) {
	require := require.New(t)
	var rpc string
	ran := false
	cmd := &cobra.Command{
		Use: "deploy",
		RunE: func(*cobra.Command, []string) error {
			ran = true
			return nil
		},
	}
	AddRPCFlagToCmd(cmd, &rpc)
	require.NotNil(cmd.Flags().Lookup(RPCFlag))

	cmd.SetArgs([]string{"--rpc", "not a url"})
	require.Error(cmd.Execute())
	require.False(ran)

	cmd.SetArgs([]string{"--rpc", "http://127.0.0.1:8545"})
	require.NoError(cmd.Execute())
	require.True(ran)
	require.Equal("http://127.0.0.1:8545", rpc)
}

func TestBindFlags(t *testing.T) {
	require := require.New(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("network", "", "")
	require.NoError(fs.Parse([]string{"--network", "sepolia"}))

	v := viper.New()
	require.NoError(BindFlags(v, fs, map[string]string{
		"network": "network",
		"rpc-url": "rpc",
	}))
	require.Equal("sepolia", v.GetString("network"))
	require.Empty(v.GetString("rpc-url"))
}

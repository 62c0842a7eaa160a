// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RPCFlag overrides the url of the selected network.
const RPCFlag = "rpc"

// AddRPCFlagToCmd adds --rpc and validates its format before the command runs.
func AddRPCFlagToCmd(cmd *cobra.Command, rpc *string) {
	cmd.Flags().StringVar(rpc, RPCFlag, "", "blockchain rpc endpoint (overrides the network url)")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return ValidateRPC(*rpc)
	}
}

// ValidateRPC accepts an empty value or an http(s)/ws(s) url.
func ValidateRPC(rpc string) error {
	if rpc == "" {
		return nil
	}
	u, err := url.Parse(rpc)
	if err != nil {
		return fmt.Errorf("invalid rpc url %q: %w", rpc, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("invalid rpc url %q: unsupported scheme %q", rpc, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid rpc url %q: missing host", rpc)
	}
	return nil
}

// BindFlags binds the flags of [fs] named in [keys] (config key -> flag
// name) to [v]. Flags missing from [fs] are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed binding --%s: %w", name, err)
		}
	}
	return nil
}

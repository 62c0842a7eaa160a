// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/luxfi/crowdfund/cmd/configcmd"
	"github.com/luxfi/crowdfund/cmd/deploycmd"
	"github.com/luxfi/crowdfund/cmd/flags"
	"github.com/luxfi/crowdfund/cmd/keycmd"
	"github.com/luxfi/crowdfund/pkg/application"
	"github.com/luxfi/crowdfund/pkg/config"
	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/prompts"
	"github.com/luxfi/crowdfund/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	app *application.Crowdfund

	logLevel       string
	Version        = "0.1.0"
	cfgFile        string
	network        string
	nonInteractive bool
)

func NewRootCmd(injectedApp *application.Crowdfund) *cobra.Command {
	app = injectedApp

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "crowdfund",
		Short: "Deploy the Crowdfunding contract",
		Long: `Deploys the precompiled Crowdfunding contract to the selected network and
prints its address once the deployment is confirmed:

  Crowdfunding Contract Deployed at 0x...

The network, RPC endpoint and deployer key come from crowdfund.yaml,
CROWDFUND_* environment variables, or flags. Run "crowdfund config init"
to create a starter config.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: createApp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deploycmd.Deploy(cmd, constants.DefaultContractName, deploycmd.Flags{})
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./crowdfund.yaml or $HOME/.crowdfund/crowdfund.yaml)")
	rootCmd.PersistentFlags().StringVar(&network, constants.ConfigNetworkKey, "", "network to deploy to (default is defaultNetwork from the config, or localhost)")
	rootCmd.PersistentFlags().StringVar(&logLevel, constants.ConfigLogLevelKey, constants.DefaultLogLevel, "log level for the application (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, constants.ConfigNonInteractiveKey, false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")

	rootCmd.AddCommand(deploycmd.NewCmd(app))
	rootCmd.AddCommand(keycmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(cmd)
	if err != nil {
		return err
	}

	cf, err := initConfig(cmd)
	if err != nil {
		return err
	}
	if cf.ConfigFileUsed() != "" {
		log.Debug("using config file", zap.String("config-file", cf.ConfigFileUsed()))
	}

	// Interactive by default on TTY, non-interactive when:
	// CROWDFUND_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(nonInteractive)
	app.Setup(baseDir, log, cf, prompter)
	return nil
}

func setupEnv() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to find home directory: %w", err)
	}
	return filepath.Join(home, constants.BaseDirName), nil
}

// setupLogging builds the zap logger writing to stderr. User output goes to
// stdout through ux.Logger.
func setupLogging(cmd *cobra.Command) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", constants.ConfigLogLevelKey, logLevel, err)
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		level,
	)
	log := zap.New(core).Named("crowdfund")

	// create the user facing logger as a global var
	ux.NewUserLog(cmd.OutOrStdout())
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(cmd *cobra.Command) (*config.Config, error) {
	cf, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := flags.BindFlags(cf.Viper(), cmd.Flags(), map[string]string{
		constants.ConfigNetworkKey:       constants.ConfigNetworkKey,
		constants.ConfigRPCURLKey:        flags.RPCFlag,
		constants.ConfigPrivateKeyKey:    deploycmd.PrivateKeyFlag,
		constants.ConfigArtifactsFlagKey: deploycmd.ArtifactsFlag,
		constants.ConfigGasLimitKey:      deploycmd.GasLimitFlag,
	}); err != nil {
		return nil, err
	}
	return cf, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runCLI(ctx, application.New(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runCLI executes the root command with [args] and returns the process exit
// status. Errors are reported on [stderr].
func runCLI(ctx context.Context, injectedApp *application.Crowdfund, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(injectedApp)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ux.PrintError(stderr, err)
		return 1
	}
	return 0
}

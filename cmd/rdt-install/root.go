package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conn-castle/rust-devtools/internal/config"
	"github.com/conn-castle/rust-devtools/internal/dispatch"
	"github.com/conn-castle/rust-devtools/internal/envdetect"
	"github.com/conn-castle/rust-devtools/internal/logging"
	"github.com/conn-castle/rust-devtools/internal/messages"
	"github.com/conn-castle/rust-devtools/internal/toolchain"
)

var (
	getenv            = os.Getenv
	executable        = os.Executable
	detectEnvironment = envdetect.Detect
	checkToolchain    = toolchain.Check
	runInstaller      = dispatch.Run
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, parseArgs(args))
		},
	}
}

// runInstall detects the environment, gates on the toolchain, and launches the installer.
func runInstall(cmd *cobra.Command, inv invocation) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := logging.New(cmd.ErrOrStderr(), inv.Debug && !inv.Help, getenv(logging.EnvLogLevel))
	defer func() { _ = log.Sync() }()

	paths, cfg, err := loadConfig()
	if err != nil {
		if !inv.Help {
			return err
		}
		log.Warn("configuration unavailable, using defaults", zap.Error(err))
		cfg = config.Default()
	} else {
		log.Debug("configuration loaded", zap.String("path", paths.ConfigPath), zap.String("exec_dir", paths.ExecDir))
	}

	c, err := detectEnvironment(envdetect.RealSystem{}, log)
	if err != nil {
		return err
	}
	colors := newPalette(out)
	attempts := toolchain.Attempts(cfg.Toolchain.Probes, c, cfg.Shells.Bridge)
	timeout := time.Duration(cfg.Toolchain.TimeoutSeconds) * time.Second

	if inv.Help {
		_, gateErr := checkToolchain(ctx, toolchain.RealSystem{}, attempts, timeout, log)
		printHelp(out, colors, c, gateErr == nil)
		return nil
	}
	if inv.Debug {
		printClassification(out, colors, c)
	}

	if _, err := checkToolchain(ctx, toolchain.RealSystem{}, attempts, timeout, log); err != nil {
		if !errors.Is(err, toolchain.ErrNotInstalled) {
			return err
		}
		log.Debug("toolchain gate failed", zap.Error(err))
		printToolchainMissing(out, colors, c)
		return &SilentExitError{Code: 1}
	}

	scriptDir, err := cfg.ScriptDir(getenv, paths.ExecDir)
	if err != nil {
		return err
	}
	opts := dispatch.NewOptions(cfg, scriptDir)
	sys := dispatch.RealSystem{
		Stdin:  cmd.InOrStdin(),
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	}
	err = runInstaller(ctx, sys, c, opts, inv.Forward, log)
	if errors.Is(err, dispatch.ErrScriptMissing) {
		printScriptMissing(out, colors, c.Target, opts)
		return &SilentExitError{Code: 1}
	}
	return err
}

// loadConfig resolves the executable directory and reads the optional config file beside it.
func loadConfig() (config.Paths, *config.Config, error) {
	paths, err := config.ResolvePaths(getenv, executable)
	if err != nil {
		return config.Paths{}, nil, err
	}
	cfg, err := config.LoadOptional(paths.ConfigPath)
	if err != nil {
		return config.Paths{}, nil, err
	}
	return paths, cfg, nil
}

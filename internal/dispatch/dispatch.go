// Package dispatch launches the platform installer script chosen by envdetect.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/conn-castle/rust-devtools/internal/config"
	"github.com/conn-castle/rust-devtools/internal/envdetect"
	"github.com/conn-castle/rust-devtools/internal/messages"
)

const (
	// EnvEmojiSupport tells the installer script whether to print emoji ("1") or not ("0").
	EnvEmojiSupport = "INSTALLER_EMOJI_SUPPORT"
	// EnvWSLEnv lists the variables Windows forwards into a WSL process.
	EnvWSLEnv = "WSLENV"
	// NoEmojiFlag is appended to the Windows script arguments when emoji are unsupported.
	NoEmojiFlag = "-NoEmoji"

	wslEnvFlags    = "u"
	scriptFileMode = 0o755
)

// ErrScriptMissing is returned when the installer script for the target does not exist.
var ErrScriptMissing = errors.New(messages.DispatchScriptMissing)

// Options holds the script names and interpreters used by Run.
type Options struct {
	ScriptDir     string
	PosixScript   string
	WindowsScript string
	PosixShell    string
	WindowsShell  string
	Bridge        string
}

// NewOptions builds Options from cfg with scripts resolved against scriptDir.
func NewOptions(cfg *config.Config, scriptDir string) Options {
	return Options{
		ScriptDir:     scriptDir,
		PosixScript:   cfg.Scripts.Posix,
		WindowsScript: cfg.Scripts.Windows,
		PosixShell:    cfg.Shells.Posix,
		WindowsShell:  cfg.Shells.Windows,
		Bridge:        cfg.Shells.Bridge,
	}
}

// Command is a fully resolved child invocation.
type Command struct {
	Target envdetect.Target
	// Script is the host path of the installer script.
	Script string
	Path   string
	Args   []string
	Env    []string
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// ScriptName returns the installer script file name used for target.
func ScriptName(target envdetect.Target, opts Options) (string, error) {
	switch {
	case target == envdetect.TargetPosixShell || target == envdetect.TargetWSLBridge:
		return opts.PosixScript, nil
	case target.IsWindowsNative():
		return opts.WindowsScript, nil
	default:
		return "", fmt.Errorf(messages.DispatchUnknownTargetFmt, target)
	}
}

// Resolve builds the child command for c without touching the system.
// scriptArg is the script path as the interpreter sees it; env is copied, never modified.
func Resolve(c envdetect.Classification, opts Options, script string, scriptArg string, env []string, args []string) (Command, error) {
	cmd := Command{Target: c.Target, Script: script}
	emoji := "0"
	if c.EmojiSupport {
		emoji = "1"
	}

	switch {
	case c.Target == envdetect.TargetWSLBridge:
		if opts.Bridge == "" {
			return Command{}, fmt.Errorf(messages.DispatchInterpreterRequiredFmt, c.Target)
		}
		if opts.PosixShell == "" {
			return Command{}, fmt.Errorf(messages.DispatchInterpreterRequiredFmt, envdetect.TargetPosixShell)
		}
		cmd.Path = opts.Bridge
		cmd.Args = append([]string{opts.PosixShell, scriptArg}, args...)
		cmd.Env = AppendWSLEnv(SetEnv(env, EnvEmojiSupport, emoji), EnvEmojiSupport, wslEnvFlags)
	case c.Target == envdetect.TargetPosixShell:
		if opts.PosixShell == "" {
			return Command{}, fmt.Errorf(messages.DispatchInterpreterRequiredFmt, c.Target)
		}
		cmd.Path = opts.PosixShell
		cmd.Args = append([]string{scriptArg}, args...)
		cmd.Env = SetEnv(env, EnvEmojiSupport, emoji)
	case c.Target.IsWindowsNative():
		if opts.WindowsShell == "" {
			return Command{}, fmt.Errorf(messages.DispatchInterpreterRequiredFmt, c.Target)
		}
		cmd.Path = opts.WindowsShell
		cmd.Args = append([]string{"-ExecutionPolicy", "Bypass", "-File", scriptArg}, args...)
		if !c.EmojiSupport {
			cmd.Args = append(cmd.Args, NoEmojiFlag)
		}
		cmd.Env = append([]string(nil), env...)
	default:
		return Command{}, fmt.Errorf(messages.DispatchUnknownTargetFmt, c.Target)
	}
	return cmd, nil
}

// Prepare checks the installer script for c and resolves the child command.
// It makes POSIX scripts executable and translates the script path for the WSL bridge.
func Prepare(ctx context.Context, sys System, c envdetect.Classification, opts Options, args []string, log *zap.Logger) (Command, error) {
	if sys == nil {
		return Command{}, errors.New(messages.DispatchSystemRequired)
	}
	if log == nil {
		log = zap.NewNop()
	}
	name, err := ScriptName(c.Target, opts)
	if err != nil {
		return Command{}, err
	}
	script := filepath.Join(opts.ScriptDir, name)
	if _, err := sys.Stat(script); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Command{}, fmt.Errorf(messages.DispatchScriptMissingFmt, name, opts.ScriptDir, ErrScriptMissing)
		}
		return Command{}, fmt.Errorf(messages.DispatchCheckScriptFmt, script, err)
	}

	scriptArg := script
	switch c.Target {
	case envdetect.TargetPosixShell:
		if err := sys.Chmod(script, scriptFileMode); err != nil {
			log.Debug("chmod installer script failed", zap.String("script", script), zap.Error(err))
		}
	case envdetect.TargetWSLBridge:
		scriptArg = translatePath(ctx, sys, opts.Bridge, script, log)
	}

	return Resolve(c, opts, script, scriptArg, sys.Environ(), args)
}

// Run launches the installer script for c and waits for it.
// A non-zero child exit is returned unwrapped as *exec.ExitError.
func Run(ctx context.Context, sys System, c envdetect.Classification, opts Options, args []string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	cmd, err := Prepare(ctx, sys, c, opts, args, log)
	if err != nil {
		return err
	}
	log.Debug("launching installer", zap.String("target", string(cmd.Target)), zap.String("command", cmd.String()))

	err = sys.Run(cmd)
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return err
	}
	return fmt.Errorf(messages.DispatchRunFmt, cmd.Path, err)
}

// translatePath asks WSL for the Linux form of script.
// Failures are logged and yield an empty path; the child then reports the bad path itself.
func translatePath(ctx context.Context, sys System, bridge string, script string, log *zap.Logger) string {
	out, err := sys.Output(ctx, bridge, []string{"wslpath", "-a", script})
	if err != nil {
		log.Debug("wslpath failed", zap.Error(fmt.Errorf(messages.DispatchTranslatePathFmt, script, bridge, err)))
		return ""
	}
	return strings.TrimSpace(string(out))
}

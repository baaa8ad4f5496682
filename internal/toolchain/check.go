// Package toolchain verifies the Rust toolchain is reachable before dispatch.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/conn-castle/rust-devtools/internal/envdetect"
	"github.com/conn-castle/rust-devtools/internal/messages"
)

// ErrNotInstalled is returned when no probe succeeded.
var ErrNotInstalled = errors.New(messages.ToolchainNotInstalled)

// WindowsCommandHost runs Windows-side commands from inside WSL.
var WindowsCommandHost = []string{"cmd.exe", "/c"}

// Attempts expands probes into the ordered list of commands to try.
// Direct probes always come first. When WSL was detected, bridged variants follow:
// through the bridge command when this binary is a native Windows one, or through
// cmd.exe when it runs on the Linux side.
func Attempts(probes [][]string, c envdetect.Classification, bridge string) [][]string {
	attempts := make([][]string, 0, len(probes)*2)
	for _, probe := range probes {
		if len(probe) > 0 {
			attempts = append(attempts, probe)
		}
	}
	if !c.Layers.WSL {
		return attempts
	}

	var prefix []string
	switch c.Host {
	case envdetect.HostWindows:
		if bridge == "" {
			return attempts
		}
		prefix = []string{bridge}
	default:
		prefix = WindowsCommandHost
	}
	direct := len(attempts)
	for _, probe := range attempts[:direct] {
		bridged := make([]string, 0, len(prefix)+len(probe))
		bridged = append(bridged, prefix...)
		bridged = append(bridged, probe...)
		attempts = append(attempts, bridged)
	}
	return attempts
}

// Check runs each attempt with its own timeout and returns the first command that succeeded.
// Per-attempt failures are logged and swallowed. ErrNotInstalled is returned when all fail.
func Check(ctx context.Context, sys System, attempts [][]string, timeout time.Duration, log *zap.Logger) ([]string, error) {
	if sys == nil {
		return nil, errors.New(messages.ToolchainSystemRequired)
	}
	if len(attempts) == 0 {
		return nil, errors.New(messages.ToolchainNoProbes)
	}
	if log == nil {
		log = zap.NewNop()
	}

	tried := make([]string, 0, len(attempts))
	for _, argv := range attempts {
		if len(argv) == 0 {
			continue
		}
		command := strings.Join(argv, " ")
		tried = append(tried, command)
		if err := runOnce(ctx, sys, argv, timeout); err != nil {
			log.Debug("toolchain probe failed", zap.String("command", command), zap.Error(err))
			continue
		}
		log.Debug("toolchain probe succeeded", zap.String("command", command))
		return argv, nil
	}
	return nil, fmt.Errorf(messages.ToolchainNotInstalledFmt, ErrNotInstalled, strings.Join(tried, ", "))
}

func runOnce(ctx context.Context, sys System, argv []string, timeout time.Duration) error {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	err := sys.RunProbe(probeCtx, argv[0], argv[1:])
	if err != nil && errors.Is(probeCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf(messages.ToolchainProbeTimeoutFmt, strings.Join(argv, " "), timeout)
	}
	return err
}

package toolchain

import (
	"context"
	"os/exec"
)

// System abstracts the process launches the toolchain check performs.
type System interface {
	// RunProbe runs name with args and returns nil only on a zero exit status.
	RunProbe(ctx context.Context, name string, args []string) error
}

// RealSystem implements System with os/exec.
type RealSystem struct{}

// RunProbe runs the command with output discarded. The process is killed when ctx ends.
func (RealSystem) RunProbe(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}

package dispatch

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// System abstracts OS operations needed to launch the installer script.
// This interface is intentionally package-local so tests can stub the child
// process without touching the real environment.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Chmod(name string, mode os.FileMode) error
	Environ() []string
	Output(ctx context.Context, name string, args []string) ([]byte, error)
	Run(cmd Command) error
}

// RealSystem implements System using the OS.
// Nil streams fall back to the process's own standard streams.
type RealSystem struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Stat returns file info for name.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Output runs a short helper command and returns its standard output.
func (RealSystem) Output(ctx context.Context, name string, args []string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Run starts the child with the configured streams and waits for it to exit.
// A non-zero child exit is reported as *exec.ExitError.
func (s RealSystem) Run(cmd Command) error {
	child := exec.Command(cmd.Path, cmd.Args...)
	child.Env = cmd.Env
	child.Stdin = s.stdin()
	child.Stdout = s.stdout()
	child.Stderr = s.stderr()
	return child.Run()
}

func (s RealSystem) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s RealSystem) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s RealSystem) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}

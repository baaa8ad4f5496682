package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Fallback behavior:
//   - Output, Run: Return errNotMocked (fail-fast). Tests must never launch
//     wsl or an installer by accident.
//   - Stat, Chmod, Environ: Fall back to RealSystem so tests can use
//     t.TempDir() fixtures and t.Setenv().
type testSystem struct {
	RealSystem

	StatFunc    func(name string) (os.FileInfo, error)
	ChmodFunc   func(name string, mode os.FileMode) error
	EnvironFunc func() []string
	OutputFunc  func(ctx context.Context, name string, args []string) ([]byte, error)
	RunFunc     func(cmd Command) error
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Chmod(name string, mode os.FileMode) error {
	if s.ChmodFunc != nil {
		return s.ChmodFunc(name, mode)
	}
	return s.RealSystem.Chmod(name, mode)
}

func (s *testSystem) Environ() []string {
	if s.EnvironFunc != nil {
		return s.EnvironFunc()
	}
	return s.RealSystem.Environ()
}

func (s *testSystem) Output(ctx context.Context, name string, args []string) ([]byte, error) {
	if s.OutputFunc != nil {
		return s.OutputFunc(ctx, name, args)
	}
	return nil, fmt.Errorf("%w: Output", errNotMocked)
}

func (s *testSystem) Run(cmd Command) error {
	if s.RunFunc != nil {
		return s.RunFunc(cmd)
	}
	return fmt.Errorf("%w: Run", errNotMocked)
}

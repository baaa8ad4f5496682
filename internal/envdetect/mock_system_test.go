package envdetect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// errNotMocked is returned when a testSystem method is called without a mock set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Unlike the dispatch mocks, nothing falls back to the real OS: the detector
// reads host-specific files and variables, so every probe defaults to "absent".
type testSystem struct {
	env        map[string]string
	files      map[string]string
	statPaths  map[string]bool
	exe        string
	exeErr     error
	goos       string
	release    string
	releaseErr error
	codePage   uint32
}

func (s *testSystem) LookupEnv(key string) (string, bool) {
	v, ok := s.env[key]
	return v, ok
}

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	if content, ok := s.files[name]; ok {
		return []byte(content), nil
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.statPaths[name] {
		return fakeDirInfo{name: name}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (s *testSystem) Executable() (string, error) {
	if s.exeErr != nil {
		return "", s.exeErr
	}
	if s.exe == "" {
		return "", fmt.Errorf("%w: Executable", errNotMocked)
	}
	return s.exe, nil
}

func (s *testSystem) GOOS() string {
	if s.goos == "" {
		return "linux"
	}
	return s.goos
}

func (s *testSystem) KernelRelease() (string, error) {
	return s.release, s.releaseErr
}

func (s *testSystem) ConsoleOutputCodePage() (uint32, error) {
	return s.codePage, nil
}

type fakeDirInfo struct{ name string }

func (f fakeDirInfo) Name() string       { return f.name }
func (f fakeDirInfo) Size() int64        { return 0 }
func (f fakeDirInfo) Mode() os.FileMode  { return os.ModeDir | 0o755 }
func (f fakeDirInfo) ModTime() time.Time { return time.Time{} }
func (f fakeDirInfo) IsDir() bool        { return true }
func (f fakeDirInfo) Sys() any           { return nil }

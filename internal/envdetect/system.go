package envdetect

import (
	"os"
	"runtime"
)

// System abstracts the OS reads the detector performs.
// Every method is read-only; the detector never mutates process state.
type System interface {
	LookupEnv(key string) (string, bool)
	ReadFile(name string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	Executable() (string, error)
	GOOS() string
	KernelRelease() (string, error)
	ConsoleOutputCodePage() (uint32, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookupEnv retrieves the value of the environment variable named by key.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file info for name.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Executable returns the path of the running binary.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// GOOS returns the operating system the binary was built for.
func (RealSystem) GOOS() string {
	return runtime.GOOS
}

// KernelRelease returns the kernel release reported by uname, or "" where uname is unavailable.
func (RealSystem) KernelRelease() (string, error) {
	return kernelRelease()
}

// ConsoleOutputCodePage returns the console output code page on Windows and 0 elsewhere.
func (RealSystem) ConsoleOutputCodePage() (uint32, error) {
	return consoleOutputCodePage()
}

package envdetect

import (
	"errors"

	"go.uber.org/zap"

	"github.com/conn-castle/rust-devtools/internal/messages"
)

// Environment variables and paths consulted by the detector.
const (
	EnvWSLDistro      = "WSL_DISTRO_NAME"
	EnvWSLInterop     = "WSL_INTEROP"
	EnvMSYSystem      = "MSYSTEM"
	EnvPath           = "PATH"
	EnvCygwin         = "CYGWIN"
	EnvTermProgram    = "TERM_PROGRAM"
	EnvWTSession      = "WT_SESSION"
	EnvConEmuANSI     = "ConEmuANSI"
	EnvConEmuPID      = "ConEmuPID"
	EnvTerm           = "TERM"
	EnvLCAll          = "LC_ALL"
	EnvLCCType        = "LC_CTYPE"
	EnvLang           = "LANG"
	EnvPSModulePath   = "PSModulePath"
	EnvShell          = "SHELL"
	KernelVersionFile = "/proc/version"
	CygdriveMount     = "/cygdrive"
)

// probedEnv lists every variable Capture reads. Nothing else in the environment is consulted.
var probedEnv = []string{
	EnvWSLDistro,
	EnvWSLInterop,
	EnvMSYSystem,
	EnvPath,
	EnvCygwin,
	EnvTermProgram,
	EnvWTSession,
	EnvConEmuANSI,
	EnvConEmuPID,
	EnvTerm,
	EnvLCAll,
	EnvLCCType,
	EnvLang,
	EnvPSModulePath,
	EnvShell,
}

// Snapshot holds every raw input the classifier needs.
// Building one is the only step that touches the OS; Classify is pure over it.
type Snapshot struct {
	GOOS string
	// Env holds the probed variables that are present, including ones set to "".
	Env             map[string]string
	KernelVersion   string
	KernelRelease   string
	CygdriveExists  bool
	Executable      string
	ConsoleCodePage uint32
}

// Has reports whether key was present in the captured environment.
func (s Snapshot) Has(key string) bool {
	_, ok := s.Env[key]
	return ok
}

// Get returns the captured value of key, or "" when absent.
func (s Snapshot) Get(key string) string {
	return s.Env[key]
}

// Capture reads the environment through sys. Probe errors are swallowed and
// leave the corresponding field at its zero value.
func Capture(sys System, log *zap.Logger) (Snapshot, error) {
	if sys == nil {
		return Snapshot{}, errors.New(messages.DetectSystemRequired)
	}
	if log == nil {
		log = zap.NewNop()
	}

	snap := Snapshot{
		GOOS: sys.GOOS(),
		Env:  make(map[string]string, len(probedEnv)),
	}
	for _, key := range probedEnv {
		if value, ok := sys.LookupEnv(key); ok {
			snap.Env[key] = value
		}
	}

	if data, err := sys.ReadFile(KernelVersionFile); err == nil {
		snap.KernelVersion = string(data)
	} else {
		log.Debug("kernel version probe skipped", zap.String("path", KernelVersionFile), zap.Error(err))
	}
	if release, err := sys.KernelRelease(); err == nil {
		snap.KernelRelease = release
	} else {
		log.Debug("uname probe failed", zap.Error(err))
	}
	if _, err := sys.Stat(CygdriveMount); err == nil {
		snap.CygdriveExists = true
	}
	if exe, err := sys.Executable(); err == nil {
		snap.Executable = exe
	} else {
		log.Debug("executable path probe failed", zap.Error(err))
	}
	if cp, err := sys.ConsoleOutputCodePage(); err == nil {
		snap.ConsoleCodePage = cp
	} else {
		log.Debug("console code page probe failed", zap.Error(err))
	}
	return snap, nil
}

// Detect captures the environment through sys and classifies it.
func Detect(sys System, log *zap.Logger) (Classification, error) {
	if log == nil {
		log = zap.NewNop()
	}
	snap, err := Capture(sys, log)
	if err != nil {
		return Classification{}, err
	}
	c := Classify(snap)
	log.Debug("environment classified",
		zap.String("os", string(c.OS)),
		zap.String("layer", string(c.Layer)),
		zap.Bool("wsl", c.Layers.WSL),
		zap.Bool("msys", c.Layers.MSYS),
		zap.Bool("cygwin", c.Layers.Cygwin),
		zap.String("terminal", string(c.Terminal.Kind)),
		zap.String("terminal_name", c.Terminal.Name),
		zap.Bool("emoji", c.EmojiSupport),
		zap.String("host", string(c.Host)),
		zap.String("target", string(c.Target)),
	)
	return c, nil
}

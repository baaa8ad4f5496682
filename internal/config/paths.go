package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/rust-devtools/internal/messages"
)

// Environment overrides and file names.
const (
	EnvConfigPath = "RDT_CONFIG"
	EnvScriptDir  = "RDT_SCRIPT_DIR"
	FileName      = "rdt-install.toml"
)

// Paths holds the resolved locations the installer works with.
type Paths struct {
	// ExecDir is the directory of the running executable, symlinks resolved.
	ExecDir    string
	ConfigPath string
}

// ResolvePaths locates the executable directory and the config file.
// getenv and executable are injected so tests do not depend on the real process.
func ResolvePaths(getenv func(string) string, executable func() (string, error)) (Paths, error) {
	exe, err := executable()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveExecFmt, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	execDir := filepath.Dir(exe)

	configPath := filepath.Join(execDir, FileName)
	if override := strings.TrimSpace(getenv(EnvConfigPath)); override != "" {
		expanded, err := homedir.Expand(override)
		if err != nil {
			return Paths{}, fmt.Errorf(messages.ConfigExpandPathFmt, override, err)
		}
		configPath = expanded
	}
	return Paths{ExecDir: execDir, ConfigPath: configPath}, nil
}

// ScriptDir returns the directory holding the installer scripts.
// Precedence: RDT_SCRIPT_DIR, then scripts.dir (relative to the executable), then the executable directory.
func (c *Config) ScriptDir(getenv func(string) string, execDir string) (string, error) {
	dir := strings.TrimSpace(getenv(EnvScriptDir))
	if dir == "" {
		dir = strings.TrimSpace(c.Scripts.Dir)
	}
	if dir == "" {
		return execDir, nil
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandDirFmt, dir, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(execDir, expanded)
	}
	return filepath.Clean(expanded), nil
}

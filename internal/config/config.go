package config

// Config is the optional rdt-install.toml configuration.
type Config struct {
	Scripts   ScriptsConfig   `toml:"scripts"`
	Shells    ShellsConfig    `toml:"shells"`
	Toolchain ToolchainConfig `toml:"toolchain"`
}

// ScriptsConfig names the installer scripts and where to find them.
type ScriptsConfig struct {
	// Dir overrides the script directory; "~" is expanded. Empty means the executable's directory.
	Dir     string `toml:"dir"`
	Posix   string `toml:"posix"`
	Windows string `toml:"windows"`
}

// ShellsConfig names the programs used to run each script.
type ShellsConfig struct {
	Posix   string `toml:"posix"`
	Windows string `toml:"windows"`
	Bridge  string `toml:"bridge"`
}

// ToolchainConfig controls the pre-dispatch toolchain check.
type ToolchainConfig struct {
	TimeoutSeconds int        `toml:"timeout_seconds"`
	Probes         [][]string `toml:"probes"`
}

// Default values.
const (
	DefaultPosixScript    = "install.sh"
	DefaultWindowsScript  = "install.ps1"
	DefaultPosixShell     = "bash"
	DefaultWindowsShell   = "powershell"
	DefaultBridge         = "wsl"
	DefaultTimeoutSeconds = 5
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scripts: ScriptsConfig{
			Posix:   DefaultPosixScript,
			Windows: DefaultWindowsScript,
		},
		Shells: ShellsConfig{
			Posix:   DefaultPosixShell,
			Windows: DefaultWindowsShell,
			Bridge:  DefaultBridge,
		},
		Toolchain: ToolchainConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
			Probes: [][]string{
				{"rustc", "--version"},
				{"cargo", "--version"},
			},
		},
	}
}

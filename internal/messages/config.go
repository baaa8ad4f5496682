package messages

// Config messages for installer configuration loading.
const (
	ConfigReadFileFmt        = "read config %s: %w"
	ConfigInvalidConfigFmt   = "invalid config %s: %w"
	ConfigValidationFmt      = "invalid config %s: %s"
	ConfigScriptNameRequired = "scripts.%s must not be empty"
	ConfigShellRequired      = "shells.%s must not be empty"
	ConfigTimeoutPositive    = "toolchain.timeout_seconds must be greater than zero"
	ConfigProbesRequired     = "toolchain.probes must contain at least one command"
	ConfigProbeEmptyFmt      = "toolchain.probes[%d] must not be empty"
	ConfigExpandDirFmt       = "expand script dir %q: %w"
	ConfigExpandPathFmt      = "expand config path %q: %w"
	ConfigResolveExecFmt     = "resolve executable path: %w"
)

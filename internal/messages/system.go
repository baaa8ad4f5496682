package messages

// System messages for internal operations.
const (
	// DispatchScriptMissing is the sentinel text for an absent installer script.
	DispatchScriptMissing          = "installer script not found"
	DispatchScriptMissingFmt       = "%s not found in %s: %w"
	DispatchCheckScriptFmt         = "check installer script %s: %w"
	DispatchSystemRequired         = "dispatch system is required"
	DispatchUnknownTargetFmt       = "unknown shell target %q"
	DispatchRunFmt                 = "run %s: %w"
	DispatchTranslatePathFmt       = "translate %s for %s: %w"
	DispatchInterpreterRequiredFmt = "interpreter for %s is not configured"

	// ToolchainNotInstalled is the sentinel text for an unreachable toolchain.
	ToolchainNotInstalled    = "toolchain is not installed"
	ToolchainNotInstalledFmt = "%w (tried %s)"
	ToolchainNoProbes        = "no toolchain probes configured"
	ToolchainSystemRequired  = "toolchain system is required"
	ToolchainProbeTimeoutFmt = "%s timed out after %s"

	// DetectSystemRequired indicates envdetect was called without a System.
	DetectSystemRequired = "detect system is required"
)

package messages

// CLI messages for the rdt-install command surface.
const (
	// RootUse is the CLI command name.
	RootUse = "rdt-install"
	// RootShort is the short description for the root command.
	RootShort = "Rust development tools installer (cross-platform wrapper)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// HelpTitle is the first banner line of the help output.
	HelpTitle       = "Rust Development Tools Installer - Cross-Platform Wrapper"
	HelpRule        = "========================================================="
	HelpVersionFmt  = "Version: %s\n"
	HelpIntro       = "This tool detects your OS, shell, and terminal and runs\nthe matching installer script (PowerShell or Bash)."
	HelpUsageFmt    = "Usage: %s [options]\n"
	HelpOptions     = "Options:"
	HelpOptionAll   = "  --all            Install all tools without prompting"
	HelpOptionDebug = "  --debug          Print the detected environment before installing"
	HelpOptionHelp  = "  --help, -h       Show this help message"
	HelpOtherArgs   = "Any other arguments are passed to the installer script unchanged."
	HelpDetected    = "Detected environment:"
	HelpFieldFmt    = "  %-14s %s\n"

	HelpFieldOS          = "OS:"
	HelpFieldShell       = "Shell:"
	HelpFieldTerminal    = "Terminal:"
	HelpFieldEmoji       = "Emoji support:"
	HelpFieldInterpreter = "Interpreter:"
	HelpFieldLayers      = "Layers:"
	HelpLayersNone       = "none"
	HelpFieldToolchain   = "%s installed:"
	HelpYes              = "Yes"
	HelpNo               = "No"

	// DebugHeader introduces the --debug classification dump.
	DebugHeader   = "Environment detection:"
	DebugFieldFmt = "  %-22s %s\n"

	// ToolchainDisplayName names the required toolchain in user-facing text.
	ToolchainDisplayName = "Rust"
	// ToolchainMissingFmt is printed when no toolchain probe succeeded.
	ToolchainMissingFmt   = "Error: %s is not installed!"
	ToolchainInstallFmt   = "Please install %s first: %s"
	ToolchainWindowsFmt   = "For Windows: %s"
	ToolchainPosixRunFmt  = "Run: %s"
	RustInstallURL        = "https://rustup.rs"
	RustWindowsInstallURL = "https://win.rustup.rs"
	RustPosixInstallCmd   = "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh"

	// ScriptMissingFmt reports a missing installer script.
	ScriptMissingFmt = "Error: %s not found in %s"
	ErrorPrefixFmt   = "Error: %v"
)

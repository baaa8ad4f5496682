// Package envdetect classifies the host operating system, compatibility layer,
// terminal, and shell so the dispatcher can pick an installer script.
package envdetect

import "strconv"

// OS is the coarse operating system family.
type OS string

// Operating system families.
const (
	OSPosix   OS = "posix"
	OSWindows OS = "windows"
)

// Layer names a compatibility layer the process may be running under.
type Layer string

// Compatibility layers, in dispatch precedence order.
const (
	LayerNone   Layer = "none"
	LayerWSL    Layer = "wsl"
	LayerMSYS   Layer = "msys"
	LayerCygwin Layer = "cygwin"
)

// TerminalKind groups terminals by how reliably they render rich glyphs.
type TerminalKind string

// Terminal kinds.
const (
	TerminalEditor  TerminalKind = "editor-integrated"
	TerminalModern  TerminalKind = "modern-terminal-host"
	TerminalLegacy  TerminalKind = "legacy-console-host"
	TerminalUnknown TerminalKind = "unknown"
)

// Host is the side of a compatibility boundary the running binary lives on.
type Host string

// Interpreter hosts.
const (
	HostWindows Host = "native-windows"
	HostPosix   Host = "native-posix"
)

// Target is the final dispatch decision.
type Target string

// Shell targets.
const (
	TargetPosixShell Target = "posix-shell"
	TargetPowerShell Target = "powershell"
	TargetCmd        Target = "cmd"
	TargetWSLBridge  Target = "wsl-bridge"
)

// IsWindowsNative reports whether t runs the Windows installer script.
func (t Target) IsWindowsNative() bool {
	return t == TargetPowerShell || t == TargetCmd
}

// Layers records each compatibility-layer probe independently.
// More than one may be true at once (for example Git Bash launched from inside WSL interop).
type Layers struct {
	WSL    bool
	MSYS   bool
	Cygwin bool
}

// Any reports whether any compatibility layer was detected.
func (l Layers) Any() bool {
	return l.WSL || l.MSYS || l.Cygwin
}

// Emulated reports whether a POSIX emulation layer (MSYS or Cygwin) was detected.
func (l Layers) Emulated() bool {
	return l.MSYS || l.Cygwin
}

// Primary returns the single layer that best describes the environment.
func (l Layers) Primary() Layer {
	switch {
	case l.WSL:
		return LayerWSL
	case l.MSYS:
		return LayerMSYS
	case l.Cygwin:
		return LayerCygwin
	default:
		return LayerNone
	}
}

// Terminal identifies the terminal emulator.
type Terminal struct {
	Kind TerminalKind
	// Name is the concrete emulator (vscode, windows-terminal, $TERM, ...), empty when unknown.
	Name string
}

// String renders the terminal as "kind (name)", or just the kind when the name is unknown.
func (t Terminal) String() string {
	if t.Name == "" {
		return string(t.Kind)
	}
	return string(t.Kind) + " (" + t.Name + ")"
}

// Classification is the immutable result of one detection run.
type Classification struct {
	OS           OS
	Layers       Layers
	Layer        Layer
	Terminal     Terminal
	EmojiSupport bool
	Host         Host
	// Shell is the login shell hint from $SHELL; informational only.
	Shell  string
	Target Target
}

// Field is one key/value line of a classification dump.
type Field struct {
	Key   string
	Value string
}

// Fields returns the classification as ordered key/value pairs.
func (c Classification) Fields() []Field {
	return []Field{
		{Key: "operating_system", Value: string(c.OS)},
		{Key: "compatibility_layer", Value: string(c.Layer)},
		{Key: "wsl", Value: strconv.FormatBool(c.Layers.WSL)},
		{Key: "msys", Value: strconv.FormatBool(c.Layers.MSYS)},
		{Key: "cygwin", Value: strconv.FormatBool(c.Layers.Cygwin)},
		{Key: "terminal", Value: c.Terminal.String()},
		{Key: "emoji_support", Value: strconv.FormatBool(c.EmojiSupport)},
		{Key: "interpreter_host", Value: string(c.Host)},
		{Key: "login_shell", Value: c.Shell},
		{Key: "effective_shell_target", Value: string(c.Target)},
	}
}

package envdetect

import (
	"path"
	"strings"
)

// utf8CodePage is the Windows code page identifier for UTF-8.
const utf8CodePage = 65001

// Classify resolves a Classification from a captured Snapshot.
// It is a pure function: identical snapshots always produce identical classifications.
func Classify(s Snapshot) Classification {
	layers := Layers{
		WSL:    detectWSL(s),
		MSYS:   detectMSYS(s),
		Cygwin: detectCygwin(s),
	}
	family := detectOS(s)
	host := detectHost(s)
	terminal := classifyTerminal(s, layers)
	return Classification{
		OS:           family,
		Layers:       layers,
		Layer:        layers.Primary(),
		Terminal:     terminal,
		EmojiSupport: detectEmojiSupport(s, terminal),
		Host:         host,
		Shell:        loginShell(s),
		Target:       ResolveTarget(family, layers, host, s.Has(EnvPSModulePath)),
	}
}

// ResolveTarget applies the dispatch precedence; the first matching rule wins:
//  1. WSL detected and the binary runs natively on Windows: bridge into WSL.
//  2. Any POSIX emulation layer: run the POSIX script directly.
//  3. Windows with no layer: PowerShell when PSModulePath is set, otherwise cmd.
//  4. Everything else: the POSIX shell.
func ResolveTarget(family OS, layers Layers, host Host, hasPSModulePath bool) Target {
	switch {
	case layers.WSL && host == HostWindows:
		return TargetWSLBridge
	case layers.Emulated():
		return TargetPosixShell
	case family == OSWindows && !layers.Any():
		if hasPSModulePath {
			return TargetPowerShell
		}
		return TargetCmd
	default:
		return TargetPosixShell
	}
}

func detectOS(s Snapshot) OS {
	if s.GOOS == "windows" {
		return OSWindows
	}
	return OSPosix
}

func detectWSL(s Snapshot) bool {
	if containsFold(s.KernelVersion, "microsoft") || containsFold(s.KernelRelease, "microsoft") {
		return true
	}
	return s.Has(EnvWSLDistro) || s.Has(EnvWSLInterop)
}

func detectMSYS(s Snapshot) bool {
	return s.Has(EnvMSYSystem) || containsFold(s.Get(EnvPath), "mingw")
}

func detectCygwin(s Snapshot) bool {
	return s.Has(EnvCygwin) || s.CygdriveExists || containsFold(s.Executable, "cygwin")
}

// detectHost looks at the running binary's own path. A backslash or drive letter
// means it is a native Windows binary even when launched from a POSIX layer.
func detectHost(s Snapshot) Host {
	exe := s.Executable
	if strings.Contains(exe, `\`) || hasDriveLetter(exe) {
		return HostWindows
	}
	return HostPosix
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// classifyTerminal checks markers in priority order and stops at the first match.
func classifyTerminal(s Snapshot, layers Layers) Terminal {
	if s.Get(EnvTermProgram) == "vscode" {
		return Terminal{Kind: TerminalEditor, Name: "vscode"}
	}
	if s.Has(EnvWTSession) {
		return Terminal{Kind: TerminalModern, Name: "windows-terminal"}
	}
	if s.Has(EnvConEmuANSI) || s.Has(EnvConEmuPID) {
		return Terminal{Kind: TerminalLegacy, Name: "conemu"}
	}
	if term := strings.TrimSpace(s.Get(EnvTerm)); term != "" {
		return Terminal{Kind: TerminalLegacy, Name: term}
	}
	if layers.MSYS {
		return Terminal{Kind: TerminalLegacy, Name: "mintty"}
	}
	if layers.WSL {
		return Terminal{Kind: TerminalLegacy, Name: "wsl"}
	}
	return Terminal{Kind: TerminalUnknown}
}

// detectEmojiSupport defaults to false unless the terminal or the locale says otherwise.
// LANG is also checked on its own, even when LC_ALL or LC_CTYPE override it.
func detectEmojiSupport(s Snapshot, terminal Terminal) bool {
	if terminal.Kind == TerminalEditor || terminal.Kind == TerminalModern {
		return true
	}
	if isUTF8Locale(localeValue(s)) || isUTF8Locale(s.Get(EnvLang)) {
		return true
	}
	return s.ConsoleCodePage == utf8CodePage
}

// localeValue follows POSIX precedence: LC_ALL, then LC_CTYPE, then LANG.
func localeValue(s Snapshot) string {
	for _, key := range []string{EnvLCAll, EnvLCCType, EnvLang} {
		if v := strings.TrimSpace(s.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

func isUTF8Locale(locale string) bool {
	lower := strings.ToLower(locale)
	return strings.Contains(lower, "utf-8") || strings.Contains(lower, "utf8")
}

// loginShell maps $SHELL to a known shell name, defaulting to sh.
func loginShell(s Snapshot) string {
	base := strings.ToLower(path.Base(strings.ReplaceAll(s.Get(EnvShell), `\`, "/")))
	for _, known := range []string{"bash", "zsh", "fish"} {
		if strings.Contains(base, known) {
			return known
		}
	}
	return "sh"
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

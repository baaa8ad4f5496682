package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/rust-devtools/internal/dispatch"
	"github.com/conn-castle/rust-devtools/internal/envdetect"
	"github.com/conn-castle/rust-devtools/internal/messages"
	"github.com/conn-castle/rust-devtools/internal/terminal"
)

// palette holds the styles used for user-facing output.
type palette struct {
	heading *color.Color
	success *color.Color
	failure *color.Color
}

// newPalette returns styles that only emit escape codes when w is a color-capable terminal.
func newPalette(w io.Writer) palette {
	enabled := terminal.ColorEnabled(w, getenv)
	style := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		heading: style(color.Bold),
		success: style(color.FgGreen),
		failure: style(color.FgRed),
	}
}

func printHelp(w io.Writer, p palette, c envdetect.Classification, toolchainInstalled bool) {
	_, _ = fmt.Fprintln(w, p.heading.Sprint(messages.HelpTitle))
	_, _ = fmt.Fprintln(w, messages.HelpRule)
	_, _ = fmt.Fprintf(w, messages.HelpVersionFmt, versionString())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, messages.HelpIntro)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, messages.HelpUsageFmt, messages.RootUse)
	_, _ = fmt.Fprintln(w, messages.HelpOptions)
	_, _ = fmt.Fprintln(w, messages.HelpOptionAll)
	_, _ = fmt.Fprintln(w, messages.HelpOptionDebug)
	_, _ = fmt.Fprintln(w, messages.HelpOptionHelp)
	_, _ = fmt.Fprintln(w, messages.HelpOtherArgs)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, p.heading.Sprint(messages.HelpDetected))
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, messages.HelpFieldOS, osLabel(c))
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, messages.HelpFieldShell, c.Target)
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, messages.HelpFieldTerminal, c.Terminal)
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, messages.HelpFieldEmoji, yesNo(c.EmojiSupport))
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, messages.HelpFieldInterpreter, c.Host)
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, messages.HelpFieldLayers, layerList(c.Layers))

	installed := p.failure.Sprint(messages.HelpNo)
	if toolchainInstalled {
		installed = p.success.Sprint(messages.HelpYes)
	}
	_, _ = fmt.Fprintf(w, messages.HelpFieldFmt, fmt.Sprintf(messages.HelpFieldToolchain, messages.ToolchainDisplayName), installed)
}

func printClassification(w io.Writer, p palette, c envdetect.Classification) {
	_, _ = fmt.Fprintln(w, p.heading.Sprint(messages.DebugHeader))
	for _, f := range c.Fields() {
		_, _ = fmt.Fprintf(w, messages.DebugFieldFmt, f.Key+":", f.Value)
	}
	_, _ = fmt.Fprintln(w)
}

func printToolchainMissing(w io.Writer, p palette, c envdetect.Classification) {
	_, _ = fmt.Fprintln(w, p.failure.Sprintf(messages.ToolchainMissingFmt, messages.ToolchainDisplayName))
	_, _ = fmt.Fprintf(w, messages.ToolchainInstallFmt+"\n", messages.ToolchainDisplayName, messages.RustInstallURL)
	if c.OS == envdetect.OSWindows {
		_, _ = fmt.Fprintf(w, messages.ToolchainWindowsFmt+"\n", messages.RustWindowsInstallURL)
		return
	}
	_, _ = fmt.Fprintf(w, messages.ToolchainPosixRunFmt+"\n", messages.RustPosixInstallCmd)
}

func printScriptMissing(w io.Writer, p palette, target envdetect.Target, opts dispatch.Options) {
	name, err := dispatch.ScriptName(target, opts)
	if err != nil {
		name = string(target)
	}
	_, _ = fmt.Fprintln(w, p.failure.Sprintf(messages.ScriptMissingFmt, name, opts.ScriptDir))
}

func osLabel(c envdetect.Classification) string {
	if c.Layer == "" || c.Layer == envdetect.LayerNone {
		return string(c.OS)
	}
	return fmt.Sprintf("%s (%s)", c.OS, c.Layer)
}

// layerList names every detected compatibility layer, since more than one can be active.
func layerList(l envdetect.Layers) string {
	var names []string
	if l.WSL {
		names = append(names, string(envdetect.LayerWSL))
	}
	if l.MSYS {
		names = append(names, string(envdetect.LayerMSYS))
	}
	if l.Cygwin {
		names = append(names, string(envdetect.LayerCygwin))
	}
	if len(names) == 0 {
		return messages.HelpLayersNone
	}
	return strings.Join(names, ", ")
}

func yesNo(v bool) string {
	if v {
		return messages.HelpYes
	}
	return messages.HelpNo
}

package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/rust-devtools/internal/messages"
)

// Validate ensures the config is complete. path is used in error messages.
func (c *Config) Validate(path string) error {
	var problems []string
	if strings.TrimSpace(c.Scripts.Posix) == "" {
		problems = append(problems, fmt.Sprintf(messages.ConfigScriptNameRequired, "posix"))
	}
	if strings.TrimSpace(c.Scripts.Windows) == "" {
		problems = append(problems, fmt.Sprintf(messages.ConfigScriptNameRequired, "windows"))
	}
	shells := []struct{ name, value string }{
		{"posix", c.Shells.Posix},
		{"windows", c.Shells.Windows},
		{"bridge", c.Shells.Bridge},
	}
	for _, shell := range shells {
		if strings.TrimSpace(shell.value) == "" {
			problems = append(problems, fmt.Sprintf(messages.ConfigShellRequired, shell.name))
		}
	}
	if c.Toolchain.TimeoutSeconds <= 0 {
		problems = append(problems, messages.ConfigTimeoutPositive)
	}
	if len(c.Toolchain.Probes) == 0 {
		problems = append(problems, messages.ConfigProbesRequired)
	}
	for i, probe := range c.Toolchain.Probes {
		if len(probe) == 0 || strings.TrimSpace(probe[0]) == "" {
			problems = append(problems, fmt.Sprintf(messages.ConfigProbeEmptyFmt, i))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: "+messages.ConfigValidationFmt, ErrConfigValidation, path, strings.Join(problems, "; "))
}

// Package logging builds the zap logger used for diagnostic output.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel selects the log level ("debug", "info", "warn", "error").
const EnvLogLevel = "RDT_LOG_LEVEL"

// New returns a console logger writing to w. Debug forces debug level;
// otherwise level is parsed from the RDT_LOG_LEVEL value, defaulting to warn.
func New(w io.Writer, debug bool, level string) *zap.Logger {
	lvl := zapcore.WarnLevel
	if name := strings.TrimSpace(level); name != "" {
		if parsed, err := zapcore.ParseLevel(name); err == nil {
			lvl = parsed
		}
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("rdt-install")
}

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, "")
	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("shown warning")
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warning")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "rdt-install")
}

func TestNew_DebugFlagWins(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, "error")
	log.Debug("probe result")
	_ = log.Sync()
	assert.Contains(t, buf.String(), "probe result")
}

func TestNew_LevelFromEnvValue(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, "info")
	log.Info("visible")
	log.Debug("invisible")
	_ = log.Sync()
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "invisible")
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, "chatty")
	log.Info("dropped")
	log.Warn("kept")
	_ = log.Sync()
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

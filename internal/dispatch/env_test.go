package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEnvUpdatesExisting(t *testing.T) {
	env := []string{"KEY=old"}
	got := SetEnv(env, "KEY", "new")
	if value, ok := GetEnv(got, "KEY"); !ok || value != "new" {
		t.Fatalf("expected KEY=new, got %v", value)
	}
	assert.Equal(t, []string{"KEY=old"}, env, "input must not be modified")
}

func TestSetEnvAppendsMissing(t *testing.T) {
	got := SetEnv([]string{"A=1"}, "B", "2")
	assert.Equal(t, []string{"A=1", "B=2"}, got)
}

func TestSetEnvCollapsesDuplicates(t *testing.T) {
	got := SetEnv([]string{"KEY=a", "OTHER=x", "KEY=b"}, "KEY", "c")
	assert.Equal(t, []string{"KEY=c", "OTHER=x"}, got)
}

func TestSetEnvDoesNotMatchPrefix(t *testing.T) {
	got := SetEnv([]string{"KEYS=1"}, "KEY", "2")
	assert.Equal(t, []string{"KEYS=1", "KEY=2"}, got)
}

func TestGetEnvMissing(t *testing.T) {
	env := []string{"KEY=value", "NOVAL"}
	if _, ok := GetEnv(env, "MISSING"); ok {
		t.Fatal("expected missing key")
	}
	if _, ok := GetEnv(env, "NOVAL"); ok {
		t.Fatal("expected entry without '=' to be ignored")
	}
}

func TestAppendWSLEnv(t *testing.T) {
	tests := []struct {
		name string
		env  []string
		want string
	}{
		{name: "unset", env: nil, want: "INSTALLER_EMOJI_SUPPORT/u"},
		{name: "empty", env: []string{"WSLENV="}, want: "INSTALLER_EMOJI_SUPPORT/u"},
		{name: "existing list", env: []string{"WSLENV=USERPROFILE/p"}, want: "USERPROFILE/p:INSTALLER_EMOJI_SUPPORT/u"},
		{name: "already listed", env: []string{"WSLENV=INSTALLER_EMOJI_SUPPORT:PATH/l"}, want: "INSTALLER_EMOJI_SUPPORT:PATH/l"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendWSLEnv(tt.env, EnvEmojiSupport, "u")
			value, ok := GetEnv(got, EnvWSLEnv)
			assert.True(t, ok)
			assert.Equal(t, tt.want, value)
		})
	}
}

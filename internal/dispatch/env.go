package dispatch

import (
	"fmt"
	"strings"
)

// GetEnv returns the value for the key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	for _, entry := range env {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 && parts[0] == key {
			return parts[1], true
		}
	}
	return "", false
}

// SetEnv returns a copy of env with key set to value.
// The input slice is never modified.
func SetEnv(env []string, key string, value string) []string {
	entry := fmt.Sprintf("%s=%s", key, value)
	result := make([]string, 0, len(env)+1)
	replaced := false
	for _, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			if !replaced {
				result = append(result, entry)
				replaced = true
			}
			continue
		}
		result = append(result, existing)
	}
	if !replaced {
		result = append(result, entry)
	}
	return result
}

// AppendWSLEnv returns a copy of env whose WSLENV list also names key with flags.
// Entries already present are left alone.
func AppendWSLEnv(env []string, key string, flags string) []string {
	item := key
	if flags != "" {
		item += "/" + flags
	}
	current, _ := GetEnv(env, EnvWSLEnv)
	for _, existing := range strings.Split(current, ":") {
		name, _, _ := strings.Cut(existing, "/")
		if name == key {
			return SetEnv(env, EnvWSLEnv, current)
		}
	}
	if current == "" {
		return SetEnv(env, EnvWSLEnv, item)
	}
	return SetEnv(env, EnvWSLEnv, current+":"+item)
}

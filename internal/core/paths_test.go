package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELLFIG_CONFIG", "")
	t.Setenv("XDG_RUNTIME_DIR", "")
	ResetPaths()
	defer ResetPaths()

	assert.Equal(t, home, HomeDir())
	assert.Equal(t, filepath.Join(home, ".shellfig"), DataDir())
	assert.Equal(t, filepath.Join(home, ".shellfig", "shellfig.log"), LogFile())
	assert.Equal(t, filepath.Join(home, ".config", "shellfig", "config.yaml"), ConfigFile())

	// Without XDG_RUNTIME_DIR the agent env file lives in the data dir.
	assert.Equal(t, filepath.Join(home, ".shellfig"), RuntimeDir())
	assert.Equal(t, filepath.Join(home, ".shellfig", "ssh-agent.env"), SSHAgentFile())

	info, err := os.Stat(DataDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPathOverrides(t *testing.T) {
	home := t.TempDir()
	runtime := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "custom.yaml")

	t.Setenv("HOME", home)
	t.Setenv("SHELLFIG_CONFIG", configPath)
	t.Setenv("XDG_RUNTIME_DIR", runtime)
	ResetPaths()
	defer ResetPaths()

	assert.Equal(t, configPath, ConfigFile())
	assert.Equal(t, filepath.Join(runtime, "shellfig"), RuntimeDir())
	assert.Equal(t, filepath.Join(runtime, "shellfig", "ssh-agent.env"), SSHAgentFile())
}

package agent

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/shellfig/shellfig/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const agentOutput = `SSH_AUTH_SOCK=/tmp/ssh-x/agent.123; export SSH_AUTH_SOCK;
SSH_AGENT_PID=123; export SSH_AGENT_PID;
echo Agent pid 123;
`

func TestEnsureSSH(t *testing.T) {
	t.Run("live socket needs no bootstrap", func(t *testing.T) {
		sockPath := filepath.Join(t.TempDir(), "agent.sock")
		ln, err := net.Listen("unix", sockPath)
		require.NoError(t, err)
		defer ln.Close()
		t.Setenv("SSH_AUTH_SOCK", sockPath)

		cmd := testutil.NewFakeCommander()
		b := NewBootstrap(cmd, zap.NewNop(), filepath.Join(t.TempDir(), "ssh-agent.env"))

		code, err := b.EnsureSSH(context.Background())
		require.NoError(t, err)
		assert.Empty(t, code)
		assert.Empty(t, cmd.Calls)
	})

	t.Run("stale socket path starts a fresh agent", func(t *testing.T) {
		// A regular file is not a live agent socket.
		stale := filepath.Join(t.TempDir(), "agent.sock")
		require.NoError(t, os.WriteFile(stale, nil, 0600))
		t.Setenv("SSH_AUTH_SOCK", stale)

		envFile := filepath.Join(t.TempDir(), "ssh-agent.env")
		cmd := testutil.NewFakeCommander()
		cmd.Register("pgrep", "", errors.New("exit status 1"))
		cmd.Register("ssh-agent -s", agentOutput, nil)

		b := NewBootstrap(cmd, zap.NewNop(), envFile)
		code, err := b.EnsureSSH(context.Background())
		require.NoError(t, err)

		assert.Contains(t, code, envFile)
		assert.Contains(t, code, ">/dev/null")

		saved, err := os.ReadFile(envFile)
		require.NoError(t, err)
		assert.Equal(t, agentOutput, string(saved))

		info, err := os.Stat(envFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("reuses a running agent via the saved env file", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")

		envFile := filepath.Join(t.TempDir(), "ssh-agent.env")
		require.NoError(t, os.WriteFile(envFile, []byte(agentOutput), 0600))

		cmd := testutil.NewFakeCommander()
		cmd.Register("pgrep", "1234\n", nil)

		b := NewBootstrap(cmd, zap.NewNop(), envFile)
		code, err := b.EnsureSSH(context.Background())
		require.NoError(t, err)

		assert.Contains(t, code, envFile)
		assert.False(t, cmd.Called("ssh-agent"))
	})

	t.Run("running agent without a saved env file starts a new one", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")

		cmd := testutil.NewFakeCommander()
		cmd.Register("pgrep", "1234\n", nil)
		cmd.Register("ssh-agent -s", agentOutput, nil)

		envFile := filepath.Join(t.TempDir(), "ssh-agent.env")
		b := NewBootstrap(cmd, zap.NewNop(), envFile)
		code, err := b.EnsureSSH(context.Background())
		require.NoError(t, err)

		assert.Contains(t, code, envFile)
		assert.True(t, cmd.Called("ssh-agent"))
	})

	t.Run("ssh-agent failure degrades silently", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")

		cmd := testutil.NewFakeCommander()
		cmd.Register("pgrep", "", errors.New("exit status 1"))
		cmd.Register("ssh-agent -s", "", errors.New("executable file not found in $PATH"))

		b := NewBootstrap(cmd, zap.NewNop(), filepath.Join(t.TempDir(), "ssh-agent.env"))
		code, err := b.EnsureSSH(context.Background())

		require.NoError(t, err)
		assert.Empty(t, code)
	})

	t.Run("creates the runtime dir when missing", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")

		envFile := filepath.Join(t.TempDir(), "deep", "nested", "ssh-agent.env")
		cmd := testutil.NewFakeCommander()
		cmd.Register("pgrep", "", errors.New("exit status 1"))
		cmd.Register("ssh-agent -s", agentOutput, nil)

		b := NewBootstrap(cmd, zap.NewNop(), envFile)
		_, err := b.EnsureSSH(context.Background())
		require.NoError(t, err)

		info, err := os.Stat(filepath.Dir(envFile))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestEnsureGPG(t *testing.T) {
	t.Run("launches gpg-agent via gpgconf", func(t *testing.T) {
		cmd := testutil.NewFakeCommander()
		cmd.Register("gpgconf --launch gpg-agent", "", nil)

		b := NewBootstrap(cmd, zap.NewNop(), "")
		b.EnsureGPG(context.Background())

		assert.True(t, cmd.Called("gpgconf"))
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		cmd := testutil.NewFakeCommander()
		cmd.Register("gpgconf", "", errors.New("not installed"))

		b := NewBootstrap(cmd, nil, "")
		b.EnsureGPG(context.Background()) // must not panic
	})
}

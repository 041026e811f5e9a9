// Package agent bootstraps the SSH and GPG agents for a shell session.
// When no agent is available it starts one and persists its connection
// environment under the runtime directory so later sessions can reuse it.
// Every failure degrades to "no agent" — shell startup is never blocked.
package agent

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/shellfig/shellfig/internal/cmdexec"
	"go.uber.org/zap"
	"mvdan.cc/sh/v3/syntax"
)

// Bootstrap ensures agent processes exist for the current user.
type Bootstrap struct {
	cmd     cmdexec.Commander
	logger  *zap.Logger
	envFile string
}

// NewBootstrap creates a Bootstrap that persists the ssh-agent environment
// to envFile. The logger is optional (can be nil).
func NewBootstrap(cmd cmdexec.Commander, logger *zap.Logger, envFile string) *Bootstrap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bootstrap{
		cmd:     cmd,
		logger:  logger,
		envFile: envFile,
	}
}

// EnsureSSH makes sure an ssh-agent is reachable and returns the shell code
// the session should eval to load its environment. Returns "" when the
// current environment is already usable or no agent could be provided.
func (b *Bootstrap) EnsureSSH(ctx context.Context) (string, error) {
	if socketAlive(os.Getenv("SSH_AUTH_SOCK")) {
		return "", nil
	}

	// A previous session may have started an agent already; reuse its
	// saved environment when the process is still around.
	if b.agentRunning(ctx) {
		if _, err := os.Stat(b.envFile); err == nil {
			return b.sourceLine()
		}
	}

	out, err := b.cmd.Run(ctx, "ssh-agent", "-s")
	if err != nil {
		b.logger.Warn("failed to start ssh-agent", zap.Error(err))
		return "", nil
	}

	if err := os.MkdirAll(filepath.Dir(b.envFile), 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	if err := os.WriteFile(b.envFile, out, 0600); err != nil {
		return "", fmt.Errorf("failed to write agent env file: %w", err)
	}

	b.logger.Info("started ssh-agent", zap.String("envFile", b.envFile))
	return b.sourceLine()
}

// EnsureGPG asks gpgconf to launch the gpg-agent. Failures are logged and
// ignored; gpg may simply not be installed.
func (b *Bootstrap) EnsureGPG(ctx context.Context) {
	if _, err := b.cmd.Run(ctx, "gpgconf", "--launch", "gpg-agent"); err != nil {
		b.logger.Debug("failed to launch gpg-agent", zap.Error(err))
	}
}

// agentRunning reports whether an ssh-agent process exists for the current
// user.
func (b *Bootstrap) agentRunning(ctx context.Context) bool {
	_, err := b.cmd.Run(ctx, "pgrep", "-u", username(), "ssh-agent")
	return err == nil
}

// sourceLine emits the line that loads the saved agent environment.
// ssh-agent's own output echoes its pid, so stdout is silenced.
func (b *Bootstrap) sourceLine() (string, error) {
	quoted, err := syntax.Quote(b.envFile, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("failed to quote agent env path: %w", err)
	}
	return fmt.Sprintf(". %s >/dev/null\n", quoted), nil
}

func socketAlive(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSocket != 0
}

func username() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

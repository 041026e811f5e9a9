// Package cmdexec abstracts external command execution for testability.
// Production code uses the Commander interface; tests inject a fake from
// internal/testutil.
package cmdexec

import (
	"context"
	"os/exec"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its stdout.
	// Stderr is discarded; callers only ever need clean machine output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

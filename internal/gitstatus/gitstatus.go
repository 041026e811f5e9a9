// Package gitstatus queries the git state of a directory for prompt
// rendering. Every failure mode (not a repository, git missing, permission
// error) degrades to "no git state" rather than an error, so a broken git
// setup can never break the prompt.
package gitstatus

import (
	"context"
	"strings"

	"github.com/shellfig/shellfig/internal/cmdexec"
	"go.uber.org/zap"
)

// Summary is the git state of a work tree, reduced to what the prompt needs.
type Summary struct {
	Branch string
	Dirty  bool
}

// Query produces the git Summary for a directory, or nil when the directory
// is not inside a work tree or the state cannot be determined.
type Query interface {
	Summarize(ctx context.Context, dir string) *Summary
}

// ExecQuery implements Query by invoking the git binary, at most three times
// per call.
type ExecQuery struct {
	cmd    cmdexec.Commander
	logger *zap.Logger
}

// NewExecQuery creates an ExecQuery. The logger is optional (can be nil).
func NewExecQuery(cmd cmdexec.Commander, logger *zap.Logger) *ExecQuery {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecQuery{
		cmd:    cmd,
		logger: logger,
	}
}

// Summarize queries git state for dir.
func (q *ExecQuery) Summarize(ctx context.Context, dir string) *Summary {
	out, err := q.cmd.Run(ctx, "git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		q.logger.Debug("not in a git work tree", zap.String("dir", dir), zap.Error(err))
		return nil
	}
	if strings.TrimSpace(string(out)) != "true" {
		// Inside .git itself, or some other non-work-tree location.
		return nil
	}

	statusOut, err := q.cmd.Run(ctx, "git", "-C", dir, "status", "--porcelain")
	if err != nil {
		q.logger.Debug("error running `git status --porcelain`", zap.Error(err))
		return nil
	}
	dirty := strings.TrimSpace(string(statusOut)) != ""

	branchOut, err := q.cmd.Run(ctx, "git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		q.logger.Debug("error running `git rev-parse --abbrev-ref HEAD`", zap.Error(err))
		return nil
	}

	// Only the first line matters; a detached HEAD reads "HEAD" here.
	branch, _, _ := strings.Cut(strings.TrimSpace(string(branchOut)), "\n")
	if branch == "" {
		return nil
	}

	return &Summary{
		Branch: branch,
		Dirty:  dirty,
	}
}

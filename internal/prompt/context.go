package prompt

import (
	"context"
	"os"
	"strings"

	"github.com/shellfig/shellfig/internal/gitstatus"
)

// Context carries every signal the renderer reads. It is rebuilt from
// scratch on each prompt cycle and never mutated afterwards.
type Context struct {
	// ExitStatus of the last foreground command; 0 means success.
	ExitStatus int

	// RemoteSession is true when the shell runs over SSH.
	RemoteSession bool

	// NixShell is the raw nix-shell indicator: empty when not in a nix
	// shell, "pure" for pure shells, anything else counts as impure.
	NixShell string

	// WorkingDir is the display form of the current directory.
	WorkingDir string

	// Git is nil outside a git work tree, or when git state could not be
	// determined.
	Git *gitstatus.Summary
}

// NewContext builds a Context from the process environment and a git query
// against the current directory.
func NewContext(ctx context.Context, exitStatus int, query gitstatus.Query) Context {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}

	var git *gitstatus.Summary
	if wd != "" && query != nil {
		git = query.Summarize(ctx, wd)
	}

	return Context{
		ExitStatus:    exitStatus,
		RemoteSession: os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != "",
		NixShell:      os.Getenv("IN_NIX_SHELL"),
		WorkingDir:    abbreviateHome(wd),
		Git:           git,
	}
}

// abbreviateHome replaces the home directory prefix with ~ for display.
func abbreviateHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || path == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

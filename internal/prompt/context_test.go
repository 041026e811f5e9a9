package prompt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shellfig/shellfig/internal/gitstatus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticQuery returns a fixed summary and records the directory it was
// asked about.
type staticQuery struct {
	summary *gitstatus.Summary
	dir     string
}

func (q *staticQuery) Summarize(_ context.Context, dir string) *gitstatus.Summary {
	q.dir = dir
	return q.summary
}

func TestNewContext(t *testing.T) {
	t.Run("reads remote session indicators", func(t *testing.T) {
		t.Setenv("SSH_CONNECTION", "")
		t.Setenv("SSH_TTY", "")
		assert.False(t, NewContext(context.Background(), 0, nil).RemoteSession)

		t.Setenv("SSH_CONNECTION", "10.0.0.1 50000 10.0.0.2 22")
		assert.True(t, NewContext(context.Background(), 0, nil).RemoteSession)

		t.Setenv("SSH_CONNECTION", "")
		t.Setenv("SSH_TTY", "/dev/pts/3")
		assert.True(t, NewContext(context.Background(), 0, nil).RemoteSession)
	})

	t.Run("reads nix shell indicator verbatim", func(t *testing.T) {
		t.Setenv("IN_NIX_SHELL", "")
		assert.Equal(t, "", NewContext(context.Background(), 0, nil).NixShell)

		t.Setenv("IN_NIX_SHELL", "pure")
		assert.Equal(t, "pure", NewContext(context.Background(), 0, nil).NixShell)

		t.Setenv("IN_NIX_SHELL", "something-else")
		assert.Equal(t, "something-else", NewContext(context.Background(), 0, nil).NixShell)
	})

	t.Run("carries the exit status through", func(t *testing.T) {
		assert.Equal(t, 127, NewContext(context.Background(), 127, nil).ExitStatus)
	})

	t.Run("queries git in the current directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		q := &staticQuery{summary: &gitstatus.Summary{Branch: "main"}}
		ctx := NewContext(context.Background(), 0, q)

		assert.Equal(t, wd, q.dir)
		require.NotNil(t, ctx.Git)
		assert.Equal(t, "main", ctx.Git.Branch)
	})

	t.Run("nil query leaves git state absent", func(t *testing.T) {
		assert.Nil(t, NewContext(context.Background(), 0, nil).Git)
	})
}

func TestAbbreviateHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "~", abbreviateHome(home))
	assert.Equal(t,
		filepath.Join("~", "src", "x"),
		abbreviateHome(filepath.Join(home, "src", "x")))
	assert.Equal(t, "/etc", abbreviateHome("/etc"))
	assert.Equal(t, "", abbreviateHome(""))
}

// Package prompt renders the two-line shell prompt from a per-cycle
// Context. Rendering is a pure function of the Context: identical contexts
// always produce identical strings.
package prompt

import (
	"strings"
)

// Rendered is one render call's output: the primary prompt and the
// continuation prompt shown while a multi-line command is being entered.
type Rendered struct {
	Primary      string
	Continuation string
}

// Renderer assembles prompt strings for one shell dialect.
type Renderer struct {
	dialect Dialect

	// Trailing prompt characters, overridable from configuration.
	symbol       string
	continuation string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSymbols overrides the prompt and continuation characters. Empty
// values keep the defaults.
func WithSymbols(symbol, continuation string) Option {
	return func(r *Renderer) {
		if symbol != "" {
			r.symbol = symbol
		}
		if continuation != "" {
			r.continuation = continuation
		}
	}
}

// NewRenderer creates a Renderer for the given dialect.
func NewRenderer(dialect Dialect, opts ...Option) *Renderer {
	r := &Renderer{
		dialect:      dialect,
		symbol:       "+",
		continuation: "|",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the primary and continuation prompts for ctx. The
// continuation prompt reuses the exit color computed here, so a multi-line
// edit keeps the color of the command that triggered it.
func (r *Renderer) Render(ctx Context) Rendered {
	exitColor := ColorGreen
	if ctx.ExitStatus != 0 {
		exitColor = ColorRed
	}

	hostColor := ColorBlue
	if ctx.RemoteSession {
		hostColor = ColorRed
	}

	d := r.dialect

	var b strings.Builder
	b.WriteString(d.paint(ColorWhite))
	b.WriteString(d.Time)
	b.WriteString(" ")
	b.WriteString(r.nixFragment(ctx.NixShell))
	b.WriteString(d.paint(ColorGreen))
	b.WriteString(d.User)
	b.WriteString(d.paint(ColorWhite))
	b.WriteString("@")
	b.WriteString(d.paint(hostColor))
	b.WriteString(d.Host)
	b.WriteString(d.paint(ColorWhite))
	b.WriteString(":")
	b.WriteString(d.paint(ColorReset))
	b.WriteString(ctx.WorkingDir)
	b.WriteString(r.gitFragment(ctx))
	b.WriteString("\n")
	b.WriteString(d.paint(exitColor))
	b.WriteString(" ")
	b.WriteString(r.symbol)
	b.WriteString(d.paint(ColorReset))
	b.WriteString(" ")

	return Rendered{
		Primary:      b.String(),
		Continuation: d.paint(exitColor) + " " + r.continuation + d.paint(ColorReset) + " ",
	}
}

// nixFragment renders "(nix-shell: mode) " with the mode colored, or nothing
// when not in a nix shell. Any mode other than "pure" is shown red; unknown
// values are deliberately accepted rather than enumerated.
func (r *Renderer) nixFragment(mode string) string {
	if mode == "" {
		return ""
	}
	color := ColorRed
	if mode == "pure" {
		color = ColorGreen
	}
	return "(nix-shell: " + r.dialect.paint(color) + mode + r.dialect.paint(ColorReset) + ") "
}

// gitFragment renders " (branch)" with the branch green when clean and red
// when dirty, or nothing outside a work tree.
func (r *Renderer) gitFragment(ctx Context) string {
	if ctx.Git == nil {
		return ""
	}
	color := ColorGreen
	if ctx.Git.Dirty {
		color = ColorRed
	}
	return " (" + r.dialect.paint(color) + ctx.Git.Branch + r.dialect.paint(ColorReset) + ")"
}

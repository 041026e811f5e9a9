package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shellfig/shellfig/internal/config"
	"github.com/shellfig/shellfig/internal/gitstatus"
	"github.com/shellfig/shellfig/internal/prompt"
	"golang.org/x/term"
)

// runPreview renders representative prompt states directly to the terminal
// with the placeholders filled in, so a config change can be inspected
// without opening a new session.
func runPreview(cfg *config.Config) error {
	username := "user"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "host"
	}

	dialect := prompt.Term(time.Now().Format("15:04:05"), username, hostname)
	renderer := prompt.NewRenderer(dialect,
		prompt.WithSymbols(cfg.Prompt.Symbol, cfg.Prompt.Continuation))

	samples := []struct {
		label string
		ctx   prompt.Context
	}{
		{"last command succeeded", prompt.Context{
			WorkingDir: "~/src/project",
			Git:        &gitstatus.Summary{Branch: "main"},
		}},
		{"last command failed", prompt.Context{
			ExitStatus: 127,
			WorkingDir: "~/src/project",
			Git:        &gitstatus.Summary{Branch: "main", Dirty: true},
		}},
		{"remote session, no repository", prompt.Context{
			RemoteSession: true,
			WorkingDir:    "/var/log",
		}},
		{"pure nix shell", prompt.Context{
			NixShell:   "pure",
			WorkingDir: "~/src/project",
			Git:        &gitstatus.Summary{Branch: "main"},
		}},
	}

	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
			width = w
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(width - 4)

	for _, sample := range samples {
		rendered := renderer.Render(sample.ctx)
		fmt.Println(labelStyle.Render(sample.label))
		fmt.Println(boxStyle.Render(rendered.Primary + "echo hello && \n" + rendered.Continuation))
		fmt.Println()
	}

	return nil
}

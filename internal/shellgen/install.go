package shellgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// DetectShell returns the basename of the user's login shell, or "bash"
// when $SHELL is unset.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return "bash"
	}
	return filepath.Base(sh)
}

// RCPath resolves the rc file the hook should be installed into.
func RCPath(shell, homeDir string) (string, error) {
	switch shell {
	case "bash", "":
		return filepath.Join(homeDir, ".bashrc"), nil
	case "zsh":
		return filepath.Join(homeDir, ".zshrc"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// InstallHook appends the init eval line to the rc file. Returns false when
// the hook is already installed (detected via the integration marker).
func InstallHook(shell, rcPath, execPath string) (bool, error) {
	existing, _ := os.ReadFile(rcPath) // missing file reads as empty
	if strings.Contains(string(existing), integrationMarker) {
		return false, nil
	}

	qexec, err := syntax.Quote(execPath, syntax.LangBash)
	if err != nil {
		return false, fmt.Errorf("failed to quote executable path: %w", err)
	}

	snippet := fmt.Sprintf("\n%s\neval \"$(%s init -shell %s)\"\n", integrationMarker, qexec, shell)
	if err := selfCheck(snippet); err != nil {
		return false, err
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", rcPath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(snippet); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", rcPath, err)
	}

	return true, nil
}

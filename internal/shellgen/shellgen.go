// Package shellgen emits the shell code shellfig hands to the host shell:
// the session init script and the per-cycle prompt variable assignments.
// All user-controlled values are quoted, and every generated script is
// round-tripped through a shell parser before being returned.
package shellgen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shellfig/shellfig/internal/config"
	"github.com/shellfig/shellfig/internal/prompt"
	"mvdan.cc/sh/v3/syntax"
)

// integrationMarker guards against installing the hook twice and labels
// generated output.
const integrationMarker = "# shellfig shell integration"

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// InitScript renders the init script the host shell evals at session start:
// exports, aliases, the agent bootstrap, and the prompt hook.
func InitScript(cfg *config.Config, shell string, execPath string) (string, error) {
	if _, err := prompt.DialectFor(shell); err != nil {
		return "", err
	}
	if shell == "" {
		shell = "bash"
	}

	qexec, err := syntax.Quote(execPath, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("failed to quote executable path: %w", err)
	}

	var b strings.Builder
	b.WriteString(integrationMarker + "\n")

	for _, name := range sortedKeys(cfg.Exports) {
		if !validName.MatchString(name) {
			return "", fmt.Errorf("invalid export name: %q", name)
		}
		quoted, err := syntax.Quote(cfg.Exports[name], syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("failed to quote export %s: %w", name, err)
		}
		fmt.Fprintf(&b, "export %s=%s\n", name, quoted)
	}

	for _, name := range sortedKeys(cfg.Aliases) {
		if !validName.MatchString(name) {
			return "", fmt.Errorf("invalid alias name: %q", name)
		}
		quoted, err := syntax.Quote(cfg.Aliases[name], syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("failed to quote alias %s: %w", name, err)
		}
		fmt.Fprintf(&b, "alias %s=%s\n", name, quoted)
	}

	if cfg.Agent.SSH || cfg.Agent.GPG {
		fmt.Fprintf(&b, "eval \"$(%s agent)\"\n", qexec)
	}

	// The hook evals the assignments for PS1/PS2 before every prompt
	// display. $? must be expanded before anything else runs, so it is
	// the first word the function evaluates.
	fmt.Fprintf(&b, "_shellfig_prompt() {\n")
	fmt.Fprintf(&b, "\teval \"$(%s hook -shell %s -status $?)\"\n", qexec, shell)
	fmt.Fprintf(&b, "}\n")
	if shell == "zsh" {
		b.WriteString("precmd() { _shellfig_prompt; }\n")
	} else {
		b.WriteString("PROMPT_COMMAND=_shellfig_prompt\n")
	}

	script := b.String()
	if err := selfCheck(script); err != nil {
		return "", err
	}
	return script, nil
}

// PromptAssignments renders the shell code that assigns the primary and
// continuation prompt variables for one prompt cycle.
func PromptAssignments(shell string, r prompt.Rendered) (string, error) {
	primaryVar := "PS1"
	if shell == "zsh" {
		primaryVar = "PROMPT"
	}

	qPrimary, err := syntax.Quote(r.Primary, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("failed to quote primary prompt: %w", err)
	}
	qContinuation, err := syntax.Quote(r.Continuation, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("failed to quote continuation prompt: %w", err)
	}

	script := fmt.Sprintf("%s=%s\nPS2=%s\n", primaryVar, qPrimary, qContinuation)
	if err := selfCheck(script); err != nil {
		return "", err
	}
	return script, nil
}

// selfCheck parses the generated script so malformed output is caught here
// instead of inside the user's shell.
func selfCheck(script string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(script), "shellfig")
	if err != nil {
		return fmt.Errorf("generated script failed to parse: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

package prompt

import "fmt"

// Color is one of the prompt's presentation colors. The mapping from Color
// to escape markup is fixed per Dialect.
type Color int

const (
	ColorReset Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
)

// Dialect describes how one host shell wants escape sequences and runtime
// placeholders written. Timestamp, user name, and hostname are deliberately
// emitted as placeholders rather than resolved here: the host shell expands
// them at display time, so the rendered template stays valid for the whole
// session.
type Dialect struct {
	Name string

	// Placeholders the host shell substitutes at display time.
	Time string
	User string
	Host string

	colors map[Color]string
}

func (d Dialect) paint(c Color) string {
	return d.colors[c]
}

// Bash wraps each escape in \[ \] so readline excludes it from line-width
// accounting, and uses PS1 backslash placeholders.
var Bash = Dialect{
	Name: "bash",
	Time: `\t`,
	User: `\u`,
	Host: `\h`,
	colors: map[Color]string{
		ColorReset: `\[\e[0m\]`,
		ColorRed:   `\[\e[31m\]`,
		ColorGreen: `\[\e[32m\]`,
		ColorBlue:  `\[\e[34m\]`,
		ColorWhite: `\[\e[37m\]`,
	},
}

// Zsh uses prompt-expansion color codes, which come with their own width
// accounting, and %-style placeholders.
var Zsh = Dialect{
	Name: "zsh",
	Time: `%*`,
	User: `%n`,
	Host: `%m`,
	colors: map[Color]string{
		ColorReset: `%f`,
		ColorRed:   `%F{red}`,
		ColorGreen: `%F{green}`,
		ColorBlue:  `%F{blue}`,
		ColorWhite: `%F{white}`,
	},
}

// Term emits raw ANSI sequences with the placeholders already filled in.
// It is only used for preview output written directly to a terminal.
func Term(timestamp, user, host string) Dialect {
	return Dialect{
		Name: "term",
		Time: timestamp,
		User: user,
		Host: host,
		colors: map[Color]string{
			ColorReset: "\x1b[0m",
			ColorRed:   "\x1b[31m",
			ColorGreen: "\x1b[32m",
			ColorBlue:  "\x1b[34m",
			ColorWhite: "\x1b[37m",
		},
	}
}

// DialectFor resolves a shell name to its Dialect.
func DialectFor(shell string) (Dialect, error) {
	switch shell {
	case "bash", "":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported shell: %s", shell)
	}
}

package styles

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	stderr = termenv.NewOutput(os.Stderr)

	// Diagnostics go to stderr only; stdout is reserved for shell code
	// that the host shell evals.
	ERROR = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("9")).
			String()
	}
	WARNING = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("11")).
			String()
	}
	LOG = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("8")).
			String()
	}
)

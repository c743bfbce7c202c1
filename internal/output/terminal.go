package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether colored output should be written to f.
// Colors are off when noColor is set, when NO_COLOR is present in the
// environment, or when f is not a terminal.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

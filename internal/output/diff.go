package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// FormatDiff renders a line diff between two renderings. Removed lines are
// prefixed with "- ", added lines with "+ " and unchanged lines with "  ".
func FormatDiff(from, to string, noColor bool) string {
	scheme := SchemeFor(noColor)
	dmp := diffmatchpatch.New()

	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				buf.WriteString(scheme.Removed.Sprint("- "+line) + "\n")
			case diffmatchpatch.DiffInsert:
				buf.WriteString(scheme.Added.Sprint("+ "+line) + "\n")
			default:
				buf.WriteString("  " + line + "\n")
			}
		}
	}
	return buf.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Method      *color.Color
	URL         *color.Color
	HeaderKey   *color.Color
	HeaderValue *color.Color
	Meta        *color.Color
	Added       *color.Color
	Removed     *color.Color
	Success     *color.Color
	Error       *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Method:      color.New(color.FgBlue, color.Bold),
		URL:         color.New(color.FgCyan),
		HeaderKey:   color.New(color.FgYellow),
		HeaderValue: color.New(color.FgWhite),
		Meta:        color.New(color.FgHiBlack),
		Added:       color.New(color.FgGreen),
		Removed:     color.New(color.FgRed),
		Success:     color.New(color.FgGreen),
		Error:       color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.colors() {
		c.DisableColor()
	}
	return scheme
}

// SchemeFor returns NoColorScheme when noColor is set, and otherwise the
// default scheme with colors forced on regardless of the detected terminal.
func SchemeFor(noColor bool) *ColorScheme {
	if noColor {
		return NoColorScheme()
	}
	scheme := DefaultColorScheme()
	for _, c := range scheme.colors() {
		c.EnableColor()
	}
	return scheme
}

func (s *ColorScheme) colors() []*color.Color {
	return []*color.Color{
		s.Method, s.URL, s.HeaderKey, s.HeaderValue,
		s.Meta, s.Added, s.Removed, s.Success, s.Error,
	}
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	return SchemeFor(noColor).Success.Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	return SchemeFor(noColor).Error.Sprint("✗")
}

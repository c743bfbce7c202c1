package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/wesleyorama2/reqbuild/request"
)

// Formatter is responsible for formatting built requests in text format
type Formatter struct {
	Verbose bool
	NoColor bool
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
	}
}

// NewFormatterWithFormat creates a new formatter with the specified output format
func NewFormatterWithFormat(format OutputFormat, verbose, noColor bool) FormatProvider {
	return GetFormatter(format, verbose, noColor)
}

// FormatRequest formats a request for display
func (f *Formatter) FormatRequest(req *request.Request) (string, error) {
	scheme := SchemeFor(f.NoColor)
	var buf strings.Builder

	fmt.Fprintf(&buf, "▶ REQUEST: %s %s\n", scheme.Method.Sprint(req.Method()), scheme.URL.Sprint(req.URI()))

	pairs := req.RawHeaders()
	if f.Verbose || len(pairs) > 0 {
		buf.WriteString("  Headers:\n")
		for _, pair := range pairs {
			fmt.Fprintf(&buf, "    %s: %s\n", scheme.HeaderKey.Sprint(pair[0]), scheme.HeaderValue.Sprint(pair[1]))
		}
	}

	body, err := req.BodyBytes()
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	if len(body) == 0 {
		if f.Verbose {
			buf.WriteString("  Body: " + scheme.Meta.Sprint("(empty)") + "\n")
		}
		return buf.String(), nil
	}

	size := humanize.Bytes(uint64(len(body)))
	if !utf8.Valid(body) {
		fmt.Fprintf(&buf, "  Body: %s\n", scheme.Meta.Sprintf("(%s, binary)", size))
		return buf.String(), nil
	}

	fmt.Fprintf(&buf, "  Body: %s\n", scheme.Meta.Sprintf("(%s)", size))
	buf.WriteString("  " + formatJSONString(string(body)) + "\n")

	return buf.String(), nil
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, []byte(s), "  ", "  ")
	if err != nil {
		return s
	}
	return prettyJSON.String()
}

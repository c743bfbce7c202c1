package output

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wesleyorama2/reqbuild/request"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
	// FormatWire outputs the HTTP/1.1 message as it would be written to a connection
	FormatWire OutputFormat = "wire"
)

// Formats lists every supported output format.
var Formats = []OutputFormat{FormatText, FormatJSON, FormatYAML, FormatWire}

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name into an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	if format == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if format == known {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Body encodings used in RequestData.
const (
	EncodingJSON   = "json"
	EncodingText   = "text"
	EncodingBase64 = "base64"
)

// HeaderData is a single header line of a request.
type HeaderData struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// BodyData represents a request body. Content holds decoded JSON for JSON
// bodies, the text for UTF-8 bodies, and base64 otherwise.
type BodyData struct {
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Size        int64  `json:"size" yaml:"size"`
	Encoding    string `json:"encoding" yaml:"encoding"`
	Content     any    `json:"content" yaml:"content"`
}

// RequestData represents the structured data of an HTTP request
type RequestData struct {
	Method  string       `json:"method" yaml:"method"`
	URL     string       `json:"url" yaml:"url"`
	Headers []HeaderData `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    *BodyData    `json:"body,omitempty" yaml:"body,omitempty"`
}

// NewRequestData converts a request into its structured form.
func NewRequestData(req *request.Request) (*RequestData, error) {
	data := &RequestData{
		Method: req.Method(),
		URL:    req.URI(),
	}
	for _, pair := range req.RawHeaders() {
		data.Headers = append(data.Headers, HeaderData{Name: pair[0], Value: pair[1]})
	}

	if req.Body().Len() == 0 {
		return data, nil
	}

	content, err := req.BodyBytes()
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}

	body := &BodyData{
		ContentType: req.Header("Content-Type"),
		Size:        int64(len(content)),
	}
	switch {
	case isJSON(body.ContentType) && json.Valid(content):
		var decoded any
		if err := json.Unmarshal(content, &decoded); err != nil {
			return nil, fmt.Errorf("error decoding JSON body: %w", err)
		}
		body.Encoding = EncodingJSON
		body.Content = decoded
	case utf8.Valid(content):
		body.Encoding = EncodingText
		body.Content = string(content)
	default:
		body.Encoding = EncodingBase64
		body.Content = base64.StdEncoding.EncodeToString(content)
	}
	data.Body = body

	return data, nil
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// FormatRequest formats a request as JSON
func (f *JSONFormatter) FormatRequest(req *request.Request) (string, error) {
	data, err := NewRequestData(req)
	if err != nil {
		return "", err
	}

	var out []byte
	if f.Pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	return string(out) + "\n", nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// FormatRequest formats a request as YAML
func (f *YAMLFormatter) FormatRequest(req *request.Request) (string, error) {
	data, err := NewRequestData(req)
	if err != nil {
		return "", err
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	return string(out), nil
}

// WireFormatter renders the HTTP/1.1 request message: request line, Host,
// headers in order, Content-Length when the body is not empty, then the body.
type WireFormatter struct{}

// FormatRequest formats a request as an HTTP/1.1 message
func (f *WireFormatter) FormatRequest(req *request.Request) (string, error) {
	u := req.URL()

	target := u.RequestURI()
	if req.Method() == "CONNECT" {
		target = u.Host
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s %s HTTP/1.1\r\n", req.Method(), target)

	headers := req.Headers()
	if !headers.Has("Host") {
		fmt.Fprintf(&buf, "Host: %s\r\n", u.Host)
	}
	for _, pair := range headers.Pairs() {
		fmt.Fprintf(&buf, "%s: %s\r\n", pair[0], pair[1])
	}

	body, err := req.BodyBytes()
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	if len(body) > 0 && !headers.Has("Content-Length") {
		buf.WriteString("Content-Length: " + strconv.Itoa(len(body)) + "\r\n")
	}
	buf.WriteString("\r\n")
	buf.Write(body)

	return buf.String(), nil
}

// GetFormatter returns the formatter for format; unknown formats fall back
// to the text formatter.
func GetFormatter(format OutputFormat, verbose bool, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatWire:
		return &WireFormatter{}
	default:
		return NewFormatter(verbose, noColor)
	}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

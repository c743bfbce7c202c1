package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/reqbuild/request"
)

func jsonRequest(t *testing.T) *request.Request {
	t.Helper()
	req, err := request.WithHeader("Accept", "application/json").
		WithJSONBody(map[string]string{"name": "Ada"}).
		Post("https://api.example.com/users")
	require.NoError(t, err)
	return req
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{input: "", expected: FormatText},
		{input: "text", expected: FormatText},
		{input: " JSON ", expected: FormatJSON},
		{input: "yaml", expected: FormatYAML},
		{input: "wire", expected: FormatWire},
		{input: "junit", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatter_FormatRequest(t *testing.T) {
	out, err := NewFormatter(false, true).FormatRequest(jsonRequest(t))
	require.NoError(t, err)

	expected := "▶ REQUEST: POST https://api.example.com/users\n" +
		"  Headers:\n" +
		"    Accept: application/json\n" +
		"    Content-Type: application/json; charset=utf-8\n" +
		"  Body: (14 B)\n" +
		"  {\n" +
		"    \"name\": \"Ada\"\n" +
		"  }\n"
	assert.Equal(t, expected, out)
}

func TestFormatter_VerboseEmptyRequest(t *testing.T) {
	req, err := request.Get("http://example.com/")
	require.NoError(t, err)

	out, err := NewFormatter(true, true).FormatRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "▶ REQUEST: GET http://example.com/\n  Headers:\n  Body: (empty)\n", out)

	out, err = NewFormatter(false, true).FormatRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "▶ REQUEST: GET http://example.com/\n", out)
}

func TestFormatter_BinaryBody(t *testing.T) {
	req, err := request.New().
		WithRequestBody(request.NewRawBodyBytes([]byte{0xff, 0xfe, 0x00}, "application/octet-stream")).
		Put("http://example.com/blob")
	require.NoError(t, err)

	out, err := NewFormatter(false, true).FormatRequest(req)
	require.NoError(t, err)
	assert.Contains(t, out, "  Body: (3 B, binary)\n")
}

func TestFormatter_Colors(t *testing.T) {
	out, err := NewFormatter(false, false).FormatRequest(jsonRequest(t))
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, err = NewFormatter(false, true).FormatRequest(jsonRequest(t))
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestJSONFormatter_FormatRequest(t *testing.T) {
	out, err := GetFormatter(FormatJSON, false, true).FormatRequest(jsonRequest(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"method": "POST",
		"url": "https://api.example.com/users",
		"headers": [
			{"name": "Accept", "value": "application/json"},
			{"name": "Content-Type", "value": "application/json; charset=utf-8"}
		],
		"body": {
			"contentType": "application/json; charset=utf-8",
			"size": 14,
			"encoding": "json",
			"content": {"name": "Ada"}
		}
	}`, out)
}

func TestYAMLFormatter_FormatRequest(t *testing.T) {
	req, err := request.WithBody("1,2,3", "text/csv").Post("https://example.com/import")
	require.NoError(t, err)

	out, err := GetFormatter(FormatYAML, false, true).FormatRequest(req)
	require.NoError(t, err)

	assert.YAMLEq(t, `
method: POST
url: https://example.com/import
headers:
  - name: Content-Type
    value: text/csv
body:
  contentType: text/csv
  size: 5
  encoding: text
  content: "1,2,3"
`, out)
}

func TestNewRequestData_Base64Body(t *testing.T) {
	req, err := request.New().
		WithRequestBody(request.NewRawBodyBytes([]byte{0xff, 0xfe}, "application/octet-stream")).
		Post("http://example.com/")
	require.NoError(t, err)

	data, err := NewRequestData(req)
	require.NoError(t, err)
	require.NotNil(t, data.Body)
	assert.Equal(t, EncodingBase64, data.Body.Encoding)
	assert.Equal(t, "//4=", data.Body.Content)
}

func TestWireFormatter_FormatRequest(t *testing.T) {
	out, err := GetFormatter(FormatWire, false, true).FormatRequest(jsonRequest(t))
	require.NoError(t, err)

	expected := "POST /users HTTP/1.1\r\n" +
		"Host: api.example.com\r\n" +
		"Accept: application/json\r\n" +
		"Content-Type: application/json; charset=utf-8\r\n" +
		"Content-Length: 14\r\n" +
		"\r\n" +
		`{"name":"Ada"}`
	assert.Equal(t, expected, out)
}

func TestWireFormatter_Targets(t *testing.T) {
	connect, err := request.Connect("http://proxy.example.com:443")
	require.NoError(t, err)
	out, err := (&WireFormatter{}).FormatRequest(connect)
	require.NoError(t, err)
	assert.Equal(t, "CONNECT proxy.example.com:443 HTTP/1.1\r\nHost: proxy.example.com:443\r\n\r\n", out)

	get, err := request.New().WithQueryParam("q", "go lang").Get("http://example.com")
	require.NoError(t, err)
	out, err = (&WireFormatter{}).FormatRequest(get)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "GET /?q=go+lang HTTP/1.1\r\n"))
}

func TestGetFormatter_Fallback(t *testing.T) {
	assert.IsType(t, &Formatter{}, GetFormatter("unknown", false, false))
	assert.IsType(t, &WireFormatter{}, NewFormatterWithFormat(FormatWire, false, false))
}

func TestFormatDiff(t *testing.T) {
	out := FormatDiff("a\nb\nc\n", "a\nx\nc\n", true)
	assert.Equal(t, "  a\n- b\n+ x\n  c\n", out)

	assert.Equal(t, "  same\n", FormatDiff("same\n", "same\n", true))
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(nil, false))
	assert.False(t, ColorEnabled(os.Stdout, true))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled(f, false))
}

func TestIcons(t *testing.T) {
	assert.Equal(t, "✓", SuccessIcon(true))
	assert.Equal(t, "✗", ErrorIcon(true))
	assert.Contains(t, SuccessIcon(false), "✓")
}

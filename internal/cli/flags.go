package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wesleyorama2/reqbuild/request"
)

var (
	errMalformedPair     = errors.New(`expected the form "name=value"`)
	errConflictingBodies = errors.New("only one of --data, --json and --form may be set")
	errContentTypeNoData = errors.New("--content-type requires --data")
)

// requestFlags are the flags describing a request on the command line.
type requestFlags struct {
	headers     []string
	query       []string
	data        string
	contentType string
	json        string
	form        []string
}

func (f *requestFlags) register(flags *pflag.FlagSet) {
	flags.StringArrayVarP(&f.headers, "header", "H", nil,
		`HTTP headers to include as "Name: value" (can be used multiple times)`)
	flags.StringArrayVarP(&f.query, "query", "q", nil,
		"query parameters as name=value (can be used multiple times)")
	flags.StringVarP(&f.data, "data", "d", "",
		"raw request body, or @file to read it from a file")
	flags.StringVar(&f.contentType, "content-type", "",
		"media type of the --data body (default text/plain)")
	flags.StringVarP(&f.json, "json", "j", "",
		"JSON request body, or @file to read it from a file")
	flags.StringArrayVarP(&f.form, "form", "f", nil,
		"form fields as name=value, or name=@file to attach a file (can be used multiple times)")
}

// builder turns the flags into a request builder. defaults are applied
// first so that --header values replace them.
func (f *requestFlags) builder(defaults request.Headers) (request.Builder, error) {
	headers, err := request.ParseHeaderLines(f.headers)
	if err != nil {
		return request.Builder{}, fmt.Errorf("invalid --header: %w", err)
	}

	b := request.New().SetHeaders(defaults...).AddHeaders(headers...)

	for _, param := range f.query {
		name, value, err := parseKeyValue(param)
		if err != nil {
			return request.Builder{}, fmt.Errorf("invalid --query: %w", err)
		}
		b = b.WithQueryParam(name, value)
	}

	bodies := 0
	for _, set := range []bool{f.data != "", f.json != "", len(f.form) > 0} {
		if set {
			bodies++
		}
	}
	if bodies > 1 {
		return request.Builder{}, errConflictingBodies
	}
	if f.contentType != "" && f.data == "" {
		return request.Builder{}, errContentTypeNoData
	}

	switch {
	case f.json != "":
		content, err := readValue(f.json)
		if err != nil {
			return request.Builder{}, err
		}
		b = b.WithJSONBody(json.RawMessage(content))
	case len(f.form) > 0:
		form, err := f.formBody()
		if err != nil {
			return request.Builder{}, err
		}
		b = b.WithFormBody(form)
	case f.data != "":
		content, err := readValue(f.data)
		if err != nil {
			return request.Builder{}, err
		}
		b = b.WithRequestBody(request.NewRawBodyBytes(content, f.contentType))
	}

	return b, b.Err()
}

func (f *requestFlags) formBody() (request.Form, error) {
	form := request.NewForm()

	for _, field := range f.form {
		name, value, err := parseKeyValue(field)
		if err != nil {
			return request.Form{}, fmt.Errorf("invalid --form: %w", err)
		}

		if path, ok := strings.CutPrefix(value, "@"); ok {
			content, err := os.ReadFile(path)
			if err != nil {
				return request.Form{}, fmt.Errorf("error reading form file: %w", err)
			}
			form = form.AddFile(name, request.FormFile{Filename: filepath.Base(path), Content: content})
			continue
		}

		form = form.AddField(name, value)
	}

	return form, nil
}

// addOutputFlags registers the flags controlling how a request is printed.
// output and no-color are read by settings.BindFlags.
func addOutputFlags(flags *pflag.FlagSet, verbose *bool) {
	flags.StringP("output", "o", "", "output format: text, json, yaml or wire")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolVarP(verbose, "verbose", "v", false, "Enable verbose output")
}

func parseKeyValue(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q", errMalformedPair, s)
	}
	return name, value, nil
}

// readValue returns s, or the content of the file named after a leading @.
func readValue(s string) ([]byte, error) {
	path, ok := strings.CutPrefix(s, "@")
	if !ok {
		return []byte(s), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return content, nil
}

// normalizeURL adds an http scheme to URLs given without one.
func normalizeURL(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "http://" + rawURL
	}
	return rawURL
}

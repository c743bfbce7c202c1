package request

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Builder accumulates headers, query parameters and a body, then produces a
// Request for a method and URI.
//
// Builder is a value type. Every method returns a new Builder and leaves the
// receiver untouched, so a partially configured Builder can be reused for
// many requests and shared between goroutines.
//
// The first failing step (an unserializable JSON body, an invalid header)
// is recorded and reported by Err and by every terminal method.
type Builder struct {
	headers Headers
	query   Headers
	body    Body
	baseURL *url.URL
	err     error
}

// New returns an empty Builder.
func New() Builder {
	return Builder{}
}

// Err returns the first error recorded while configuring the builder.
func (b Builder) Err() error {
	return b.err
}

// Headers returns a copy of the headers set on the builder. Headers declared
// by the body are not included.
func (b Builder) Headers() Headers {
	return b.headers.Clone()
}

// Body returns the configured body, or EmptyBody if none is set.
func (b Builder) Body() Body {
	if b.body == nil {
		return EmptyBody{}
	}
	return b.body
}

// SetHeaders replaces the entire header set.
func (b Builder) SetHeaders(headers ...Header) Builder {
	if b.err != nil {
		return b
	}
	if err := validateHeaders(headers); err != nil {
		b.err = err
		return b
	}
	b.headers = Headers(nil).Merge(headers)
	return b
}

// AddHeaders merges headers into the existing set. Incoming headers win on
// conflicting names; other headers keep their position.
func (b Builder) AddHeaders(headers ...Header) Builder {
	if b.err != nil {
		return b
	}
	if err := validateHeaders(headers); err != nil {
		b.err = err
		return b
	}
	b.headers = b.headers.Merge(headers)
	return b
}

// SetHeader sets or overwrites a single header.
func (b Builder) SetHeader(name string, values ...string) Builder {
	if b.err != nil {
		return b
	}
	header := H(name, values...)
	if err := validateHeaders([]Header{header}); err != nil {
		b.err = err
		return b
	}
	b.headers = b.headers.Set(header.Name, header.Values...)
	return b
}

// WithBasicAuth sets the Authorization header to HTTP basic credentials.
func (b Builder) WithBasicAuth(username, password string) Builder {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return b.SetHeader("Authorization", "Basic "+token)
}

// WithBearerToken sets the Authorization header to a bearer token.
func (b Builder) WithBearerToken(token string) Builder {
	return b.SetHeader("Authorization", "Bearer "+token)
}

// WithQueryParam appends a query parameter. Multiple values for the same
// name can be added by calling it repeatedly.
func (b Builder) WithQueryParam(name, value string) Builder {
	if b.err != nil {
		return b
	}
	query := b.query.Clone()
	b.query = append(query, H(name, value))
	return b
}

// WithQueryParams appends query parameters in order.
func (b Builder) WithQueryParams(params ...Header) Builder {
	for _, param := range params {
		for _, value := range param.Values {
			b = b.WithQueryParam(param.Name, value)
		}
	}
	return b
}

// WithBaseURL makes relative request URIs resolve against base.
func (b Builder) WithBaseURL(base string) Builder {
	if b.err != nil {
		return b
	}
	u, err := parseURI(base)
	if err != nil {
		b.err = err
		return b
	}
	b.baseURL = u
	return b
}

// WithJSONBody sets a JSON body. v is either a *JSONBody, a json.RawMessage
// or any value encoding/json can marshal; the latter is serialized now.
func (b Builder) WithJSONBody(v any) Builder {
	if b.err != nil {
		return b
	}
	body, err := jsonBodyOf(v)
	if err != nil {
		b.err = err
		return b
	}
	b.body = body
	return b
}

// WithFormBody sets a form body from a Form, a *FormBody, a []Header,
// url.Values or a map[string]string.
func (b Builder) WithFormBody(v any) Builder {
	if b.err != nil {
		return b
	}
	body, err := formBodyOf(v)
	if err != nil {
		b.err = err
		return b
	}
	b.body = body
	return b
}

// WithBody sets a raw text body. An empty contentType means text/plain.
func (b Builder) WithBody(content, contentType string) Builder {
	if b.err != nil {
		return b
	}
	b.body = NewRawBody(content, contentType)
	return b
}

// WithRequestBody sets any Body implementation.
func (b Builder) WithRequestBody(body Body) Builder {
	if b.err != nil {
		return b
	}
	if body == nil {
		body = EmptyBody{}
	}
	if err := checkBody(body); err != nil {
		b.err = err
		return b
	}
	if err := validateHeaders(body.Headers()); err != nil {
		b.err = err
		return b
	}
	b.body = body
	return b
}

// checkBody rejects nil and zero values of the built-in body types.
func checkBody(body Body) error {
	var err error
	switch body := body.(type) {
	case *RawBody:
		if body == nil {
			err = fmt.Errorf("%w: nil *RawBody", ErrUnsupportedBody)
		} else if body.contentType == "" {
			err = fmt.Errorf("%w: zero RawBody", ErrUnsupportedBody)
		}
	case *JSONBody:
		_, err = jsonBodyOf(body)
	case *FormBody:
		_, err = formBodyOf(body)
	}
	return err
}

// Build creates a request with the given method and URI.
//
// The request headers are the builder headers in order, followed by each
// header declared by the body whose name the builder does not already set.
// Headers set explicitly on the builder therefore always win over headers
// derived from the body, whichever was configured first.
func (b Builder) Build(method, uri string) (*Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	u, err := parseURI(uri)
	if err != nil {
		return nil, err
	}
	return b.BuildURL(method, u)
}

// BuildURL is Build for an already parsed URL. u is copied.
func (b Builder) BuildURL(method string, u *url.URL) (*Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if u == nil {
		return nil, &MalformedURIError{Err: errors.New("nil url")}
	}

	target := *u
	if b.baseURL != nil && !target.IsAbs() {
		target = *b.baseURL.ResolveReference(&target)
	}
	if len(b.query) > 0 {
		target.RawQuery = appendQuery(target.RawQuery, b.query)
	}

	body := b.Body()
	return &Request{
		method:  method,
		url:     &target,
		headers: b.headers.Fill(body.Headers()),
		body:    body,
	}, nil
}

// Get builds a GET request.
func (b Builder) Get(uri string) (*Request, error) { return b.Build(http.MethodGet, uri) }

// Post builds a POST request.
func (b Builder) Post(uri string) (*Request, error) { return b.Build(http.MethodPost, uri) }

// Put builds a PUT request.
func (b Builder) Put(uri string) (*Request, error) { return b.Build(http.MethodPut, uri) }

// Patch builds a PATCH request.
func (b Builder) Patch(uri string) (*Request, error) { return b.Build(http.MethodPatch, uri) }

// Delete builds a DELETE request.
func (b Builder) Delete(uri string) (*Request, error) { return b.Build(http.MethodDelete, uri) }

// Head builds a HEAD request.
func (b Builder) Head(uri string) (*Request, error) { return b.Build(http.MethodHead, uri) }

// Options builds an OPTIONS request.
func (b Builder) Options(uri string) (*Request, error) { return b.Build(http.MethodOptions, uri) }

// Trace builds a TRACE request.
func (b Builder) Trace(uri string) (*Request, error) { return b.Build(http.MethodTrace, uri) }

// Connect builds a CONNECT request.
func (b Builder) Connect(uri string) (*Request, error) { return b.Build(http.MethodConnect, uri) }

func parseURI(uri string) (*url.URL, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, &MalformedURIError{URI: uri, Err: errors.New("empty uri")}
	}
	u, err := url.Parse(uri)
	if err != nil {
		return nil, &MalformedURIError{URI: uri, Err: err}
	}
	return u, nil
}

// appendQuery appends params to an encoded query, keeping their order.
func appendQuery(rawQuery string, params Headers) string {
	var buf strings.Builder
	buf.WriteString(rawQuery)
	for _, param := range params {
		for _, value := range param.Values {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(url.QueryEscape(param.Name))
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(value))
		}
	}
	return buf.String()
}

package request

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Methods lists the request methods that have a dedicated shortcut.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodConnect,
	http.MethodHead,
	http.MethodTrace,
	http.MethodOptions,
}

// Request is a fully built, immutable request value. Accessors return copies.
// Use HTTPRequest to hand it to a net/http client.
type Request struct {
	method  string
	url     *url.URL
	headers Headers
	body    Body
}

// Method returns the request method.
func (r *Request) Method() string {
	return r.method
}

// URL returns a copy of the request target.
func (r *Request) URL() *url.URL {
	u := *r.url
	return &u
}

// URI returns the request target as a string.
func (r *Request) URI() string {
	return r.url.String()
}

// Headers returns a copy of the effective request headers.
func (r *Request) Headers() Headers {
	return r.headers.Clone()
}

// Header returns the first value of the named header.
func (r *Request) Header(name string) string {
	return r.headers.Get(name)
}

// RawHeaders returns the headers as ordered name/value pairs.
func (r *Request) RawHeaders() [][2]string {
	return r.headers.Pairs()
}

// Body returns the request body. It is never nil.
func (r *Request) Body() Body {
	return r.body
}

// BodyBytes reads the full request body.
func (r *Request) BodyBytes() ([]byte, error) {
	return ReadBody(r.body)
}

// HTTPRequest converts the request into a *http.Request ready to be passed
// to an http.Client. Body, GetBody and ContentLength are populated so the
// client can replay the body on redirects.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, r.url.String(), nil)
	if err != nil {
		return nil, err
	}

	body := r.body
	if body.Len() > 0 {
		req.ContentLength = body.Len()
		req.Body = io.NopCloser(body.Reader())
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(body.Reader()), nil
		}
	}

	req.Header = r.headers.HTTPHeader()
	// net/http sends req.Host and ignores a Host entry in req.Header.
	if host := r.headers.Get("Host"); host != "" {
		req.Host = host
		req.Header.Del("Host")
	}
	return req, nil
}

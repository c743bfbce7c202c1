package request

// WithHeaders starts a builder with the given header set.
func WithHeaders(headers ...Header) Builder {
	return New().SetHeaders(headers...)
}

// WithHeader starts a builder with a single header.
func WithHeader(name string, values ...string) Builder {
	return New().SetHeaders(H(name, values...))
}

// WithJSONBody starts a builder with a JSON body.
func WithJSONBody(v any) Builder {
	return New().WithJSONBody(v)
}

// WithFormBody starts a builder with a form body.
func WithFormBody(v any) Builder {
	return New().WithFormBody(v)
}

// WithBody starts a builder with a raw body. An empty contentType means text/plain.
func WithBody(content, contentType string) Builder {
	return New().WithBody(content, contentType)
}

// Get builds a GET request without headers or body.
func Get(uri string) (*Request, error) { return New().Get(uri) }

// Post builds a POST request without headers or body.
func Post(uri string) (*Request, error) { return New().Post(uri) }

// Put builds a PUT request without headers or body.
func Put(uri string) (*Request, error) { return New().Put(uri) }

// Patch builds a PATCH request without headers or body.
func Patch(uri string) (*Request, error) { return New().Patch(uri) }

// Delete builds a DELETE request without headers or body.
func Delete(uri string) (*Request, error) { return New().Delete(uri) }

// Head builds a HEAD request without headers or body.
func Head(uri string) (*Request, error) { return New().Head(uri) }

// Options builds an OPTIONS request without headers or body.
func Options(uri string) (*Request, error) { return New().Options(uri) }

// Trace builds a TRACE request without headers or body.
func Trace(uri string) (*Request, error) { return New().Trace(uri) }

// Connect builds a CONNECT request without headers or body.
func Connect(uri string) (*Request, error) { return New().Connect(uri) }

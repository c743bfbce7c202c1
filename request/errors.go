package request

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBody is returned when a body helper receives a value of a
	// type it cannot turn into a body.
	ErrUnsupportedBody = errors.New("unsupported body value")
	// ErrInvalidMethod is returned when a request method is not a valid token.
	ErrInvalidMethod = errors.New("invalid request method")
	// ErrMalformedHeaderLine is returned for a header line without a colon or name.
	ErrMalformedHeaderLine = errors.New(`header line must have the form "Name: value"`)
)

// SerializationError reports a JSON body that could not be serialized.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize JSON body: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// MalformedURIError reports a request target that could not be parsed.
type MalformedURIError struct {
	URI string
	Err error
}

func (e *MalformedURIError) Error() string {
	return fmt.Sprintf("malformed uri %q: %v", e.URI, e.Err)
}

func (e *MalformedURIError) Unwrap() error {
	return e.Err
}

// InvalidHeaderError reports a header name or value that cannot be sent.
// Value is empty when the name itself is invalid.
type InvalidHeaderError struct {
	Name  string
	Value string
}

func (e *InvalidHeaderError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid header name %q", e.Name)
	}
	return fmt.Sprintf("invalid value %q for header %q", e.Value, e.Name)
}

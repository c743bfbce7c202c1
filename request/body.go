package request

import (
	"bytes"
	"io"
)

// Content types declared by the built-in body variants.
const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeText = "text/plain"

	headerContentType = "Content-Type"
)

// Body is the payload of a request. Implementations are immutable snapshots:
// Reader returns a fresh reader over the same bytes on every call.
type Body interface {
	// Headers returns the headers the body declares, typically Content-Type.
	Headers() Headers
	// ContentType returns the declared content type, or "" for no body.
	ContentType() string
	// Reader returns a new reader positioned at the start of the body.
	Reader() io.Reader
	// Len returns the body length in bytes.
	Len() int64
}

// ReadBody reads the full contents of a body.
func ReadBody(b Body) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	return io.ReadAll(b.Reader())
}

// EmptyBody is the body of a request without a payload.
type EmptyBody struct{}

func (EmptyBody) Headers() Headers    { return nil }
func (EmptyBody) ContentType() string { return "" }
func (EmptyBody) Reader() io.Reader   { return bytes.NewReader(nil) }
func (EmptyBody) Len() int64          { return 0 }

// RawBody is an opaque payload with an explicit content type.
type RawBody struct {
	content     []byte
	contentType string
}

// NewRawBody creates a body from text. An empty contentType means text/plain.
func NewRawBody(content, contentType string) *RawBody {
	return NewRawBodyBytes([]byte(content), contentType)
}

// NewRawBodyBytes creates a body from a copy of content.
// An empty contentType means text/plain.
func NewRawBodyBytes(content []byte, contentType string) *RawBody {
	if contentType == "" {
		contentType = ContentTypeText
	}
	return &RawBody{
		content:     append([]byte(nil), content...),
		contentType: contentType,
	}
}

func (b *RawBody) Headers() Headers    { return Headers{H(headerContentType, b.contentType)} }
func (b *RawBody) ContentType() string { return b.contentType }
func (b *RawBody) Reader() io.Reader   { return bytes.NewReader(b.content) }
func (b *RawBody) Len() int64          { return int64(len(b.content)) }

// Bytes returns a copy of the body contents.
func (b *RawBody) Bytes() []byte {
	return append([]byte(nil), b.content...)
}

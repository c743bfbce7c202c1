package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("raw message is not valid JSON")

// JSONBody is a serialized JSON payload declaring application/json; charset=utf-8.
type JSONBody struct {
	data []byte
}

// NewJSONBody serializes v immediately. Values that encoding/json cannot
// marshal (channels, functions, NaN, cyclic values) fail with a
// *SerializationError.
//
// A json.RawMessage is kept verbatim after a validity check.
func NewJSONBody(v any) (*JSONBody, error) {
	if raw, ok := v.(json.RawMessage); ok {
		return NewJSONBodyFromRaw(raw)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return &JSONBody{data: data}, nil
}

// NewJSONBodyFromRaw wraps already-encoded JSON without re-encoding it.
func NewJSONBodyFromRaw(raw []byte) (*JSONBody, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &SerializationError{Err: errInvalidJSON}
	}
	return &JSONBody{data: append([]byte(nil), raw...)}, nil
}

func (b *JSONBody) Headers() Headers    { return Headers{H(headerContentType, ContentTypeJSON)} }
func (b *JSONBody) ContentType() string { return ContentTypeJSON }
func (b *JSONBody) Reader() io.Reader   { return bytes.NewReader(b.data) }
func (b *JSONBody) Len() int64          { return int64(len(b.data)) }

// Bytes returns a copy of the encoded JSON.
func (b *JSONBody) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// jsonBodyOf turns the accepted WithJSONBody inputs into a body.
func jsonBodyOf(v any) (*JSONBody, error) {
	switch body := v.(type) {
	case *JSONBody:
		if body == nil {
			return nil, fmt.Errorf("%w: nil *JSONBody", ErrUnsupportedBody)
		}
		if len(body.data) == 0 {
			return nil, fmt.Errorf("%w: zero JSONBody", ErrUnsupportedBody)
		}
		return body, nil
	case JSONBody:
		if len(body.data) == 0 {
			return nil, fmt.Errorf("%w: zero JSONBody", ErrUnsupportedBody)
		}
		return &body, nil
	default:
		return NewJSONBody(v)
	}
}

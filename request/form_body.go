package request

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const defaultFileContentType = "application/octet-stream"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// FormFile is a file part of a multipart form.
type FormFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type formField struct {
	name  string
	value string
	file  *FormFile
}

// Form is an ordered set of form fields. Like Builder it is a value type;
// every method returns a new Form.
//
// A Form without files encodes as application/x-www-form-urlencoded, a Form
// with at least one file as multipart/form-data.
type Form struct {
	fields []formField
}

// NewForm returns an empty form.
func NewForm() Form {
	return Form{}
}

// AddField appends a text field.
func (f Form) AddField(name, value string) Form {
	return f.with(formField{name: name, value: value})
}

// AddFields appends one text field per header value, in order.
func (f Form) AddFields(fields ...Header) Form {
	out := f
	for _, field := range fields {
		for _, value := range field.Values {
			out = out.AddField(field.Name, value)
		}
	}
	return out
}

// AddFile appends a file field. An empty content type means
// application/octet-stream.
func (f Form) AddFile(name string, file FormFile) Form {
	file.Content = append([]byte(nil), file.Content...)
	if file.ContentType == "" {
		file.ContentType = defaultFileContentType
	}
	return f.with(formField{name: name, file: &file})
}

// Len returns the number of fields.
func (f Form) Len() int {
	return len(f.fields)
}

// IsMultipart reports whether the form contains a file.
func (f Form) IsMultipart() bool {
	for _, field := range f.fields {
		if field.file != nil {
			return true
		}
	}
	return false
}

// Body encodes the form. Multipart boundaries are generated here, once, so
// the returned body always yields the same bytes.
func (f Form) Body() (*FormBody, error) {
	if !f.IsMultipart() {
		return &FormBody{contentType: ContentTypeForm, data: []byte(f.urlEncode())}, nil
	}
	return f.multipartEncode()
}

func (f Form) with(field formField) Form {
	fields := make([]formField, len(f.fields), len(f.fields)+1)
	copy(fields, f.fields)
	return Form{fields: append(fields, field)}
}

func (f Form) urlEncode() string {
	var buf strings.Builder
	for i, field := range f.fields {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(field.name))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(field.value))
	}
	return buf.String()
}

func (f Form) multipartEncode() (*FormBody, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.SetBoundary(newBoundary()); err != nil {
		return nil, fmt.Errorf("error setting multipart boundary: %w", err)
	}

	for _, field := range f.fields {
		if field.file == nil {
			if err := writer.WriteField(field.name, field.value); err != nil {
				return nil, fmt.Errorf("error writing form field %q: %w", field.name, err)
			}
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(field.name), quoteEscaper.Replace(field.file.Filename)))
		header.Set(headerContentType, field.file.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("error creating form file %q: %w", field.name, err)
		}
		if _, err := part.Write(field.file.Content); err != nil {
			return nil, fmt.Errorf("error writing form file %q: %w", field.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error closing multipart form: %w", err)
	}

	return &FormBody{contentType: writer.FormDataContentType(), data: buf.Bytes()}, nil
}

func newBoundary() string {
	return "reqbuild" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FormBody is an encoded form payload.
type FormBody struct {
	contentType string
	data        []byte
}

func (b *FormBody) Headers() Headers    { return Headers{H(headerContentType, b.contentType)} }
func (b *FormBody) ContentType() string { return b.contentType }
func (b *FormBody) Reader() io.Reader   { return bytes.NewReader(b.data) }
func (b *FormBody) Len() int64          { return int64(len(b.data)) }

// Bytes returns a copy of the encoded form.
func (b *FormBody) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// formBodyOf turns the accepted WithFormBody inputs into a body.
// Go maps carry no insertion order, so map inputs are encoded by sorted key.
func formBodyOf(v any) (*FormBody, error) {
	switch body := v.(type) {
	case *FormBody:
		if body == nil {
			return nil, fmt.Errorf("%w: nil *FormBody", ErrUnsupportedBody)
		}
		if body.contentType == "" {
			return nil, fmt.Errorf("%w: zero FormBody", ErrUnsupportedBody)
		}
		return body, nil
	case FormBody:
		if body.contentType == "" {
			return nil, fmt.Errorf("%w: zero FormBody", ErrUnsupportedBody)
		}
		return &body, nil
	case Form:
		return body.Body()
	case *Form:
		if body == nil {
			return nil, fmt.Errorf("%w: nil *Form", ErrUnsupportedBody)
		}
		return body.Body()
	case map[string]string:
		return NewForm().AddFields(HeadersFromMap(body)...).Body()
	case url.Values:
		keys := make([]string, 0, len(body))
		for key := range body {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		form := NewForm()
		for _, key := range keys {
			for _, value := range body[key] {
				form = form.AddField(key, value)
			}
		}
		return form.Body()
	case Headers:
		return NewForm().AddFields(body...).Body()
	case []Header:
		return NewForm().AddFields(body...).Body()
	default:
		return nil, fmt.Errorf("%w: form body of type %T", ErrUnsupportedBody, v)
	}
}

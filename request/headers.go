package request

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Header is a single named header carrying one or more values.
type Header struct {
	Name   string
	Values []string
}

// H is shorthand for constructing a Header.
//
// Example:
//
//	request.WithHeaders(
//	    request.H("Accept", "application/json"),
//	    request.H("X-Tags", "a", "b"),
//	)
func H(name string, values ...string) Header {
	return Header{Name: name, Values: normalizeValues(values)}
}

// Headers is an ordered header set. Names are matched case-insensitively and
// the order of the slice is the order headers are serialized in.
//
// Methods on Headers never modify the receiver; they return a new set.
type Headers []Header

// HeadersFromMap converts a map into a header set ordered by key.
func HeadersFromMap(m map[string]string) Headers {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make(Headers, 0, len(keys))
	for _, key := range keys {
		headers = append(headers, H(key, m[key]))
	}
	return headers
}

// ParseHeaderLine parses a "Name: value" line. Surrounding whitespace is
// trimmed from both parts and the result is checked like any builder header.
func ParseHeaderLine(line string) (Header, error) {
	name, value, ok := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Header{}, fmt.Errorf("%w: %q", ErrMalformedHeaderLine, line)
	}

	header := H(name, strings.TrimSpace(value))
	if err := validateHeaders([]Header{header}); err != nil {
		return Header{}, err
	}
	return header, nil
}

// ParseHeaderLines parses every line with ParseHeaderLine. Repeated names
// collect their values in order of appearance.
func ParseHeaderLines(lines []string) (Headers, error) {
	var headers Headers
	for _, line := range lines {
		header, err := ParseHeaderLine(line)
		if err != nil {
			return nil, err
		}
		if i := headers.index(header.Name); i >= 0 {
			headers[i].Values = append(headers[i].Values, header.Values...)
			continue
		}
		headers = append(headers, header)
	}
	return headers, nil
}

// Len returns the number of distinct header names in the set.
func (h Headers) Len() int {
	return len(h)
}

// Has reports whether a header with the given name exists.
func (h Headers) Has(name string) bool {
	return h.index(name) >= 0
}

// Get returns the first value of the named header, or "" if it is absent.
func (h Headers) Get(name string) string {
	i := h.index(name)
	if i < 0 || len(h[i].Values) == 0 {
		return ""
	}
	return h[i].Values[0]
}

// Values returns a copy of all values of the named header.
func (h Headers) Values(name string) []string {
	i := h.index(name)
	if i < 0 {
		return nil
	}
	return append([]string(nil), h[i].Values...)
}

// Names returns the header names in order.
func (h Headers) Names() []string {
	names := make([]string, len(h))
	for i, header := range h {
		names[i] = header.Name
	}
	return names
}

// Clone returns a deep copy of the set.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	for i, header := range h {
		clone[i] = Header{Name: header.Name, Values: append([]string(nil), header.Values...)}
	}
	return clone
}

// Set returns a copy of the set with the named header replaced by values.
// An existing header keeps its position and takes the new name casing;
// a new header is appended.
func (h Headers) Set(name string, values ...string) Headers {
	out := h.Clone()
	header := H(name, values...)
	if i := out.index(name); i >= 0 {
		out[i] = header
		return out
	}
	return append(out, header)
}

// Merge returns a copy of the set with every header of other applied via Set.
// Headers from other win on conflicting names.
func (h Headers) Merge(other Headers) Headers {
	out := h.Clone()
	for _, header := range other {
		out = out.Set(header.Name, header.Values...)
	}
	return out
}

// Fill returns a copy of the set extended with the headers of other whose
// names are not already present. Existing headers are never overwritten.
func (h Headers) Fill(other Headers) Headers {
	out := h.Clone()
	for _, header := range other {
		if out.Has(header.Name) {
			continue
		}
		out = append(out, Header{Name: header.Name, Values: normalizeValues(header.Values)})
	}
	return out
}

// Pairs flattens the set into ordered name/value pairs, one pair per value.
func (h Headers) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(h))
	for _, header := range h {
		for _, value := range header.Values {
			pairs = append(pairs, [2]string{header.Name, value})
		}
	}
	return pairs
}

// HTTPHeader converts the set into a net/http header map.
func (h Headers) HTTPHeader() http.Header {
	out := make(http.Header, len(h))
	for _, header := range h {
		for _, value := range header.Values {
			out.Add(header.Name, value)
		}
	}
	return out
}

func (h Headers) index(name string) int {
	for i, header := range h {
		if strings.EqualFold(header.Name, name) {
			return i
		}
	}
	return -1
}

// validateHeaders rejects names and values that are not valid on the wire.
func validateHeaders(headers []Header) error {
	for _, header := range headers {
		if !httpguts.ValidHeaderFieldName(header.Name) {
			return &InvalidHeaderError{Name: header.Name}
		}
		for _, value := range header.Values {
			if !httpguts.ValidHeaderFieldValue(value) {
				return &InvalidHeaderError{Name: header.Name, Value: value}
			}
		}
	}
	return nil
}

func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return append([]string(nil), values...)
}

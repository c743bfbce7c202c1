package request

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders_Merge(t *testing.T) {
	tests := []struct {
		name     string
		base     Headers
		incoming Headers
		expected Headers
	}{
		{
			name:     "disjoint keys append in order",
			base:     Headers{H("A", "1"), H("B", "2")},
			incoming: Headers{H("C", "3"), H("D", "4")},
			expected: Headers{H("A", "1"), H("B", "2"), H("C", "3"), H("D", "4")},
		},
		{
			name:     "conflicts take incoming value and keep position",
			base:     Headers{H("A", "1"), H("B", "2"), H("C", "3")},
			incoming: Headers{H("B", "new"), H("D", "4")},
			expected: Headers{H("A", "1"), H("B", "new"), H("C", "3"), H("D", "4")},
		},
		{
			name:     "names match case-insensitively",
			base:     Headers{H("Content-Type", "text/plain")},
			incoming: Headers{H("content-type", "text/csv")},
			expected: Headers{H("content-type", "text/csv")},
		},
		{
			name:     "duplicate incoming names collapse to the last",
			base:     nil,
			incoming: Headers{H("A", "1"), H("a", "2")},
			expected: Headers{H("a", "2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.base.Clone()
			assert.Equal(t, tt.expected, tt.base.Merge(tt.incoming))
			assert.Equal(t, before, tt.base)
		})
	}
}

func TestHeaders_SetAndLookup(t *testing.T) {
	h := Headers{H("Accept", "text/html")}.
		Set("X-Tags", "a", "b").
		Set("accept", "application/json")

	assert.Equal(t, []string{"accept", "X-Tags"}, h.Names())
	assert.Equal(t, "application/json", h.Get("ACCEPT"))
	assert.Equal(t, []string{"a", "b"}, h.Values("x-tags"))
	assert.True(t, h.Has("x-TAGS"))
	assert.False(t, h.Has("Missing"))
	assert.Equal(t, "", h.Get("Missing"))
	assert.Nil(t, h.Values("Missing"))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, [][2]string{{"accept", "application/json"}, {"X-Tags", "a"}, {"X-Tags", "b"}}, h.Pairs())

	values := h.Values("X-Tags")
	values[0] = "changed"
	assert.Equal(t, "a", h.Get("X-Tags"))
}

func TestHeaders_Fill(t *testing.T) {
	h := Headers{H("content-type", "text/plain")}.
		Fill(Headers{H("Content-Type", "application/json"), H("Content-Length", "2")})

	assert.Equal(t, Headers{H("content-type", "text/plain"), H("Content-Length", "2")}, h)
}

func TestHeaders_FromMapAndHTTP(t *testing.T) {
	h := HeadersFromMap(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, Headers{H("a", "1"), H("b", "2")}, h)

	httpHeader := Headers{H("x-multi", "1", "2"), H("Accept", "*/*")}.HTTPHeader()
	assert.Equal(t, http.Header{"X-Multi": {"1", "2"}, "Accept": {"*/*"}}, httpHeader)
}

func TestH_EmptyValues(t *testing.T) {
	assert.Equal(t, Header{Name: "X-Empty", Values: []string{""}}, H("X-Empty"))
}

func TestParseHeaderLine(t *testing.T) {
	header, err := ParseHeaderLine("  Accept :  application/json ")
	require.NoError(t, err)
	assert.Equal(t, H("Accept", "application/json"), header)

	header, err = ParseHeaderLine("X-Empty:")
	require.NoError(t, err)
	assert.Equal(t, H("X-Empty", ""), header)

	header, err = ParseHeaderLine("X-Time: 12:30")
	require.NoError(t, err)
	assert.Equal(t, "12:30", header.Values[0])

	_, err = ParseHeaderLine("no colon")
	assert.ErrorIs(t, err, ErrMalformedHeaderLine)

	_, err = ParseHeaderLine(": value")
	assert.ErrorIs(t, err, ErrMalformedHeaderLine)

	_, err = ParseHeaderLine("Bad Name: value")
	var headerErr *InvalidHeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "Bad Name", headerErr.Name)
}

func TestParseHeaderLines(t *testing.T) {
	headers, err := ParseHeaderLines([]string{"X-Tag: a", "Accept: */*", "x-tag: b"})
	require.NoError(t, err)
	assert.Equal(t, Headers{H("X-Tag", "a", "b"), H("Accept", "*/*")}, headers)

	_, err = ParseHeaderLines([]string{"Accept: */*", "broken"})
	assert.ErrorIs(t, err, ErrMalformedHeaderLine)
}

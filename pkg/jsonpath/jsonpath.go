// Package jsonpath extracts values from JSON documents using a small subset
// of JSONPath ($.a.b, $.list[0], $['key']) evaluated with gjson.
package jsonpath

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrEmptyDocument is returned for an empty JSON input.
	ErrEmptyDocument = errors.New("empty JSON document")
	// ErrInvalidDocument is returned when the input is not valid JSON.
	ErrInvalidDocument = errors.New("invalid JSON document")
	// ErrEmptyPath is returned for an empty expression.
	ErrEmptyPath = errors.New("empty JSONPath expression")
	// ErrNotFound is returned when the expression matches nothing.
	ErrNotFound = errors.New("path not found")
)

// Extract returns the value at path as a string. Strings are returned
// unquoted, null as "null", objects and arrays as raw JSON.
func Extract(document []byte, path string) (string, error) {
	if len(document) == 0 {
		return "", ErrEmptyDocument
	}
	if path == "" {
		return "", ErrEmptyPath
	}
	if !gjson.ValidBytes(document) {
		return "", ErrInvalidDocument
	}

	result := gjson.GetBytes(document, ToGJSON(path))
	if !result.Exists() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	switch result.Type {
	case gjson.Null:
		return "null", nil
	case gjson.JSON:
		return result.Raw, nil
	default:
		return result.String(), nil
	}
}

// ExtractMultiple extracts every named path. Values that could be extracted
// are returned even when others fail; the error lists the failures.
func ExtractMultiple(document []byte, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return map[string]string{}, nil
	}

	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]string, len(paths))
	var failures []string
	for _, name := range names {
		value, err := Extract(document, paths[name])
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		results[name] = value
	}

	if len(failures) > 0 {
		return results, fmt.Errorf("extraction errors: %s", strings.Join(failures, "; "))
	}
	return results, nil
}

// ToGJSON converts a JSONPath expression to gjson path syntax.
//
//	$                -> @this
//	$.users[0].name  -> users.0.name
//	$['a.b'].c       -> a\.b.c
func ToGJSON(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "$")
	if path == "" {
		return "@this"
	}

	var segments []string
	for len(path) > 0 {
		switch path[0] {
		case '.':
			path = path[1:]
		case '[':
			end := strings.IndexByte(path, ']')
			if end < 0 {
				segments = append(segments, escape(path[1:]))
				path = ""
				continue
			}
			key := strings.Trim(path[1:end], `'"`)
			segments = append(segments, escape(key))
			path = path[end+1:]
		default:
			end := strings.IndexAny(path, ".[")
			if end < 0 {
				end = len(path)
			}
			segments = append(segments, path[:end])
			path = path[end:]
		}
	}

	return strings.Join(segments, ".")
}

var gjsonEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

func escape(key string) string {
	return gjsonEscaper.Replace(key)
}

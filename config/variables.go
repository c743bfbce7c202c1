package config

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// ProcessEnvironment processes variable substitution in a string.
// Variables are specified using the {{variableName}} syntax. Placeholders
// without a matching variable are left as they are.
//
// Example:
//
//	url := config.ProcessEnvironment("{{baseUrl}}/users/{{userId}}", map[string]string{
//	    "baseUrl": "https://api.example.com",
//	    "userId":  "123",
//	})
//	// Result: "https://api.example.com/users/123"
func ProcessEnvironment(input string, env map[string]string) string {
	if len(env) == 0 || !strings.Contains(input, "{{") {
		return input
	}

	return placeholder.ReplaceAllStringFunc(input, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		if value, ok := env[name]; ok {
			return value
		}
		return match
	})
}

// ProcessEnvironmentInMap processes variable substitution in every value of a map.
func ProcessEnvironmentInMap(input map[string]string, env map[string]string) map[string]string {
	if input == nil {
		return nil
	}

	result := make(map[string]string, len(input))
	for key, value := range input {
		result[key] = ProcessEnvironment(value, env)
	}

	return result
}

// ProcessValue substitutes variables in every string of a decoded JSON or
// YAML value. Object keys are left untouched. The input is not modified.
func ProcessValue(value any, env map[string]string) any {
	switch v := value.(type) {
	case string:
		return ProcessEnvironment(v, env)
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key] = ProcessValue(item, env)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = ProcessValue(item, env)
		}
		return result
	default:
		return value
	}
}

// MergeEnvironments merges two environments, with the override taking precedence.
func MergeEnvironments(base, override map[string]string) map[string]string {
	result := make(map[string]string, len(base)+len(override))

	for key, value := range base {
		result[key] = value
	}

	for key, value := range override {
		result[key] = value
	}

	return result
}

package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateConfig_Valid(t *testing.T) {
	config, err := ParseConfig([]byte(collectionYAML), "collection.yaml")
	if err != nil {
		t.Fatalf("Error parsing config: %v", err)
	}

	if errs := ValidateConfig(config); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	config := &Config{
		Environments: map[string]Environment{
			"empty":    {},
			"relative": {BaseURL: "/api"},
			"headers":  {BaseURL: "https://example.com", Headers: map[string]string{"Bad Header": "x"}},
		},
		Requests: map[string]Request{
			"noUrl":     {Method: "GET"},
			"noMethod":  {URL: "/a"},
			"badMethod": {Method: "FETCH", URL: "/a"},
			"twoBodies": {Method: "POST", URL: "/a", JSON: map[string]any{"a": 1}, Body: "raw"},
			"ctNoBody":  {Method: "POST", URL: "/a", ContentType: "text/csv"},
			"noSchema":  {Method: "POST", URL: "/a", JSON: map[string]any{}, Schema: "missing"},
			"schemaRaw": {Method: "POST", URL: "/a", Body: "x", Schema: "user"},
			"twoAuths":  {Method: "GET", URL: "/a", Auth: &Auth{Bearer: "t", Basic: &BasicAuth{Username: "u"}}},
		},
		Schemas: map[string]any{"user": map[string]any{"type": "object"}},
	}

	errs := ValidateConfig(config)

	expected := []string{
		"environments.empty.baseUrl: baseUrl is required",
		`environments.headers.headers.Bad Header: invalid header name "Bad Header"`,
		"environments.relative.baseUrl: baseUrl must be an absolute URL: /api",
		"requests.badMethod.method: invalid method: FETCH",
		"requests.ctNoBody.contentType: contentType requires body",
		"requests.noMethod.method: method is required",
		"requests.noSchema.schema: schema not found: missing",
		"requests.noUrl.url: url is required",
		"requests.schemaRaw.schema: schema requires a json body",
		"requests.twoAuths.auth: only one of bearer and basic may be set",
		"requests.twoBodies: only one of json, form and body may be set, got json, body",
	}

	if len(errs) != len(expected) {
		t.Fatalf("Expected %d validation errors, got %d: %v", len(expected), len(errs), errs)
	}
	for i, want := range expected {
		if errs[i].Error() != want {
			t.Errorf("Error %d: expected %q, got %q", i, want, errs[i].Error())
		}
	}
}

func TestValidateConfig_BaseURLPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		wantErr string
	}{
		{name: "runtime variable", env: Environment{BaseURL: "{{host}}"}},
		{name: "environment variable", env: Environment{BaseURL: "{{host}}/v1/", Vars: map[string]string{"host": "https://api.example.com"}}},
		{
			name:    "environment variable resolving to a relative url",
			env:     Environment{BaseURL: "{{host}}/v1/", Vars: map[string]string{"host": "api.example.com"}},
			wantErr: "environments.dev.baseUrl: baseUrl must be an absolute URL: {{host}}/v1/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Environments: map[string]Environment{"dev": tt.env},
				Requests:     map[string]Request{"r": {Method: "GET", URL: "/users"}},
			}

			errs := ValidateConfig(config)
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Expected no validation errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Error() != tt.wantErr {
				t.Errorf("Expected %q, got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestValidateConfig_NoRequests(t *testing.T) {
	errs := ValidateConfig(&Config{})
	if len(errs) != 1 || errs[0].Path != "requests" {
		t.Errorf("Expected a single requests error, got %v", errs)
	}
}

func TestValidateConfig_MethodCase(t *testing.T) {
	for _, method := range []string{"get", "Patch", "TRACE", "connect", "options", "head"} {
		config := &Config{Requests: map[string]Request{"r": {Method: method, URL: "https://example.com"}}}
		if errs := ValidateConfig(config); len(errs) != 0 {
			t.Errorf("Expected method %s to be valid, got %v", method, errs)
		}
	}
}

func TestValidateLookups(t *testing.T) {
	config := &Config{
		Environments: map[string]Environment{"dev": {BaseURL: "https://example.com"}},
		Requests:     map[string]Request{"ping": {Method: "GET", URL: "/ping"}},
	}

	if err := ValidateEnvironment(config, "dev"); err != nil {
		t.Errorf("Expected dev to exist, got %v", err)
	}
	if err := ValidateEnvironment(config, "prod"); !errors.Is(err, ErrEnvironmentNotFound) {
		t.Errorf("Expected ErrEnvironmentNotFound, got %v", err)
	}
	if err := ValidateRequest(config, "ping"); err != nil {
		t.Errorf("Expected ping to exist, got %v", err)
	}
	err := ValidateRequest(config, "pong")
	if !errors.Is(err, ErrRequestNotFound) || !strings.Contains(err.Error(), "pong") {
		t.Errorf("Expected ErrRequestNotFound for pong, got %v", err)
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level collection file structure.
type Config struct {
	// Environments defines target environments with base URLs and default headers
	Environments map[string]Environment `json:"environments,omitempty" yaml:"environments,omitempty"`

	// Requests defines HTTP request templates
	Requests map[string]Request `json:"requests" yaml:"requests"`

	// Schemas defines JSON schemas for request body validation
	Schemas map[string]any `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// Environment represents an environment configuration with base URL and headers.
type Environment struct {
	// BaseURL is the URL relative request URLs are resolved against
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Headers are default headers added to all requests in this environment
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Vars are variables that can be used in request templates
	Vars map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Request represents an HTTP request template. At most one of JSON, Form
// and Body may be set.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc.)
	Method string `json:"method" yaml:"method"`

	// URL is the request URL (can include {{variables}})
	URL string `json:"url" yaml:"url"`

	// Headers are request-specific headers
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// QueryParams are URL query parameters
	QueryParams map[string]string `json:"queryParams,omitempty" yaml:"queryParams,omitempty"`

	// JSON is serialized as an application/json body
	JSON any `json:"json,omitempty" yaml:"json,omitempty"`

	// Form is sent as an application/x-www-form-urlencoded body
	Form map[string]string `json:"form,omitempty" yaml:"form,omitempty"`

	// Body is sent verbatim with ContentType (text/plain when empty)
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	// ContentType is the media type of Body
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`

	// Auth adds an Authorization header
	Auth *Auth `json:"auth,omitempty" yaml:"auth,omitempty"`

	// Schema names an entry of Config.Schemas the JSON body must satisfy
	Schema string `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Auth configures the Authorization header of a request. Only one of
// Bearer and Basic may be set.
type Auth struct {
	Bearer string     `json:"bearer,omitempty" yaml:"bearer,omitempty"`
	Basic  *BasicAuth `json:"basic,omitempty" yaml:"basic,omitempty"`
}

// BasicAuth holds HTTP basic credentials.
type BasicAuth struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

var (
	// ErrConfigNotFound is returned when the collection file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrEnvironmentNotFound is returned for an unknown environment name.
	ErrEnvironmentNotFound = errors.New("environment not found")
	// ErrRequestNotFound is returned for an unknown request name.
	ErrRequestNotFound = errors.New("request not found")
)

// LoadConfig loads a collection file from the given path.
// Files ending in .json are parsed as JSON, everything else as YAML.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses collection data. path only selects the format.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	return &cfg, nil
}

// GetEnvironmentNames returns the environment names in sorted order.
func GetEnvironmentNames(cfg *Config) []string {
	return sortedKeys(cfg.Environments)
}

// GetRequestNames returns the request names in sorted order.
func GetRequestNames(cfg *Config) []string {
	return sortedKeys(cfg.Requests)
}

// GetConfigDir returns the directory containing the config file.
func GetConfigDir(configPath string) string {
	return filepath.Dir(configPath)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

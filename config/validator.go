package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wesleyorama2/reqbuild/request"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the dotted path to the invalid field
	Path string

	// Message describes the validation error
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateConfig validates the configuration and returns a slice of validation errors.
// An empty slice indicates the configuration is valid. Errors are reported
// in sorted environment and request order.
//
// Example:
//
//	errors := config.ValidateConfig(cfg)
//	if len(errors) > 0 {
//	    for _, err := range errors {
//	        log.Printf("Validation error: %s", err)
//	    }
//	}
func ValidateConfig(cfg *Config) []ValidationError {
	var errors []ValidationError

	for _, name := range GetEnvironmentNames(cfg) {
		errors = append(errors, validateEnvironment(name, cfg.Environments[name])...)
	}

	if len(cfg.Requests) == 0 {
		errors = append(errors, ValidationError{
			Path:    "requests",
			Message: "at least one request is required",
		})
	}

	for _, name := range GetRequestNames(cfg) {
		errors = append(errors, validateRequest(cfg, name, cfg.Requests[name])...)
	}

	return errors
}

func validateEnvironment(name string, env Environment) []ValidationError {
	var errors []ValidationError
	path := "environments." + name

	if env.BaseURL == "" {
		errors = append(errors, ValidationError{
			Path:    path + ".baseUrl",
			Message: "baseUrl is required",
		})
	} else if baseURL := ProcessEnvironment(env.BaseURL, env.Vars); !placeholder.MatchString(baseURL) {
		// Placeholders left over are filled by variables given at build time.
		if u, err := url.Parse(baseURL); err != nil || !u.IsAbs() {
			errors = append(errors, ValidationError{
				Path:    path + ".baseUrl",
				Message: fmt.Sprintf("baseUrl must be an absolute URL: %s", env.BaseURL),
			})
		}
	}

	errors = append(errors, validateHeaderNames(path+".headers", env.Headers)...)

	return errors
}

func validateRequest(cfg *Config, name string, req Request) []ValidationError {
	var errors []ValidationError
	path := "requests." + name

	if req.URL == "" {
		errors = append(errors, ValidationError{
			Path:    path + ".url",
			Message: "url is required",
		})
	}

	if req.Method == "" {
		errors = append(errors, ValidationError{
			Path:    path + ".method",
			Message: "method is required",
		})
	} else if !isKnownMethod(req.Method) {
		errors = append(errors, ValidationError{
			Path:    path + ".method",
			Message: fmt.Sprintf("invalid method: %s", req.Method),
		})
	}

	errors = append(errors, validateHeaderNames(path+".headers", req.Headers)...)

	var bodies []string
	if req.JSON != nil {
		bodies = append(bodies, "json")
	}
	if len(req.Form) > 0 {
		bodies = append(bodies, "form")
	}
	if req.Body != "" {
		bodies = append(bodies, "body")
	}
	if len(bodies) > 1 {
		errors = append(errors, ValidationError{
			Path:    path,
			Message: fmt.Sprintf("only one of json, form and body may be set, got %s", strings.Join(bodies, ", ")),
		})
	}

	if req.ContentType != "" && req.Body == "" {
		errors = append(errors, ValidationError{
			Path:    path + ".contentType",
			Message: "contentType requires body",
		})
	}

	if req.Schema != "" {
		if _, ok := cfg.Schemas[req.Schema]; !ok {
			errors = append(errors, ValidationError{
				Path:    path + ".schema",
				Message: fmt.Sprintf("schema not found: %s", req.Schema),
			})
		}
		if req.JSON == nil {
			errors = append(errors, ValidationError{
				Path:    path + ".schema",
				Message: "schema requires a json body",
			})
		}
	}

	if req.Auth != nil && req.Auth.Bearer != "" && req.Auth.Basic != nil {
		errors = append(errors, ValidationError{
			Path:    path + ".auth",
			Message: "only one of bearer and basic may be set",
		})
	}

	return errors
}

func validateHeaderNames(path string, headers map[string]string) []ValidationError {
	var errors []ValidationError

	for _, name := range sortedKeys(headers) {
		if err := request.New().SetHeader(name).Err(); err != nil {
			errors = append(errors, ValidationError{
				Path:    path + "." + name,
				Message: err.Error(),
			})
		}
	}

	return errors
}

func isKnownMethod(method string) bool {
	for _, known := range request.Methods {
		if strings.EqualFold(method, known) {
			return true
		}
	}
	return false
}

// ValidateEnvironment validates that an environment exists in the configuration.
func ValidateEnvironment(cfg *Config, envName string) error {
	if _, ok := cfg.Environments[envName]; !ok {
		return fmt.Errorf("%w: %s", ErrEnvironmentNotFound, envName)
	}
	return nil
}

// ValidateRequest validates that a request exists in the configuration.
func ValidateRequest(cfg *Config, reqName string) error {
	if _, ok := cfg.Requests[reqName]; !ok {
		return fmt.Errorf("%w: %s", ErrRequestNotFound, reqName)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/reqbuild/pkg/jsonschema"
	"github.com/wesleyorama2/reqbuild/request"
)

// BuildRequest builds the named request for the named environment.
// envName may be empty, in which case the request URL must be absolute.
// vars override the environment variables of the same name.
//
// Environment headers are applied first and request headers are added on
// top of them, so a request header replaces an environment header of the
// same name. Relative URLs are resolved against the environment baseUrl.
func BuildRequest(cfg *Config, envName, reqName string, vars map[string]string) (*request.Request, error) {
	if err := ValidateRequest(cfg, reqName); err != nil {
		return nil, err
	}
	req := cfg.Requests[reqName]

	b := request.New()
	variables := MergeEnvironments(nil, vars)

	if envName != "" {
		if err := ValidateEnvironment(cfg, envName); err != nil {
			return nil, err
		}
		env := cfg.Environments[envName]
		variables = MergeEnvironments(env.Vars, vars)

		b = b.SetHeaders(request.HeadersFromMap(ProcessEnvironmentInMap(env.Headers, variables))...)
		if env.BaseURL != "" {
			b = b.WithBaseURL(ProcessEnvironment(env.BaseURL, variables))
		}
	}

	b = b.AddHeaders(request.HeadersFromMap(ProcessEnvironmentInMap(req.Headers, variables))...).
		WithQueryParams(request.HeadersFromMap(ProcessEnvironmentInMap(req.QueryParams, variables))...)

	if req.Auth != nil {
		switch {
		case req.Auth.Bearer != "":
			b = b.WithBearerToken(ProcessEnvironment(req.Auth.Bearer, variables))
		case req.Auth.Basic != nil:
			b = b.WithBasicAuth(
				ProcessEnvironment(req.Auth.Basic.Username, variables),
				ProcessEnvironment(req.Auth.Basic.Password, variables),
			)
		}
	}

	switch {
	case req.JSON != nil:
		body := ProcessValue(req.JSON, variables)
		if req.Schema != "" {
			schema, ok := cfg.Schemas[req.Schema]
			if !ok {
				return nil, fmt.Errorf("request %s: schema not found: %s", reqName, req.Schema)
			}
			if err := jsonschema.ValidateValue(body, schema); err != nil {
				return nil, fmt.Errorf("request %s: body does not match schema %s: %w", reqName, req.Schema, err)
			}
		}
		b = b.WithJSONBody(body)
	case len(req.Form) > 0:
		b = b.WithFormBody(ProcessEnvironmentInMap(req.Form, variables))
	case req.Body != "":
		b = b.WithBody(ProcessEnvironment(req.Body, variables), req.ContentType)
	}

	built, err := b.Build(strings.ToUpper(req.Method), ProcessEnvironment(req.URL, variables))
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", reqName, err)
	}

	return built, nil
}

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/reqbuild/pkg/jsonschema"
	"github.com/wesleyorama2/reqbuild/request"
)

func loadTestCollection(t *testing.T) *Config {
	t.Helper()
	cfg, err := ParseConfig([]byte(collectionYAML), "collection.yaml")
	require.NoError(t, err)
	return cfg
}

func TestBuildRequest_Environment(t *testing.T) {
	cfg := loadTestCollection(t)

	req, err := BuildRequest(cfg, "dev", "getUser", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method())
	assert.Equal(t, "https://api-dev.example.com/users/1", req.URI())
	assert.Equal(t, [][2]string{
		{"X-Env", "dev"},
		{"Accept", "application/json"},
	}, req.RawHeaders())

	req, err = BuildRequest(cfg, "prod", "getUser", map[string]string{"userId": "42"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/users/42", req.URI())
}

func TestBuildRequest_RequestHeadersWin(t *testing.T) {
	cfg := &Config{
		Environments: map[string]Environment{
			"dev": {
				BaseURL: "https://example.com",
				Headers: map[string]string{"Accept": "text/html", "X-Env": "dev"},
			},
		},
		Requests: map[string]Request{
			"r": {Method: "GET", URL: "/", Headers: map[string]string{"accept": "application/json"}},
		},
	}

	req, err := BuildRequest(cfg, "dev", "r", nil)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"accept", "application/json"},
		{"X-Env", "dev"},
	}, req.RawHeaders())
}

func TestBuildRequest_JSONBody(t *testing.T) {
	cfg := loadTestCollection(t)

	req, err := BuildRequest(cfg, "dev", "createUser", map[string]string{"name": "Ada", "tag": "b"})
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method())
	assert.Equal(t, request.ContentTypeJSON, req.Header("Content-Type"))

	body, err := req.BodyBytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Ada", "tags": ["a", "b"]}`, string(body))
}

func TestBuildRequest_SchemaViolation(t *testing.T) {
	cfg := loadTestCollection(t)

	_, err := BuildRequest(cfg, "dev", "createUser", map[string]string{"name": "", "tag": "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body does not match schema user")

	var verrs jsonschema.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestBuildRequest_FormBody(t *testing.T) {
	cfg := loadTestCollection(t)

	req, err := BuildRequest(cfg, "prod", "login", map[string]string{"user": "ada lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/login", req.URI())
	assert.Equal(t, request.ContentTypeForm, req.Header("Content-Type"))

	body, err := req.BodyBytes()
	require.NoError(t, err)
	assert.Equal(t, "pass=secret&user=ada+lovelace", string(body))
}

func TestBuildRequest_RawBodyQueryAndAuth(t *testing.T) {
	cfg := &Config{
		Requests: map[string]Request{
			"upload": {
				Method:      "put",
				URL:         "https://example.com/import",
				QueryParams: map[string]string{"z": "{{z}}", "a": "1"},
				Body:        "id,name\n{{id}},x",
				ContentType: "text/csv",
				Auth:        &Auth{Basic: &BasicAuth{Username: "{{user}}", Password: "pw"}},
			},
			"token": {
				Method: "GET",
				URL:    "https://example.com/me",
				Auth:   &Auth{Bearer: "{{token}}"},
			},
		},
	}
	vars := map[string]string{"z": "last", "id": "7", "user": "ada", "token": "t0k"}

	req, err := BuildRequest(cfg, "", "upload", vars)
	require.NoError(t, err)
	assert.Equal(t, "PUT", req.Method())
	assert.Equal(t, "https://example.com/import?a=1&z=last", req.URI())
	assert.Equal(t, "text/csv", req.Header("Content-Type"))
	assert.Equal(t, "Basic YWRhOnB3", req.Header("Authorization"))

	body, err := req.BodyBytes()
	require.NoError(t, err)
	assert.Equal(t, "id,name\n7,x", string(body))

	req, err = BuildRequest(cfg, "", "token", vars)
	require.NoError(t, err)
	assert.Equal(t, "Bearer t0k", req.Header("Authorization"))
}

func TestBuildRequest_Errors(t *testing.T) {
	cfg := loadTestCollection(t)

	_, err := BuildRequest(cfg, "dev", "missing", nil)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = BuildRequest(cfg, "staging", "getUser", nil)
	assert.ErrorIs(t, err, ErrEnvironmentNotFound)

	req, err := BuildRequest(cfg, "", "getUser", map[string]string{"userId": "1"})
	require.NoError(t, err)
	assert.Equal(t, "/users/1", req.URI())

	var uriErr *request.MalformedURIError
	cfg.Requests["bad"] = Request{Method: "GET", URL: ""}
	_, err = BuildRequest(cfg, "", "bad", nil)
	require.ErrorAs(t, err, &uriErr)
	assert.Contains(t, err.Error(), "request bad")
}

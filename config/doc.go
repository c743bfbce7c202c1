// Package config loads request collections: YAML or JSON files that define
// environments, request templates and the JSON schemas request bodies must
// satisfy, and turns their entries into built requests.
//
// A collection file looks like this:
//
//	environments:
//	  dev:
//	    baseUrl: https://api.dev.example.com
//	    headers:
//	      X-Env: dev
//	    variables:
//	      token: abc
//	requests:
//	  createUser:
//	    method: POST
//	    url: /users
//	    headers:
//	      Authorization: "Bearer {{token}}"
//	    json:
//	      name: "{{name}}"
//	    schema: user
//	schemas:
//	  user:
//	    type: object
//	    required: [name]
//
// Basic Usage:
//
//	cfg, err := config.LoadConfig("collection.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    log.Fatal(errs[0])
//	}
//
//	req, err := config.BuildRequest(cfg, "dev", "createUser", map[string]string{"name": "Ada"})
//
// Variable Substitution:
//
// Environment variables and caller supplied variables are substituted into
// URLs, headers, query parameters, auth credentials and every string of a
// json, form or raw body using the {{variableName}} syntax. Caller supplied
// variables win over environment variables of the same name.
//
// Header maps have no order of their own, so headers and query parameters
// from a collection are applied sorted by name.
package config

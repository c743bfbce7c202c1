// Package request provides an immutable, fluent builder for outbound HTTP
// request values.
//
// This package only shapes values; it never opens connections. It provides:
//   - A copy-on-write Builder for headers, query parameters and bodies
//   - Body variants for raw text, JSON and URL-encoded or multipart forms
//   - Package-level shortcuts for one-step configuration
//   - Conversion of a built Request into a *net/http.Request
//
// Basic Usage:
//
//	req, err := request.WithHeader("Accept", "application/json").
//	    WithQueryParam("limit", "10").
//	    Get("https://api.example.com/users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	httpReq, err := req.HTTPRequest(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := http.DefaultClient.Do(httpReq)
//
// Reusing a Builder:
//
//	api := request.WithHeaders(
//	    request.H("Authorization", "Bearer token"),
//	    request.H("Accept", "application/json"),
//	).WithBaseURL("https://api.example.com")
//
//	list, _ := api.Get("/users")
//	create, _ := api.WithJSONBody(map[string]string{"name": "Ada"}).Post("/users")
//
// Both requests carry the same headers; creating the second did not change api.
//
// Header Precedence:
//
// Bodies declare their own headers (Content-Type). When a request is built,
// body headers are only added for names the builder does not already set.
// A Content-Type set with SetHeader, SetHeaders or AddHeaders always wins.
//
// Errors:
//
// Builder steps do not return errors. The first failure is kept and returned
// by Err and by every terminal method. JSON values that cannot be marshaled
// fail with *SerializationError, unparsable URIs with *MalformedURIError and
// invalid header names or values with *InvalidHeaderError.
//
// Thread Safety:
//
// Builder, Form and Request values are never modified after creation and are
// safe for concurrent use.
package request

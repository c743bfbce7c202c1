// Package jsonschema validates JSON documents, typically request bodies,
// against JSON Schemas. Compiled schemas are cached by their source text.
package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultCacheSize is the number of compiled schemas kept by the default validator.
const DefaultCacheSize = 64

// ErrInvalidSchema is returned when a schema cannot be compiled.
var ErrInvalidSchema = errors.New("invalid schema")

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// Validator compiles schemas once and validates documents against them.
// It is safe for concurrent use.
type Validator struct {
	schemas *lru.Cache[string, *jsonschema.Schema]
}

// NewValidator creates a validator caching up to size compiled schemas.
func NewValidator(size int) (*Validator, error) {
	cache, err := lru.New[string, *jsonschema.Schema](size)
	if err != nil {
		return nil, fmt.Errorf("error creating schema cache: %w", err)
	}
	return &Validator{schemas: cache}, nil
}

var defaultValidator = mustValidator(DefaultCacheSize)

func mustValidator(size int) *Validator {
	v, err := NewValidator(size)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks document against schema. It returns nil when the document
// is valid, ValidationErrors when it violates the schema, and a wrapped
// ErrInvalidSchema or JSON syntax error otherwise.
func (v *Validator) Validate(document, schema []byte) error {
	compiled, err := v.compile(schema)
	if err != nil {
		return err
	}

	var data any
	if err := json.Unmarshal(document, &data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	err = compiled.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return flatten(validationErr)
	}
	return ValidationErrors{err}
}

// ValidateValue marshals value and schema to JSON and validates them.
// It accepts the decoded forms produced by YAML and JSON loaders.
func (v *Validator) ValidateValue(value, schema any) error {
	document, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("invalid JSON value: %w", err)
	}
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return v.Validate(document, schemaJSON)
}

// Len returns the number of cached schemas.
func (v *Validator) Len() int {
	return v.schemas.Len()
}

func (v *Validator) compile(schema []byte) (*jsonschema.Schema, error) {
	key := string(schema)
	if compiled, ok := v.schemas.Get(key); ok {
		return compiled, nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(key)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	v.schemas.Add(key, compiled)
	return compiled, nil
}

// Validate checks document against schema using a shared validator.
func Validate(document, schema []byte) error {
	return defaultValidator.Validate(document, schema)
}

// ValidateValue checks a decoded value against a decoded schema using a
// shared validator.
func ValidateValue(value, schema any) error {
	return defaultValidator.ValidateValue(value, schema)
}

// flatten collects the leaf messages of a validation error tree.
func flatten(err *jsonschema.ValidationError) ValidationErrors {
	var errs ValidationErrors
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		errs = append(errs, fmt.Errorf("validation error at %s: %s", location, err.Message))
	}
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}

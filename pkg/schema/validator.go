// Package schema wraps JSON Schema compilation and validation for
// metadata documents. Schemas are compiled once and reused.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a single structural validation error.
type ValidationError struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Result holds the validation result.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ErrorLines renders the errors one per line, each prefixed by its field
// path when present.
func (r *Result) ErrorLines() string {
	lines := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Path != "" && e.Path != "root" && e.Path != "(root)" {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Path, e.Message))
		} else {
			lines = append(lines, e.Message)
		}
	}
	return strings.Join(lines, "\n")
}

// Validator wraps a compiled schema for repeated validation.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidatorFromBytes compiles schema bytes (JSON or YAML) into a reusable
// validator. The $schema marker is removed before compilation so gojsonschema
// never fetches a remote meta-schema.
func NewValidatorFromBytes(schemaBytes []byte) (*Validator, error) {
	var doc any
	if err := yaml.Unmarshal(schemaBytes, &doc); err != nil {
		if err := json.Unmarshal(schemaBytes, &doc); err != nil {
			return nil, fmt.Errorf("invalid schema format (must be valid YAML or JSON): %w", err)
		}
	}
	if m, ok := doc.(map[string]any); ok {
		delete(m, "$schema")
	}
	jb, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema to JSON: %w", err)
	}
	sch, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(jb))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Validator{schema: sch}, nil
}

// Validate applies the compiled schema to the provided data structure.
func (v *Validator) Validate(data interface{}) (*Result, error) {
	if v == nil || v.schema == nil {
		return nil, fmt.Errorf("validator not initialised")
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode data to JSON: %w", err)
	}
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(dataJSON))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	res := &Result{Valid: result.Valid()}
	if !result.Valid() {
		for _, verr := range result.Errors() {
			field := verr.Field()
			if field == "" {
				field = "root"
			}
			res.Errors = append(res.Errors, ValidationError{
				Path:    field,
				Message: verr.Description(),
			})
		}
	}
	return res, nil
}

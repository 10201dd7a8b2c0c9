package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://geoquiz/bank.json"

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// ValidationError reports a bank document that does not match the schema.
type ValidationError struct {
	Path string // JSON pointer of the offending value, when known
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid bank at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid bank: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validate checks a decoded document against the embedded schema.
func validate(doc any) error {
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

package outline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ParseError reports a source file that could not be turned into the typed
// model. It is returned whole: loaders never hand back partial results.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed outline: %v", e.Err)
	}
	return fmt.Sprintf("malformed outline %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Schema is a compiled JSON Schema applied to decoded outline nodes.
type Schema struct {
	name   string
	schema *jsonschema.Schema
}

// MustCompileSchema compiles an embedded schema document. It panics on an
// invalid schema, which can only happen when the embedded file is broken.
func MustCompileSchema(name string, src []byte) *Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(src)); err != nil {
		panic(fmt.Sprintf("outline: loading schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("outline: compiling schema %s: %v", name, err))
	}
	return &Schema{name: name, schema: schema}
}

// Validate checks node against the schema.
func (s *Schema) Validate(node *yaml.Node) error {
	doc, err := Generic(node)
	if err != nil {
		return err
	}
	if err := s.schema.Validate(doc); err != nil {
		return fmt.Errorf("does not match %s: %w", s.name, err)
	}
	return nil
}

// Package catalog loads the flat category lists (behaviors, modes, safety
// rules, tools) that sit beside the table of contents.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mbu09a/Code-Xanadu/internal/outline"
)

//go:embed schemas/records.schema.json
var recordsSchemaSrc []byte

var recordsSchema = outline.MustCompileSchema("records.schema.json", recordsSchemaSrc)

// Field is one key-value pair of a record.
type Field struct {
	Key   string
	Value string
}

// Record is one list entry, with its fields in declared order.
type Record struct {
	Fields []Field
}

// String renders the record as "key: value" pairs joined by commas.
func (r Record) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Key + ": " + f.Value
	}
	return strings.Join(parts, ", ")
}

// Parse returns the records stored under key in src.
//
// A missing key yields an empty list. A document whose root is a list is
// read as the record list itself. Values are returned as written, without
// type coercion; quoted scalars lose their quotes.
func Parse(src []byte, key string) ([]Record, error) {
	root, err := outline.Decode(src)
	if err != nil {
		return nil, &outline.ParseError{Err: err}
	}

	list := root
	switch {
	case root == nil:
		return []Record{}, nil
	case root.Kind == yaml.MappingNode:
		node, ok := outline.Lookup(root, key)
		if !ok {
			return []Record{}, nil
		}
		list = node
	}

	if err := recordsSchema.Validate(list); err != nil {
		return nil, &outline.ParseError{Err: fmt.Errorf("list %q: %w", key, err)}
	}

	records := []Record{}
	if list.Kind != yaml.SequenceNode {
		return records, nil
	}
	for _, item := range list.Content {
		records = append(records, parseRecord(item))
	}
	return records, nil
}

// Load reads the list file at path and returns the records under key.
func Load(path, key string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s list %s: %w", key, path, err)
	}
	records, err := Parse(data, key)
	if err != nil {
		var pe *outline.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return records, nil
}

// parseRecord walks a mapping node that already passed schema validation,
// keeping the key order of the source. Values are the scalar text as written;
// an empty value is "". A repeated key keeps its first position and takes
// the last value.
func parseRecord(node *yaml.Node) Record {
	rec := Record{Fields: make([]Field, 0, len(node.Content)/2)}
	seen := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}
		if j, ok := seen[key]; ok {
			rec.Fields[j].Value = value.Value
			continue
		}
		seen[key] = len(rec.Fields)
		rec.Fields = append(rec.Fields, Field{Key: key, Value: value.Value})
	}
	return rec
}

// Package outline reads the loosely written YAML outlines used for the table
// of contents and the category lists.
//
// The source files are hand-edited. They mix `*` and `-` as list bullets,
// sometimes indent with tabs, and write values such as "Act II: The Well" or
// "Use tag #1" without quotes. Normalize rewrites all of that into plain YAML
// so the rest of the pipeline can use a strict decoder.
package outline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	starBullet = regexp.MustCompile(`^(\s*)\*(\s|$)`)

	// keyValue matches "key: value", optionally after a "- " bullet.
	keyValue = regexp.MustCompile("^(\\s*(?:-\\s+)?)([^\\s\"'#?:\\[\\]{}\\-*&!|>%@`][^:#]*?:)[ \\t]+(\\S.*?)[ \\t\\r]*$")

	// blockItem matches a sequence entry holding a block scalar, "- |".
	blockItem = regexp.MustCompile(`^(\s*)-\s+(\S.*?)[ \t\r]*$`)

	// blockHeader matches a literal or folded block scalar indicator.
	blockHeader = regexp.MustCompile(`^[|>][-+0-9]*[ \t]*(?:#.*)?$`)
)

// Normalize rewrites an outline into strict YAML without changing what it
// says. It expands leading tabs, turns `*` bullets into `-`, and quotes plain
// values that YAML would otherwise cut at " #" or reject for a ": " inside.
// The text of `|` and `>` block scalars is left alone. Line numbers are
// preserved.
func Normalize(src []byte) []byte {
	lines := strings.Split(string(src), "\n")
	block := -1 // indentation of the key owning the open block scalar
	for i, line := range lines {
		line = expandLeadingTabs(line)
		if block >= 0 {
			if strings.TrimSpace(line) == "" || indentOf(line) > block {
				lines[i] = line
				continue
			}
			block = -1
		}
		line = starBullet.ReplaceAllString(line, "$1-$2")

		if m := keyValue.FindStringSubmatch(line); m != nil {
			prefix, key, value := m[1], m[2], m[3]
			switch {
			case blockHeader.MatchString(value):
				block = len(prefix)
			case needsQuotes(value):
				line = prefix + key + " " + strconv.Quote(value)
			}
		} else if m := blockItem.FindStringSubmatch(line); m != nil && blockHeader.MatchString(m[2]) {
			block = len(m[1])
		}
		lines[i] = line
	}
	return []byte(strings.Join(lines, "\n"))
}

// needsQuotes reports whether a plain value would not survive YAML as
// written. Values that are already quoted or use flow syntax are kept, and
// so is a value that is only a comment.
func needsQuotes(value string) bool {
	switch value[0] {
	case '"', '\'', '[', '{', '#':
		return false
	case '*', '&', '!', '%', '@', '`', '|', '>':
		return true
	}
	return strings.Contains(value, ": ") ||
		strings.Contains(value, " #") ||
		strings.Contains(value, "\t#") ||
		strings.HasSuffix(value, ":") ||
		strings.HasPrefix(value, "- ") ||
		strings.HasPrefix(value, "? ")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// expandLeadingTabs replaces each tab in the indentation with two spaces.
func expandLeadingTabs(line string) string {
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	if !strings.Contains(line[:indent], "\t") {
		return line
	}
	return strings.ReplaceAll(line[:indent], "\t", "  ") + line[indent:]
}

// Decode normalizes src and parses it into a YAML node tree.
// It returns the root content node, or nil for an empty document.
func Decode(src []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(Normalize(src), &doc); err != nil {
		return nil, fmt.Errorf("decoding outline: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	return root, nil
}

// Lookup returns the value node stored under key in a mapping node. When a
// key repeats, the last value wins.
func Lookup(node *yaml.Node, key string) (*yaml.Node, bool) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, false
	}
	var found *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			found = node.Content[i+1]
		}
	}
	return found, found != nil
}

// Generic converts a node into the plain values produced by encoding/json
// (maps with string keys, slices, strings, float64, bool, nil), which is the
// form the schema validator expects. Repeated mapping keys keep the last
// value. Timestamps and other non-JSON scalars stay as their source text.
func Generic(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return Generic(node.Content[0])
	case yaml.AliasNode:
		return Generic(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := Generic(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", key.Line)
			}
			v, err := Generic(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		return scalar(node)
	}
	return nil, fmt.Errorf("line %d: unexpected node kind %v", node.Line, node.Kind)
}

func scalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("decoding node at line %d: %w", node.Line, err)
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding node at line %d: %w", node.Line, err)
		}
		return f, nil
	default:
		return node.Value, nil
	}
}

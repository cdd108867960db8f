package book

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mbu09a/Code-Xanadu/internal/outline"
)

//go:embed schemas/contents.schema.json
var contentsSchemaSrc []byte

var contentsSchema = outline.MustCompileSchema("contents.schema.json", contentsSchemaSrc)

// contentsKeys are the mapping keys a document may nest its section list under.
var contentsKeys = []string{"sections", "table_of_contents", "toc"}

var spanDigits = regexp.MustCompile(`\d+`)

// ParseContents parses a table-of-contents outline.
//
// The root is either the list of sections or a mapping that holds it under
// one of "sections", "table_of_contents" or "toc". Every field is optional;
// a missing field leaves the zero value. A document of the wrong shape is
// rejected as a whole with an *outline.ParseError.
func ParseContents(src []byte) (*Contents, error) {
	root, err := outline.Decode(src)
	if err != nil {
		return nil, &outline.ParseError{Err: err}
	}
	if root == nil {
		return &Contents{}, nil
	}

	list := root
	if root.Kind == yaml.MappingNode {
		list = nil
		for _, key := range contentsKeys {
			if node, ok := outline.Lookup(root, key); ok {
				list = node
				break
			}
		}
		if list == nil {
			return nil, &outline.ParseError{Err: fmt.Errorf("no section list under any of %v", contentsKeys)}
		}
	}

	if list.Kind == yaml.ScalarNode && list.ShortTag() == "!!null" {
		return &Contents{}, nil
	}
	if err := contentsSchema.Validate(list); err != nil {
		return nil, &outline.ParseError{Err: err}
	}

	contents := &Contents{}
	if list.Kind != yaml.SequenceNode {
		return contents, nil
	}
	for _, node := range list.Content {
		contents.Sections = append(contents.Sections, parseSection(node))
	}
	return contents, nil
}

// LoadContents reads and parses the table-of-contents file at path.
func LoadContents(path string) (*Contents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contents %s: %w", path, err)
	}
	contents, err := ParseContents(data)
	if err != nil {
		var pe *outline.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return contents, nil
}

// parseSection reads a section node that already passed schema validation.
func parseSection(node *yaml.Node) Section {
	sec := Section{
		Title:     text(node, "title"),
		Character: text(node, "connected_character"),
		Pages:     span(node, "pages"),
	}
	if n, ok := outline.Lookup(node, "number"); ok {
		sec.Number, _ = strconv.Atoi(n.Value)
	}
	if chapters, ok := outline.Lookup(node, "chapters"); ok && chapters.Kind == yaml.SequenceNode {
		sec.Chapters = make([]Chapter, 0, len(chapters.Content))
		for _, ch := range chapters.Content {
			sec.Chapters = append(sec.Chapters, Chapter{
				Name:  text(ch, "name"),
				Pages: span(ch, "page_range"),
			})
		}
	}
	return sec
}

// text returns the scalar under key as written, or "" when it is absent or
// left empty.
func text(node *yaml.Node, key string) string {
	v, ok := outline.Lookup(node, key)
	if ok && v.Kind == yaml.AliasNode {
		v = v.Alias
	}
	if !ok || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}

// span reads a page span written either as [start, end] or "start-end".
func span(node *yaml.Node, key string) PageRange {
	v, ok := outline.Lookup(node, key)
	if !ok {
		return PageRange{}
	}
	var nums []string
	switch v.Kind {
	case yaml.SequenceNode:
		for _, item := range v.Content {
			nums = append(nums, item.Value)
		}
	case yaml.ScalarNode:
		nums = spanDigits.FindAllString(v.Value, -1)
	}
	if len(nums) != 2 {
		return PageRange{}
	}
	start, _ := strconv.Atoi(nums[0])
	end, _ := strconv.Atoi(nums[1])
	return PageRange{Start: start, End: end}
}

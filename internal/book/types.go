// Package book holds the parsed book: its table of contents and page text.
package book

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a page range does not fit the loaded pages.
var ErrOutOfBounds = errors.New("page range out of bounds")

// PageRange is an inclusive span of page numbers.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Chapter is a named page span inside a section.
type Chapter struct {
	Name  string    `json:"name"`
	Pages PageRange `json:"page_range"`
}

// Section is a top-level entry in the table of contents.
type Section struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Character string    `json:"connected_character"`
	Pages     PageRange `json:"pages"`
	Chapters  []Chapter `json:"chapters"`
}

// Contents is the parsed table of contents, in source order.
type Contents struct {
	Sections []Section `json:"sections"`
}

// String returns a JSON representation of the contents for debugging.
func (c *Contents) String() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

// ChapterCount returns the number of chapters across all sections.
func (c *Contents) ChapterCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Chapters)
	}
	return n
}

// Walk visits every chapter in section then chapter order until fn returns false.
func (c *Contents) Walk(fn func(sec *Section, ch *Chapter) bool) {
	for i := range c.Sections {
		sec := &c.Sections[i]
		for j := range sec.Chapters {
			if !fn(sec, &sec.Chapters[j]) {
				return
			}
		}
	}
}

// Page is a single page of text.
type Page struct {
	Number int
	Text   string
}

// Pages maps page numbers to their text.
type Pages map[int]string

// Count returns the number of loaded pages.
func (p Pages) Count() int {
	return len(p)
}

// RangeError describes a page range rejected by Span.
type RangeError struct {
	Range PageRange
	Count int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("page range %s out of bounds (%d pages loaded)", e.Range, e.Count)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfBounds
}

// Span returns the pages of r in ascending order. The range must start at 1
// or later, end at or before the page count, and every page in it must exist.
func (p Pages) Span(r PageRange) ([]Page, error) {
	if r.Start < 1 || r.End > p.Count() || r.Start > r.End {
		return nil, &RangeError{Range: r, Count: p.Count()}
	}
	pages := make([]Page, 0, r.End-r.Start+1)
	for n := r.Start; n <= r.End; n++ {
		text, ok := p[n]
		if !ok {
			return nil, &RangeError{Range: r, Count: p.Count()}
		}
		pages = append(pages, Page{Number: n, Text: text})
	}
	return pages, nil
}

// Package query answers the lookups over a parsed book and renders the
// results as text reports.
//
// The lookup functions are pure: they read the parsed structures and return
// a report value or a lookup error. Printer turns either into output lines.
package query

import (
	"strconv"
	"strings"

	"github.com/mbu09a/Code-Xanadu/internal/book"
	"github.com/mbu09a/Code-Xanadu/internal/catalog"
)

// SectionReport describes one section and its chapters.
type SectionReport struct {
	Number    int
	Title     string
	Character string
	Symbol    string
	Chapters  []book.Chapter
}

// ChapterReport holds a chapter, where it sits, and its page text.
type ChapterReport struct {
	Name          string
	SectionTitle  string
	SectionNumber int
	Character     string
	Symbol        string
	Pages         []book.Page
}

// Appearance is one chapter in a section connected to a character.
type Appearance struct {
	Section string
	Chapter string
}

// CharacterReport lists every chapter connected to a character.
type CharacterReport struct {
	Name        string
	Symbol      string
	Appearances []Appearance
}

// CategoryReport is a titled list of records.
type CategoryReport struct {
	Title   string
	Records []catalog.Record
}

// Section finds the first section numbered n.
func Section(contents *book.Contents, n int) (*SectionReport, error) {
	for i := range contents.Sections {
		sec := &contents.Sections[i]
		if sec.Number != n {
			continue
		}
		return &SectionReport{
			Number:    sec.Number,
			Title:     sec.Title,
			Character: sec.Character,
			Symbol:    book.SymbolPath(sec.Character),
			Chapters:  sec.Chapters,
		}, nil
	}
	return nil, &NotFoundError{Kind: KindSection, Key: strconv.Itoa(n)}
}

// Chapter finds the first chapter named name, ignoring case, and collects
// its pages. The page range is checked only once the name has matched.
func Chapter(contents *book.Contents, pages book.Pages, name string) (*ChapterReport, error) {
	var (
		sec *book.Section
		ch  *book.Chapter
	)
	contents.Walk(func(s *book.Section, c *book.Chapter) bool {
		if strings.EqualFold(c.Name, name) {
			sec, ch = s, c
			return false
		}
		return true
	})
	if ch == nil {
		return nil, &NotFoundError{Kind: KindChapter}
	}

	span, err := pages.Span(ch.Pages)
	if err != nil {
		return nil, err
	}
	return &ChapterReport{
		Name:          ch.Name,
		SectionTitle:  sec.Title,
		SectionNumber: sec.Number,
		Character:     sec.Character,
		Symbol:        book.SymbolPath(sec.Character),
		Pages:         span,
	}, nil
}

// Character collects every chapter of every section whose connected
// character matches name, ignoring case.
func Character(contents *book.Contents, name string) (*CharacterReport, error) {
	var hits []Appearance
	contents.Walk(func(s *book.Section, c *book.Chapter) bool {
		if strings.EqualFold(s.Character, name) {
			hits = append(hits, Appearance{Section: s.Title, Chapter: c.Name})
		}
		return true
	})
	if len(hits) == 0 {
		return nil, &NotFoundError{Kind: KindCharacter}
	}
	return &CharacterReport{
		Name:        name,
		Symbol:      book.SymbolPath(name),
		Appearances: hits,
	}, nil
}

// Category wraps a record list with its display title.
func Category(kind catalog.Kind, records []catalog.Record) *CategoryReport {
	return &CategoryReport{Title: kind.Title(), Records: records}
}

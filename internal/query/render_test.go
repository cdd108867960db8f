package query

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mbu09a/Code-Xanadu/internal/book"
	"github.com/mbu09a/Code-Xanadu/internal/catalog"
)

func TestPrinterSection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	r, err := Section(testContents(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Section(r)

	want := "Section 1: The Garden\n" +
		"Connected character: Kaguya\n" +
		"SVG: symbols/kaguya.svg\n" +
		"Chapters:\n" +
		" - Arrival (pages 1-2)\n" +
		" - Moonrise (pages 3-3)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterChapter(t *testing.T) {
	contents := &book.Contents{Sections: []book.Section{{
		Number:    1,
		Title:     "The Garden",
		Character: "Kaguya",
		Chapters:  []book.Chapter{{Name: "Arrival", Pages: book.PageRange{Start: 1, End: 2}}},
	}}}
	pages := book.Pages{1: "The gate opens.", 2: "A lantern\nflickers."}

	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	r, err := Chapter(contents, pages, "Arrival")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Chapter(r)

	want := "Chapter: Arrival\n" +
		"Section: The Garden (#1)\n" +
		"Connected character: Kaguya\n" +
		"SVG: symbols/kaguya.svg\n" +
		"\n" +
		"[Page 1]\nThe gate opens.\n\n" +
		"[Page 2]\nA lantern\nflickers.\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterCharacter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	r, err := Character(testContents(), "Tomo-e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Character(r)

	want := "Character: Tomo-e\n" +
		"SVG: symbols/tomo_e.svg\n" +
		"Sections/Chapters:\n" +
		" - The Well: Descent\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterCategory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Category(Category(catalog.KindModes, []catalog.Record{
		{Fields: []catalog.Field{{Key: "name", Value: "calm"}, {Key: "level", Value: "1"}}},
		{Fields: []catalog.Field{{Key: "name", Value: "storm"}}},
	}))

	want := "Modes:\n" +
		" - name: calm, level: 1\n" +
		" - name: storm\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterEmptyCategory(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Category(Category(catalog.KindSafety, nil))

	if got := buf.String(); got != "Safety:\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestErrorLine(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"section", &NotFoundError{Kind: KindSection, Key: "99"}, "Error: section 99 not found"},
		{"chapter", &NotFoundError{Kind: KindChapter}, "Error: chapter not found"},
		{"character", &NotFoundError{Kind: KindCharacter}, "Character not found"},
		{"out of bounds", &book.RangeError{Range: book.PageRange{Start: 1, End: 9}, Count: 2}, "Error: page range out of bounds"},
		{"other", errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorLine(tt.err); got != tt.want {
				t.Errorf("ErrorLine() = %q, want %q", got, tt.want)
			}

			var buf bytes.Buffer
			NewPrinter(&buf, true).Error(tt.err)
			if got := buf.String(); got != tt.want+"\n" {
				t.Errorf("Error() wrote %q", got)
			}
		})
	}
}

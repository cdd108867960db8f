package query

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mbu09a/Code-Xanadu/internal/book"
)

// Printer writes reports as human-readable text. Styling follows the
// writer's colour profile, so output to a pipe or file is plain text.
type Printer struct {
	w io.Writer

	// titleStyle for bold report headers
	titleStyle lipgloss.Style
	// labelStyle for field labels
	labelStyle lipgloss.Style
	// dimStyle for page markers and spans
	dimStyle lipgloss.Style
	// errorStyle for lookup errors
	errorStyle lipgloss.Style
}

// NewPrinter returns a printer writing to w. Plain disables all styling.
func NewPrinter(w io.Writer, plain bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w: w,
		titleStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		labelStyle: r.NewStyle().
			Foreground(lipgloss.Color("81")),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		errorStyle: r.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

func (p *Printer) field(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.labelStyle.Render(label), value)
}

// Section prints a section header, its character and its chapter spans.
func (p *Printer) Section(r *SectionReport) {
	fmt.Fprintln(p.w, p.titleStyle.Render(fmt.Sprintf("Section %d: %s", r.Number, r.Title)))
	p.field("Connected character:", r.Character)
	p.field("SVG:", r.Symbol)
	fmt.Fprintln(p.w, p.labelStyle.Render("Chapters:"))
	for _, ch := range r.Chapters {
		span := fmt.Sprintf("(pages %d-%d)", ch.Pages.Start, ch.Pages.End)
		fmt.Fprintf(p.w, " - %s %s\n", ch.Name, p.dimStyle.Render(span))
	}
}

// Chapter prints a chapter header followed by the full text of its pages.
func (p *Printer) Chapter(r *ChapterReport) {
	fmt.Fprintf(p.w, "%s %s\n", p.labelStyle.Render("Chapter:"), p.titleStyle.Render(r.Name))
	p.field("Section:", fmt.Sprintf("%s (#%d)", r.SectionTitle, r.SectionNumber))
	p.field("Connected character:", r.Character)
	p.field("SVG:", r.Symbol)
	fmt.Fprintln(p.w)
	for _, page := range r.Pages {
		p.page(page)
	}
}

// page writes the marker and the body verbatim; bodies span many lines and
// must not go through a style, which would pad them into a block.
func (p *Printer) page(page book.Page) {
	fmt.Fprintln(p.w, p.dimStyle.Render(fmt.Sprintf("[Page %d]", page.Number)))
	fmt.Fprintln(p.w, page.Text)
	fmt.Fprintln(p.w)
}

// Character prints the chapters connected to a character.
func (p *Printer) Character(r *CharacterReport) {
	fmt.Fprintf(p.w, "%s %s\n", p.labelStyle.Render("Character:"), p.titleStyle.Render(r.Name))
	p.field("SVG:", r.Symbol)
	fmt.Fprintln(p.w, p.labelStyle.Render("Sections/Chapters:"))
	for _, a := range r.Appearances {
		fmt.Fprintf(p.w, " - %s: %s\n", a.Section, a.Chapter)
	}
}

// Category prints a category header and one line per record.
func (p *Printer) Category(r *CategoryReport) {
	fmt.Fprintln(p.w, p.titleStyle.Render(r.Title+":"))
	for _, rec := range r.Records {
		fmt.Fprintf(p.w, " - %s\n", rec)
	}
}

// Error prints a lookup error as a single line.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.errorStyle.Render(ErrorLine(err)))
}

// ErrorLine returns the user-facing line for a lookup error.
func ErrorLine(err error) string {
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf) && nf.Kind == KindCharacter:
		return "Character not found"
	case errors.Is(err, book.ErrOutOfBounds):
		return "Error: " + book.ErrOutOfBounds.Error()
	default:
		return "Error: " + err.Error()
	}
}

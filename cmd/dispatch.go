package cmd

import (
	"github.com/spf13/pflag"

	"github.com/mbu09a/Code-Xanadu/internal/catalog"
	"github.com/mbu09a/Code-Xanadu/internal/library"
	"github.com/mbu09a/Code-Xanadu/internal/query"
)

// request is what a selector handler works with.
type request struct {
	lib     *library.Library
	printer *query.Printer
	opts    *options
}

// selector pairs a lookup flag with the handler it triggers.
type selector struct {
	flag string
	run  func(r *request) error
}

// selectors is evaluated in order; the first flag set on the command line
// wins and the rest are ignored.
var selectors = []selector{
	{flag: "section", run: runSection},
	{flag: "chapter", run: runChapter},
	{flag: "character", run: runCharacter},
	{flag: "verbs", run: runCategory(catalog.KindBehaviors)},
	{flag: "modes", run: runCategory(catalog.KindModes)},
	{flag: "safety", run: runCategory(catalog.KindSafety)},
	{flag: "tools", run: runCategory(catalog.KindTools)},
}

// pick returns the first selector whose flag was given.
func pick(flags *pflag.FlagSet) (selector, bool) {
	for _, s := range selectors {
		if flags.Changed(s.flag) {
			return s, true
		}
	}
	return selector{}, false
}

func runSection(r *request) error {
	contents, err := r.lib.Contents()
	if err != nil {
		return err
	}
	report, err := query.Section(contents, r.opts.section)
	if err != nil {
		return err
	}
	r.printer.Section(report)
	return nil
}

func runChapter(r *request) error {
	contents, err := r.lib.Contents()
	if err != nil {
		return err
	}
	pages, err := r.lib.Pages()
	if err != nil {
		return err
	}
	report, err := query.Chapter(contents, pages, r.opts.chapter)
	if err != nil {
		return err
	}
	r.printer.Chapter(report)
	return nil
}

func runCharacter(r *request) error {
	contents, err := r.lib.Contents()
	if err != nil {
		return err
	}
	report, err := query.Character(contents, r.opts.character)
	if err != nil {
		return err
	}
	r.printer.Character(report)
	return nil
}

func runCategory(kind catalog.Kind) func(r *request) error {
	return func(r *request) error {
		records, err := r.lib.Category(kind)
		if err != nil {
			return err
		}
		r.printer.Category(query.Category(kind, records))
		return nil
	}
}

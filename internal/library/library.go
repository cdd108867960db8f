// Package library loads the book sources named by the configuration, each
// at most once and only when a query asks for it.
package library

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mbu09a/Code-Xanadu/internal/book"
	"github.com/mbu09a/Code-Xanadu/internal/catalog"
	"github.com/mbu09a/Code-Xanadu/internal/config"
)

// Library gives access to the parsed sources of one book.
type Library struct {
	cfg *config.Config
	log *zap.Logger

	contents   *book.Contents
	pages      book.Pages
	categories map[catalog.Kind][]catalog.Record
}

// Open returns a library reading from the locations in cfg. Nothing is read
// until a source is requested.
func Open(cfg *config.Config, log *zap.Logger) *Library {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{
		cfg:        cfg,
		log:        log,
		categories: make(map[catalog.Kind][]catalog.Record),
	}
}

// Contents returns the parsed table of contents.
func (l *Library) Contents() (*book.Contents, error) {
	if l.contents != nil {
		return l.contents, nil
	}
	path := l.cfg.Path(l.cfg.Contents)
	contents, err := book.LoadContents(path)
	if err != nil {
		return nil, err
	}
	l.log.Debug("Loaded table of contents",
		zap.String("path", path),
		zap.Int("sections", len(contents.Sections)),
		zap.Int("chapters", contents.ChapterCount()),
		zap.Stringer("contents", contents))
	l.contents = contents
	return contents, nil
}

// Pages returns the page store.
func (l *Library) Pages() (book.Pages, error) {
	if l.pages != nil {
		return l.pages, nil
	}
	path := l.cfg.Path(l.cfg.Pages)
	pages, err := book.LoadPages(path)
	if err != nil {
		return nil, err
	}
	l.log.Debug("Loaded pages", zap.String("path", path), zap.Int("pages", pages.Count()))
	l.pages = pages
	return pages, nil
}

// Category returns the records of one category list.
func (l *Library) Category(kind catalog.Kind) ([]catalog.Record, error) {
	if records, ok := l.categories[kind]; ok {
		return records, nil
	}
	file, err := l.categoryFile(kind)
	if err != nil {
		return nil, err
	}
	path := l.cfg.Path(file)
	records, err := catalog.Load(path, kind.Key())
	if err != nil {
		return nil, err
	}
	l.log.Debug("Loaded category list",
		zap.String("kind", string(kind)),
		zap.String("path", path),
		zap.Int("records", len(records)))
	l.categories[kind] = records
	return records, nil
}

func (l *Library) categoryFile(kind catalog.Kind) (string, error) {
	switch kind {
	case catalog.KindBehaviors:
		return l.cfg.Behaviors, nil
	case catalog.KindModes:
		return l.cfg.Modes, nil
	case catalog.KindSafety:
		return l.cfg.Safety, nil
	case catalog.KindTools:
		return l.cfg.Tools, nil
	default:
		return "", fmt.Errorf("unknown category: %q", kind)
	}
}

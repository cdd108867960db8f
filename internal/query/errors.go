package query

import (
	"errors"
	"fmt"

	"github.com/mbu09a/Code-Xanadu/internal/book"
)

// ErrNotFound is wrapped by every lookup miss.
var ErrNotFound = errors.New("not found")

// Lookup kinds carried by NotFoundError.
const (
	KindSection   = "section"
	KindChapter   = "chapter"
	KindCharacter = "character"
)

// NotFoundError reports a section, chapter or character lookup that matched nothing.
type NotFoundError struct {
	Kind string
	// Key is the looked-up value, when it belongs in the message.
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsLookupError reports whether err is an expected query outcome (a miss or
// an out-of-bounds chapter) rather than a failure to load the sources.
func IsLookupError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, book.ErrOutOfBounds)
}

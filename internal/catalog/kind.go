package catalog

import "strings"

// Kind identifies one of the category lists.
type Kind string

const (
	// KindBehaviors lists the behavior verbs.
	KindBehaviors Kind = "behaviors"
	// KindModes lists the operating modes.
	KindModes Kind = "modes"
	// KindSafety lists the safety rules.
	KindSafety Kind = "safety"
	// KindTools lists the tools.
	KindTools Kind = "tools"
)

// Key returns the top-level key the list is stored under.
func (k Kind) Key() string {
	return string(k)
}

// Title returns the display header, e.g. "Behaviors".
func (k Kind) Title() string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

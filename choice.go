package termpick

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Choice is one selectable entry. Index is the entry's position in the
// unfiltered master list and never changes: filtering produces a view
// over the master list, not a renumbering. Highlighted is recomputed
// every frame; Selected persists across filtering and re-rendering and
// is only meaningful for multi-select controls.
type Choice struct {
	Index       int
	Value       string
	Highlighted bool
	Selected    bool
	ShortcutKey string
}

// Plain returns the display text with any embedded styling stripped.
// Filtering and width measurement work on plain text.
func (c *Choice) Plain() string {
	if strings.Contains(c.Value, "\x1b") {
		return ansi.Strip(c.Value)
	}
	return c.Value
}

// Result is the outcome of a single-select run. A cancelled or empty
// run yields NoResult.
type Result struct {
	Value string
	Index int
}

// NoResult is the uniform "nothing happened" result used for
// cancellation and empty confirmation alike.
var NoResult = Result{Index: -1}

// None reports whether the run produced no selection.
func (r Result) None() bool { return r.Index < 0 }

// MultiResult is the outcome of a multi-select run. Indices follow
// master-list order. A cancelled run, or a confirmed run with nothing
// selected, yields the zero value.
type MultiResult struct {
	Values  []string
	Indices []int
}

// None reports whether the run produced no selection.
func (r MultiResult) None() bool { return len(r.Indices) == 0 }

func newChoices(values []string) []*Choice {
	choices := make([]*Choice, len(values))
	for i, v := range values {
		choices[i] = &Choice{Index: i, Value: v}
	}
	return choices
}

package termpick

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// NewFilter builds a chooser with interactive filtering enabled.
// Typing narrows the list; Backspace widens it again. Identical to New
// with EnableFiltering set.
func NewFilter(cfg Config) *Chooser {
	cfg.EnableFiltering = true
	return New(cfg)
}

// refilter recomputes the filtered view from the master list and the
// current filter text, keeping the cursor on the same choice when it
// survives the filter. Pinned rows always stay, in place, at the top.
func (c *Chooser) refilter() {
	keep := c.highlightedIndex

	if c.filterText == "" {
		c.filtered = append(c.filtered[:0], c.choices...)
	} else {
		c.filtered = c.filtered[:0]
		c.filtered = append(c.filtered, c.choices[:min(c.pinned, len(c.choices))]...)
		c.filtered = append(c.filtered, matchChoices(c.choices[min(c.pinned, len(c.choices)):], c.filterText, c.matchMode)...)
	}

	c.highlightedFilteredIndex = 0
	for pos, ch := range c.filtered {
		if ch.Index == keep {
			c.highlightedFilteredIndex = pos
			break
		}
	}
}

// matchChoices returns the choices matching the filter text, in their
// original order.
func matchChoices(choices []*Choice, text string, mode MatchMode) []*Choice {
	var out []*Choice
	switch mode {
	case MatchFuzzy:
		for _, ch := range choices {
			if fuzzy.MatchNormalizedFold(text, ch.Plain()) {
				out = append(out, ch)
			}
		}
	default:
		needle := strings.ToLower(text)
		for _, ch := range choices {
			if strings.Contains(strings.ToLower(ch.Plain()), needle) {
				out = append(out, ch)
			}
		}
	}
	return out
}

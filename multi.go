package termpick

import (
	"fmt"

	"termpick/internal/logging/events"
	"termpick/key"
	"termpick/render"
)

// MultiConfig configures a multi-select chooser. Zero MinSelected and
// MaxSelected mean no bound on that side.
type MultiConfig struct {
	Config

	MinSelected int
	MaxSelected int

	// Pre-selected entries, by master index or by value. Both may be
	// given; they are unioned.
	InitialSelected       []int
	InitialSelectedValues []string
}

// MultiChooser is a chooser where Space toggles entries and Enter
// confirms the whole selection, subject to the configured count
// bounds.
type MultiChooser struct {
	*Chooser
	min, max int
}

// NewMulti builds a multi-select chooser.
func NewMulti(cfg MultiConfig) *MultiChooser {
	m := &MultiChooser{min: cfg.MinSelected, max: cfg.MaxSelected}
	m.Chooser = newChooser(cfg.Config, multiExtension{m})
	for _, i := range cfg.InitialSelected {
		if i >= 0 && i < len(m.choices) {
			m.choices[i].Selected = true
		}
	}
	for _, v := range cfg.InitialSelectedValues {
		for _, ch := range m.choices {
			if ch.Value == v || ch.Plain() == v {
				ch.Selected = true
			}
		}
	}
	return m
}

// Run drives the control and returns the confirmed selection in
// master-list order. Cancellation, and confirmation with nothing
// selected, both return the zero MultiResult.
func (m *MultiChooser) Run() MultiResult {
	if !m.runLoop() {
		return MultiResult{}
	}
	var res MultiResult
	for _, ch := range m.choices {
		if ch.Selected {
			res.Values = append(res.Values, ch.Value)
			res.Indices = append(res.Indices, ch.Index)
		}
	}
	return res
}

type multiExtension struct {
	m *MultiChooser
}

func (multiExtension) PrepareChoices(c *Chooser) {}

func (multiExtension) DisplayChoices(c *Chooser) []*Choice { return c.filtered }

func (multiExtension) RenderRow(c *Chooser, ch *Choice) render.Line {
	box := c.styles.CheckboxUnchecked
	if ch.Selected {
		box = c.styles.CheckboxChecked
	}
	return caretRow(c, ch, box+" "+ch.Value)
}

func (e multiExtension) ValidateSelection(c *Chooser) string {
	count := len(c.Selected())
	min, max := e.m.min, e.m.max
	switch {
	case min > 0 && max > 0 && (count < min || count > max):
		return fmt.Sprintf(c.messages.RangeSelectedError, min, max)
	case min > 0 && count < min:
		return fmt.Sprintf(c.messages.MinSelectedError, min)
	case max > 0 && count > max:
		return fmt.Sprintf(c.messages.MaxSelectedError, max)
	}
	return ""
}

// HandleOtherKey toggles on Space; everything else falls through to
// filter editing. In a multi-select, Space is a toggle even when
// filtering is on.
func (multiExtension) HandleOtherKey(c *Chooser, tok string) KeyAction {
	if tok == key.Space {
		if ch := c.highlighted; ch != nil {
			ch.Selected = !ch.Selected
			events.UI.Toggle(ch.Index, ch.Selected)
			if c.onChange != nil {
				c.onChange(c)
			}
		}
		return KeyHandled
	}
	return editFilter(c, tok)
}

package termpick

import (
	"fmt"

	"termpick/render"
)

// ShortcutConfig configures a shortcut chooser. With no Keys the first
// ten choices get the digits 1-9 then 0; explicit Keys are matched to
// choices by position.
type ShortcutConfig struct {
	Config

	// Keys assigns one shortcut key per choice, by position. Each key
	// must be a single printable character.
	Keys []string

	// Strict rejects key lists that do not line up with the choices
	// (wrong count, duplicates). Without it, extra keys are dropped,
	// uncovered choices get no shortcut, and a duplicated key jumps to
	// its last choice.
	Strict bool

	// ConfirmOnSelect makes a shortcut key press confirm immediately
	// instead of just moving the highlight.
	ConfirmOnSelect bool

	// HideKeys keeps the shortcut keys active but drops the "1) "
	// prefixes from the rows.
	HideKeys bool
}

// ShortcutChooser is a chooser where each choice can be jumped to (or
// chosen outright) with a single key press.
type ShortcutChooser struct {
	*Chooser

	keyToIndex      map[string]int
	auto            bool
	confirmOnSelect bool
	hideKeys        bool
}

var autoShortcutKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// NewShortcut builds a shortcut chooser. In Strict mode a key list
// that does not match the choices is an error.
func NewShortcut(cfg ShortcutConfig) (*ShortcutChooser, error) {
	s := &ShortcutChooser{
		auto:            len(cfg.Keys) == 0,
		confirmOnSelect: cfg.ConfirmOnSelect,
		hideKeys:        cfg.HideKeys,
	}

	keys := cfg.Keys
	if s.auto {
		keys = autoShortcutKeys
		if len(cfg.Choices) < len(keys) {
			keys = keys[:len(cfg.Choices)]
		}
	} else if cfg.Strict {
		switch {
		case len(keys) < len(cfg.Choices):
			return nil, fmt.Errorf("too few shortcut keys: %d keys for %d choices", len(keys), len(cfg.Choices))
		case len(keys) > len(cfg.Choices):
			return nil, fmt.Errorf("too many shortcut keys: %d keys for %d choices", len(keys), len(cfg.Choices))
		}
		seen := map[string]bool{}
		for _, k := range keys {
			if seen[k] {
				return nil, fmt.Errorf("duplicate shortcut key %q", k)
			}
			seen[k] = true
		}
	}
	if len(keys) > len(cfg.Choices) {
		keys = keys[:len(cfg.Choices)]
	}

	if cfg.FooterParts == nil {
		cfg.FooterParts = shortcutFooter(cfg, s.auto)
	}

	s.Chooser = newChooser(cfg.Config, shortcutExtension{s})

	s.keyToIndex = make(map[string]int, len(keys))
	for i, k := range keys {
		s.choices[i].ShortcutKey = k
		// On duplicates the last assignment wins.
		s.keyToIndex[k] = i
	}
	return s, nil
}

func shortcutFooter(cfg ShortcutConfig, auto bool) []string {
	msgs := mergeMessages(DefaultMessages(), cfg.Messages)
	selectMsg := msgs.ShortcutSelectKey
	if auto && len(cfg.Choices) <= 9 && len(cfg.Choices) > 1 {
		selectMsg = fmt.Sprintf(msgs.ShortcutSelectRange, 1, len(cfg.Choices))
	}
	return []string{msgs.NavInstructions, selectMsg, msgs.ConfirmInstructions}
}

type shortcutExtension struct {
	s *ShortcutChooser
}

func (shortcutExtension) PrepareChoices(c *Chooser) {}

func (shortcutExtension) DisplayChoices(c *Chooser) []*Choice { return c.filtered }

func (e shortcutExtension) RenderRow(c *Chooser, ch *Choice) render.Line {
	if e.s.hideKeys {
		return caretRow(c, ch, ch.Value)
	}
	prefix := "   "
	if ch.ShortcutKey != "" {
		prefix = ch.ShortcutKey + ") "
	}
	if ch.Highlighted {
		return render.Line{
			Text:  c.styles.SelectionCaret + " " + prefix + ch.Value,
			Style: c.styles.Selection,
			Raw:   containsEscape(ch.Value),
		}
	}
	return render.Line{
		Text: "  " + c.styles.ShortcutPrefix.Render(prefix) + c.styles.Body.Render(ch.Value),
		Raw:  true,
	}
}

func (shortcutExtension) ValidateSelection(c *Chooser) string { return "" }

// HandleOtherKey jumps to the choice bound to the pressed key. Keys
// without a binding fall through to filter editing.
func (e shortcutExtension) HandleOtherKey(c *Chooser, tok string) KeyAction {
	idx, ok := e.s.keyToIndex[tok]
	if !ok {
		return editFilter(c, tok)
	}
	for pos, ch := range c.display() {
		if ch.Index == idx {
			c.SetDisplayIndex(pos)
			if e.s.confirmOnSelect {
				return KeyConfirmed
			}
			return KeyHandled
		}
	}
	// Bound choice is filtered out; nothing to jump to.
	return KeyHandled
}

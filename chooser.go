package termpick

import (
	"os"
	"strings"

	"termpick/internal/logging"
	"termpick/internal/logging/events"
	"termpick/key"
	"termpick/render"
)

// Chooser is the scrollable single-select list every other control in
// this package is built on. Construct one with New (or a variant
// constructor), then call Run; Run blocks until the user confirms,
// cancels, or ShouldExit fires.
type Chooser struct {
	Title          string
	Header         string
	HeaderLocation HeaderLocation
	Height         int
	MaxHeight      int
	Width          int
	ExpandWidth    bool
	NoWrap         bool
	Persist        bool

	styles      *Styles
	messages    *Messages
	keybindings Keybindings
	footerParts []string

	choices  []*Choice
	filtered []*Choice
	// pinned rows stay at the top of the display regardless of the
	// filter text.
	pinned int

	filtering  bool
	matchMode  MatchMode
	filterText string

	// highlightedFilteredIndex is the cursor position in the display
	// list; highlightedIndex is the master index of the choice under
	// it.
	highlighted              *Choice
	highlightedIndex         int
	highlightedFilteredIndex int

	errMsg string

	reader   key.Reader
	renderer render.Renderer
	ext      Extension

	beforeRun  func(*Chooser)
	afterRun   func(*Chooser)
	onChange   func(*Chooser)
	onKey      func(string, *Chooser) string
	onConfirm  func(*Chooser) bool
	shouldExit func(*Chooser) bool

	began bool
}

// New builds a single-select chooser.
func New(cfg Config) *Chooser {
	return newChooser(cfg, nil)
}

func newChooser(cfg Config, ext Extension) *Chooser {
	c := &Chooser{
		Title:          cfg.Title,
		Header:         cfg.Header,
		HeaderLocation: cfg.HeaderLocation,
		Height:         cfg.Height,
		MaxHeight:      cfg.MaxHeight,
		Width:          cfg.Width,
		ExpandWidth:    cfg.ExpandWidth,
		NoWrap:         cfg.NoWrap,
		Persist:        cfg.Persist,

		styles:      mergeStyles(DefaultStyles(), cfg.Styles),
		messages:    mergeMessages(DefaultMessages(), cfg.Messages),
		keybindings: DefaultKeybindings().merge(cfg.Keybindings),
		footerParts: cfg.FooterParts,

		filtering: cfg.EnableFiltering,
		matchMode: cfg.MatchMode,

		reader:   cfg.Reader,
		renderer: cfg.Renderer,
		ext:      ext,

		beforeRun:  cfg.BeforeRun,
		afterRun:   cfg.AfterRun,
		onChange:   cfg.OnChange,
		onKey:      cfg.OnKey,
		onConfirm:  cfg.OnConfirm,
		shouldExit: cfg.ShouldExit,
	}
	if c.ext == nil {
		c.ext = baseExtension{}
	}
	c.choices = newChoices(cfg.Choices)
	c.highlightedIndex = -1
	c.refilter()
	c.seedHighlight(cfg)
	return c
}

// seedHighlight positions the cursor from InitialValue or
// InitialIndex. A value match wins over the index.
func (c *Chooser) seedHighlight(cfg Config) {
	display := c.display()
	target := cfg.InitialIndex
	if cfg.InitialValue != "" {
		for _, ch := range c.choices {
			if strings.EqualFold(ch.Plain(), cfg.InitialValue) {
				target = ch.Index
				break
			}
		}
	}
	for pos, ch := range display {
		if ch.Index == target {
			c.highlightedFilteredIndex = pos
			break
		}
	}
	c.syncHighlight()
}

// Run drives the control to completion and returns the confirmed
// choice, or NoResult on cancellation.
func (c *Chooser) Run() Result {
	if c.runLoop() && c.highlighted != nil {
		events.UI.Confirm(c.highlighted.Value, c.highlighted.Index)
		return Result{Value: c.highlighted.Value, Index: c.highlighted.Index}
	}
	return NoResult
}

// runLoop is the shared engine. It reports whether the run ended in a
// confirmation.
func (c *Chooser) runLoop() (confirmed bool) {
	if c.beforeRun != nil {
		c.beforeRun(c)
	}
	if c.afterRun != nil {
		defer func() { c.afterRun(c) }()
	}

	c.ext.PrepareChoices(c)
	c.refilter()
	c.syncHighlight()
	c.began = true
	defer func() { c.began = false }()

	if c.reader == nil {
		c.reader = key.NewTTY()
	}
	if c.renderer == nil {
		c.renderer = render.NewLive(os.Stderr, !c.Persist)
	}

	if err := c.reader.Acquire(); err != nil {
		logging.Error(err)
		return false
	}
	defer c.reader.Release()

	if err := c.renderer.Start(c.buildFrame()); err != nil {
		logging.Error(err)
		return false
	}
	defer c.renderer.Stop()

	for {
		if c.shouldExit != nil && c.shouldExit(c) {
			events.UI.Cancel()
			return false
		}

		tok, err := c.reader.ReadKey()
		if err != nil {
			// Input went away; treat it as a cancel.
			logging.Error(err)
			events.UI.Cancel()
			return false
		}
		if tok == key.Empty {
			continue
		}

		// Any key dismisses a pending error overlay and is consumed.
		if c.errMsg != "" {
			c.errMsg = ""
			c.renderer.Update(c.buildFrame())
			continue
		}

		if c.onKey != nil {
			tok = c.onKey(tok, c)
			if tok == key.Empty {
				c.renderer.Update(c.buildFrame())
				continue
			}
		}

		done, ok := c.dispatch(tok)
		if done {
			return ok
		}

		c.syncHighlight()
		c.renderer.Update(c.buildFrame())
	}
}

// dispatch routes one token. done means the run is over; ok
// distinguishes confirm from cancel.
func (c *Chooser) dispatch(tok string) (done, ok bool) {
	kb := c.keybindings
	switch {
	case kb.matches(ActionCancel, tok):
		events.UI.Cancel()
		return true, false

	case kb.matches(ActionConfirm, tok):
		return c.confirmSelection()

	case kb.matches(ActionUp, tok):
		c.moveBy(-1)
	case kb.matches(ActionDown, tok):
		c.moveBy(1)
	case kb.matches(ActionHome, tok):
		c.moveTo(0)
	case kb.matches(ActionEnd, tok):
		c.moveTo(len(c.display()) - 1)
	case kb.matches(ActionPageUp, tok):
		c.page(-1)
	case kb.matches(ActionPageDown, tok):
		c.page(1)

	default:
		switch c.ext.HandleOtherKey(c, tok) {
		case KeyConfirmed:
			return c.confirmSelection()
		case KeyHandled, KeyIgnored:
		}
	}
	return false, false
}

// confirmSelection runs the full confirmation protocol: validation,
// then the OnConfirm veto. Every confirmation path goes through it,
// whether triggered by the confirm binding or by an extension.
func (c *Chooser) confirmSelection() (done, ok bool) {
	if msg := c.ext.ValidateSelection(c); msg != "" {
		c.errMsg = msg
		events.UI.ValidationFailed(msg)
		c.renderer.Update(c.buildFrame())
		return false, false
	}
	if c.onConfirm != nil && !c.onConfirm(c) {
		c.ext.PrepareChoices(c)
		c.refilter()
		return false, false
	}
	return true, true
}

// moveBy steps the cursor, wrapping at the list edges unless NoWrap is
// set.
func (c *Chooser) moveBy(delta int) {
	n := len(c.display())
	if n == 0 {
		return
	}
	next := c.highlightedFilteredIndex + delta
	switch {
	case next < 0:
		if c.NoWrap {
			next = 0
		} else {
			next = n - 1
		}
	case next >= n:
		if c.NoWrap {
			next = n - 1
		} else {
			next = 0
		}
	}
	c.highlightedFilteredIndex = next
}

func (c *Chooser) moveTo(pos int) {
	n := len(c.display())
	if n == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}
	c.highlightedFilteredIndex = pos
}

// page jumps by one window of rows minus one, so the previous edge row
// stays visible.
func (c *Chooser) page(dir int) {
	n := len(c.display())
	if n == 0 {
		return
	}
	step := c.visibleCount(n, 0) - 1
	if step < 1 {
		step = 1
	}
	c.moveTo(c.highlightedFilteredIndex + dir*step)
}

// syncHighlight reconciles the highlight flags with the cursor and
// fires OnChange when the highlighted choice actually changed.
func (c *Chooser) syncHighlight() {
	for _, ch := range c.choices {
		ch.Highlighted = false
	}
	display := c.display()
	if len(display) == 0 {
		c.highlighted = nil
		if c.highlightedIndex != -1 {
			c.highlightedIndex = -1
			if c.began && c.onChange != nil {
				c.onChange(c)
			}
		}
		return
	}
	if c.highlightedFilteredIndex >= len(display) {
		c.highlightedFilteredIndex = len(display) - 1
	}
	if c.highlightedFilteredIndex < 0 {
		c.highlightedFilteredIndex = 0
	}
	ch := display[c.highlightedFilteredIndex]
	ch.Highlighted = true
	c.highlighted = ch
	if ch.Index != c.highlightedIndex {
		c.highlightedIndex = ch.Index
		events.UI.Cursor(ch.Index)
		if c.began && c.onChange != nil {
			c.onChange(c)
		}
	}
}

// display is the ordered row list currently shown.
func (c *Chooser) display() []*Choice {
	return c.ext.DisplayChoices(c)
}

// footerText joins the footer segments; an explicitly empty (non-nil,
// zero-length) FooterParts suppresses the footer.
func (c *Chooser) footerText() string {
	parts := c.footerParts
	if parts == nil {
		parts = []string{c.messages.NavInstructions, c.messages.ConfirmInstructions}
	}
	if len(parts) == 0 {
		return ""
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += c.messages.FooterSeparator
		}
		out += p
	}
	return out
}

// Choices returns the master choice list.
func (c *Chooser) Choices() []*Choice { return c.choices }

// Display returns the rows currently shown, in order.
func (c *Chooser) Display() []*Choice { return c.display() }

// Highlighted returns the choice under the cursor, or nil when the
// display is empty.
func (c *Chooser) Highlighted() *Choice { return c.highlighted }

// HighlightedIndex returns the master index of the highlighted choice,
// or -1.
func (c *Chooser) HighlightedIndex() int { return c.highlightedIndex }

// SetDisplayIndex moves the cursor to a position in the display list.
func (c *Chooser) SetDisplayIndex(pos int) {
	c.moveTo(pos)
	c.syncHighlight()
}

// Selected returns the selected choices in master order.
func (c *Chooser) Selected() []*Choice {
	var out []*Choice
	for _, ch := range c.choices {
		if ch.Selected {
			out = append(out, ch)
		}
	}
	return out
}

// FilterText returns the current filter text.
func (c *Chooser) FilterText() string { return c.filterText }

// SetFilterText replaces the filter text and recomputes the display.
func (c *Chooser) SetFilterText(text string) {
	c.filterText = text
	c.refilter()
	c.syncHighlight()
}

// Filtering reports whether interactive filtering is enabled.
func (c *Chooser) Filtering() bool { return c.filtering }

// Styles returns the merged style set.
func (c *Chooser) Styles() *Styles { return c.styles }

// Messages returns the merged message set.
func (c *Chooser) Messages() *Messages { return c.messages }

// Bindings returns the merged keybinding table.
func (c *Chooser) Bindings() Keybindings { return c.keybindings }

// Reset replaces the choice list. The first pinned entries stay at the
// top of the display regardless of the filter text.
func (c *Chooser) Reset(values []string, pinned int) {
	c.choices = newChoices(values)
	c.pinned = pinned
	c.highlightedFilteredIndex = 0
	c.refilter()
	c.syncHighlight()
}

// baseExtension is the behavior of the plain chooser: filtered rows,
// caret row rendering, filter editing on otherwise unbound keys.
type baseExtension struct{}

func (baseExtension) PrepareChoices(c *Chooser) {}

func (baseExtension) DisplayChoices(c *Chooser) []*Choice { return c.filtered }

func (baseExtension) RenderRow(c *Chooser, ch *Choice) render.Line {
	return caretRow(c, ch, ch.Value)
}

func (baseExtension) ValidateSelection(c *Chooser) string { return "" }

func (baseExtension) HandleOtherKey(c *Chooser, tok string) KeyAction {
	return editFilter(c, tok)
}

// caretRow renders the standard "▶ value" row, styled for highlight
// state. Values carrying their own escapes render raw.
func caretRow(c *Chooser, ch *Choice, text string) render.Line {
	raw := containsEscape(text)
	if ch.Highlighted {
		return render.Line{
			Text:  c.styles.SelectionCaret + " " + text,
			Style: c.styles.Selection,
			Raw:   raw,
		}
	}
	return render.Line{
		Text:  "  " + text,
		Style: c.styles.Body,
		Raw:   raw,
	}
}

func containsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			return true
		}
	}
	return false
}

// editFilter applies one key of filter editing. It is shared by every
// extension that keeps filtering enabled.
func editFilter(c *Chooser, tok string) KeyAction {
	if !c.filtering {
		return KeyIgnored
	}
	switch {
	case c.keybindings.matches(ActionBackspace, tok):
		if c.filterText == "" {
			return KeyHandled
		}
		c.filterText = c.filterText[:len(c.filterText)-len(lastRune(c.filterText))]
		events.Filter.Backspace(c.filterText)
	case tok == key.Space:
		c.filterText += " "
	case len([]rune(tok)) == 1:
		c.filterText += tok
	default:
		return KeyIgnored
	}
	c.refilter()
	events.Filter.Append(c.filterText, len(c.filtered), len(c.choices))
	return KeyHandled
}

func lastRune(s string) string {
	r := []rune(s)
	return string(r[len(r)-1])
}

package termpick

import (
	"termpick/key"
	"termpick/render"
)

// HeaderLocation places the optional header text relative to the list
// panel.
type HeaderLocation int

const (
	// HeaderInsideTop paints the header as the first row inside the
	// panel. It is the default.
	HeaderInsideTop HeaderLocation = iota
	// HeaderOutsideTop paints the header above the panel.
	HeaderOutsideTop
	// HeaderLeft and HeaderRight paint the header beside the panel.
	HeaderLeft
	HeaderRight
)

// MatchMode selects how filter text is matched against choices.
type MatchMode int

const (
	// MatchSubstring keeps choices whose plain text contains the filter
	// text, case-insensitively. It is the default.
	MatchSubstring MatchMode = iota
	// MatchFuzzy keeps choices the filter text fuzzy-matches, in the
	// original list order.
	MatchFuzzy
)

// KeyAction is an Extension's verdict on a key the engine does not
// handle itself.
type KeyAction int

const (
	// KeyIgnored means the extension did not consume the key.
	KeyIgnored KeyAction = iota
	// KeyHandled means the extension consumed the key; the loop
	// repaints and continues.
	KeyHandled
	// KeyConfirmed means the extension consumed the key and the run
	// should finish as a confirmation.
	KeyConfirmed
)

// Extension customizes a Chooser at five fixed points. The variants in
// this package (multi-select, shortcuts, file browsing) are all built
// on it; external callers can supply their own.
type Extension interface {
	// PrepareChoices rebuilds the choice list before the run starts and
	// after a rejected confirmation.
	PrepareChoices(c *Chooser)
	// DisplayChoices returns the rows to show, in order. The base
	// implementation returns the filtered view.
	DisplayChoices(c *Chooser) []*Choice
	// RenderRow turns one choice into a frame row.
	RenderRow(c *Chooser, ch *Choice) render.Line
	// ValidateSelection runs on confirm; a non-empty return blocks the
	// confirmation and is shown as an error overlay.
	ValidateSelection(c *Chooser) string
	// HandleOtherKey sees every key no engine binding matched.
	HandleOtherKey(c *Chooser, token string) KeyAction
}

// Config carries every option shared by the chooser variants. The zero
// value of each field is the default: lists wrap, filtering is off,
// width and height auto-fit, the frame is erased on exit.
type Config struct {
	Choices []string

	Title          string
	Header         string
	HeaderLocation HeaderLocation

	// Height fixes the frame height in rows; MaxHeight caps the
	// auto-fit height. Zero means unconstrained (the renderer's height
	// bounds the list either way).
	Height    int
	MaxHeight int

	// Width fixes the content width; ExpandWidth stretches it to the
	// renderer width instead. Zero auto-fits to the widest row.
	Width       int
	ExpandWidth bool

	// InitialValue wins over InitialIndex when both are set and the
	// value is present.
	InitialIndex int
	InitialValue string

	// NoWrap stops cursor movement at the list edges instead of
	// wrapping around.
	NoWrap bool

	EnableFiltering bool
	MatchMode       MatchMode

	Styles   *Styles
	Messages *Messages

	// Keybindings entries replace the default token list for their
	// action.
	Keybindings Keybindings

	// FooterParts overrides the footer segments; nil uses the default
	// navigation hints.
	FooterParts []string

	// Persist leaves the final frame on screen after the run instead
	// of erasing it.
	Persist bool

	// Reader defaults to the controlling terminal; Renderer defaults
	// to a live stderr painter.
	Reader   key.Reader
	Renderer render.Renderer

	// Hooks. OnChange fires when the highlight moves to a different
	// choice. OnKey sees each token before dispatch and may rewrite it;
	// returning "" swallows the key. OnConfirm may veto a confirmation
	// by returning false; the choice list is then rebuilt and the run
	// continues. ShouldExit is polled before each read and cancels the
	// run when true.
	BeforeRun  func(*Chooser)
	AfterRun   func(*Chooser)
	OnChange   func(*Chooser)
	OnKey      func(token string, c *Chooser) string
	OnConfirm  func(*Chooser) bool
	ShouldExit func(*Chooser) bool
}

package termpick

import "github.com/charmbracelet/lipgloss"

// Styles collects every visual knob of a control. Nil style fields and
// empty glyph fields fall back to the defaults, so callers only set
// what they want to change.
type Styles struct {
	Body            *lipgloss.Style
	Selection       *lipgloss.Style
	Header          *lipgloss.Style
	Footer          *lipgloss.Style
	Border          *lipgloss.Style
	Title           *lipgloss.Style
	ScrollIndicator *lipgloss.Style
	Filter          *lipgloss.Style
	ShortcutPrefix  *lipgloss.Style
	FullPath        *lipgloss.Style
	Error           *lipgloss.Style

	SelectionCaret      string
	ScrollUpIndicator   string
	ScrollDownIndicator string
	FilterCursor        string
	CheckboxChecked     string
	CheckboxUnchecked   string

	// NoBorder drops the panel border entirely; the title becomes a
	// centered first row instead.
	NoBorder bool
}

func ptr(s lipgloss.Style) *lipgloss.Style { return &s }

// DefaultStyles returns the stock look: a cyan accent on the
// terminal's own background.
func DefaultStyles() *Styles {
	return &Styles{
		Body:            ptr(lipgloss.NewStyle()),
		Selection:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)),
		Header:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)),
		Footer:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))),
		Border:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))),
		Title:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)),
		ScrollIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))),
		Filter:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("11"))),
		ShortcutPrefix:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)),
		FullPath:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)),
		Error:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)),

		SelectionCaret:      "▶",
		ScrollUpIndicator:   "··· ▲ ···",
		ScrollDownIndicator: "··· ▼ ···",
		FilterCursor:        lipgloss.NewStyle().Blink(true).Render("_"),
		CheckboxChecked:     "☒",
		CheckboxUnchecked:   "☐",
	}
}

// OceanStyles is a blue-on-dark preset.
func OceanStyles() *Styles {
	s := DefaultStyles()
	s.Selection = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#7ad9f7")).Bold(true))
	s.Header = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#4aa3c7")).Bold(true))
	s.Border = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#2d6a8a")))
	s.Title = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#a8e6f7")).Bold(true))
	s.ShortcutPrefix = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#4aa3c7")).Bold(true))
	return s
}

// ForestStyles is a green preset.
func ForestStyles() *Styles {
	s := DefaultStyles()
	s.Selection = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#9ae69a")).Bold(true))
	s.Header = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#56b361")).Bold(true))
	s.Border = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#3a7a42")))
	s.Title = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#c4f2c4")).Bold(true))
	s.ShortcutPrefix = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#56b361")).Bold(true))
	return s
}

// MatrixStyles is a monochrome green-on-black preset.
func MatrixStyles() *Styles {
	s := DefaultStyles()
	green := lipgloss.Color("#00ff41")
	dim := lipgloss.Color("#008f11")
	s.Body = ptr(lipgloss.NewStyle().Foreground(dim))
	s.Selection = ptr(lipgloss.NewStyle().Foreground(green).Bold(true))
	s.Header = ptr(lipgloss.NewStyle().Foreground(green).Bold(true))
	s.Footer = ptr(lipgloss.NewStyle().Foreground(dim))
	s.Border = ptr(lipgloss.NewStyle().Foreground(dim))
	s.Title = ptr(lipgloss.NewStyle().Foreground(green).Bold(true))
	s.ScrollIndicator = ptr(lipgloss.NewStyle().Foreground(dim))
	s.ShortcutPrefix = ptr(lipgloss.NewStyle().Foreground(green))
	return s
}

// CyberpunkStyles is a magenta/yellow preset.
func CyberpunkStyles() *Styles {
	s := DefaultStyles()
	s.Selection = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#ff2aea")).Bold(true))
	s.Header = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#f7e62e")).Bold(true))
	s.Border = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#8a2be2")))
	s.Title = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#f7e62e")).Bold(true))
	s.ShortcutPrefix = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("#ff2aea")).Bold(true))
	return s
}

// TerminalClassicStyles uses only the 16 base colors and ASCII glyphs,
// for terminals without Unicode or truecolor.
func TerminalClassicStyles() *Styles {
	s := DefaultStyles()
	s.Selection = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true))
	s.Header = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("2")))
	s.Border = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("7")))
	s.Title = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true))
	s.SelectionCaret = ">"
	s.ScrollUpIndicator = "--- ^ ---"
	s.ScrollDownIndicator = "--- v ---"
	s.CheckboxChecked = "[x]"
	s.CheckboxUnchecked = "[ ]"
	return s
}

// StylePreset looks up a named preset, defaulting to DefaultStyles for
// unknown names.
func StylePreset(name string) *Styles {
	switch name {
	case "ocean":
		return OceanStyles()
	case "forest":
		return ForestStyles()
	case "matrix":
		return MatrixStyles()
	case "cyberpunk":
		return CyberpunkStyles()
	case "classic":
		return TerminalClassicStyles()
	default:
		return DefaultStyles()
	}
}

// mergeStyles overlays non-nil and non-empty override fields on a base.
func mergeStyles(base, overrides *Styles) *Styles {
	if overrides == nil {
		return base
	}
	merged := *base
	if overrides.Body != nil {
		merged.Body = overrides.Body
	}
	if overrides.Selection != nil {
		merged.Selection = overrides.Selection
	}
	if overrides.Header != nil {
		merged.Header = overrides.Header
	}
	if overrides.Footer != nil {
		merged.Footer = overrides.Footer
	}
	if overrides.Border != nil {
		merged.Border = overrides.Border
	}
	if overrides.Title != nil {
		merged.Title = overrides.Title
	}
	if overrides.ScrollIndicator != nil {
		merged.ScrollIndicator = overrides.ScrollIndicator
	}
	if overrides.Filter != nil {
		merged.Filter = overrides.Filter
	}
	if overrides.ShortcutPrefix != nil {
		merged.ShortcutPrefix = overrides.ShortcutPrefix
	}
	if overrides.FullPath != nil {
		merged.FullPath = overrides.FullPath
	}
	if overrides.Error != nil {
		merged.Error = overrides.Error
	}
	if overrides.SelectionCaret != "" {
		merged.SelectionCaret = overrides.SelectionCaret
	}
	if overrides.ScrollUpIndicator != "" {
		merged.ScrollUpIndicator = overrides.ScrollUpIndicator
	}
	if overrides.ScrollDownIndicator != "" {
		merged.ScrollDownIndicator = overrides.ScrollDownIndicator
	}
	if overrides.FilterCursor != "" {
		merged.FilterCursor = overrides.FilterCursor
	}
	if overrides.CheckboxChecked != "" {
		merged.CheckboxChecked = overrides.CheckboxChecked
	}
	if overrides.CheckboxUnchecked != "" {
		merged.CheckboxUnchecked = overrides.CheckboxUnchecked
	}
	if overrides.NoBorder {
		merged.NoBorder = true
	}
	return &merged
}

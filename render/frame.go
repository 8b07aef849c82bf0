// Package render holds the layout tree the chooser engine produces and
// the Renderer contract that paints it. A Frame is a flat list of
// styled rows, optionally wrapped in a bordered panel with a title and
// composed with header blocks; renderers repaint the whole frame in
// place after every state change rather than diffing.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Side positions an optional header block next to the frame body.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Line is one row of frame content. Raw marks text that already
// carries ANSI escapes; raw rows skip style wrapping and use
// ANSI-aware truncation. Center pads the text on both sides instead of
// left-aligning it.
type Line struct {
	Text   string
	Style  *lipgloss.Style
	Raw    bool
	Center bool
}

// Overlay replaces the frame body with a centered message panel of the
// same outer geometry. Used for transient validation errors.
type Overlay struct {
	Message string
	Title   string
	Style   *lipgloss.Style
}

// Frame is the full layout description for one repaint.
type Frame struct {
	Lines []Line

	Border      bool
	Title       string
	TitleStyle  *lipgloss.Style
	BorderStyle *lipgloss.Style

	// Width fixes the content width in columns; 0 auto-fits to the
	// widest line. Expand stretches the content to MaxWidth instead.
	Width    int
	Expand   bool
	MaxWidth int

	// Banner rows are painted above the panel (outside-top header).
	Banner []Line

	// SideText is painted beside the panel on the given Side.
	SideText  string
	SideStyle *lipgloss.Style
	HeaderOn  Side

	Overlay *Overlay
}

// Renderer is a live-updating paint surface.
type Renderer interface {
	// Start begins a live session with the first frame.
	Start(f Frame) error
	// Update repaints the surface with a new frame.
	Update(f Frame)
	// Stop ends the session, erasing the frame when the surface is
	// transient.
	Stop()
	// Size reports the paintable area in columns and rows.
	Size() (width, height int)
}

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	edgeH    = "─"
	edgeV    = "│"
)

// Render flattens a frame into terminal output, one row per line. The
// result is what every Renderer implementation paints.
func Render(f Frame) string {
	if f.Overlay != nil {
		return renderOverlay(f)
	}

	width := contentWidth(f)
	rows := make([]string, 0, len(f.Lines)+4)
	for _, b := range f.Banner {
		rows = append(rows, renderLine(b, width))
	}

	body := make([]string, 0, len(f.Lines)+2)
	if f.Border {
		body = append(body, topBorder(f, width))
	}
	for _, line := range f.Lines {
		row := renderLine(line, width)
		if f.Border {
			row = styleText(edgeV, f.BorderStyle) + row + styleText(edgeV, f.BorderStyle)
		}
		body = append(body, row)
	}
	if f.Border {
		body = append(body, styleText(cornerBL+strings.Repeat(edgeH, width)+cornerBR, f.BorderStyle))
	}

	panel := strings.Join(body, "\n")
	switch f.HeaderOn {
	case SideLeft:
		panel = lipgloss.JoinHorizontal(lipgloss.Top, styleText(f.SideText+" ", f.SideStyle), panel)
	case SideRight:
		panel = lipgloss.JoinHorizontal(lipgloss.Top, panel, styleText(" "+f.SideText, f.SideStyle))
	}

	rows = append(rows, panel)
	return strings.Join(rows, "\n")
}

// Height reports how many terminal rows a frame paints.
func Height(f Frame) int {
	return strings.Count(Render(f), "\n") + 1
}

// contentWidth resolves the frame's width mode to a concrete column
// count for the rows inside the border.
func contentWidth(f Frame) int {
	if f.Expand {
		w := f.MaxWidth
		if f.Border {
			w -= 2
		}
		if w < 1 {
			w = 1
		}
		return w
	}
	if f.Width > 0 {
		return f.Width
	}
	w := 0
	for _, line := range f.Lines {
		if lw := lipgloss.Width(line.Text); lw > w {
			w = lw
		}
	}
	// The embedded title needs room inside the top border.
	if f.Border && f.Title != "" {
		if tw := lipgloss.Width(f.Title) + 4; tw > w {
			w = tw
		}
	}
	if w < 1 {
		w = 1
	}
	return w
}

// topBorder draws ╭─ Title ─────╮ with the title embedded when set.
func topBorder(f Frame, width int) string {
	if f.Title == "" {
		return styleText(cornerTL+strings.Repeat(edgeH, width)+cornerTR, f.BorderStyle)
	}
	titleSeg := " " + f.Title + " "
	dashes := width - 2 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = " … "
		dashes = width - 2 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	return styleText(cornerTL+edgeH, f.BorderStyle) +
		styleText(titleSeg, f.TitleStyle) +
		styleText(strings.Repeat(edgeH, dashes)+edgeH+cornerTR, f.BorderStyle)
}

// renderOverlay paints a message panel with the same outer geometry as
// the frame it replaces.
func renderOverlay(f Frame) string {
	width := contentWidth(f)
	height := len(f.Lines)
	ov := *f.Overlay

	message := ov.Message
	if lipgloss.Width(message) > width {
		message = truncate.StringWithTail(message, uint(width-1), "…")
	}
	msgRow := (height - 1) / 2
	if msgRow < 0 {
		msgRow = 0
	}

	base := Frame{
		Border:      f.Border,
		Title:       ov.Title,
		TitleStyle:  f.TitleStyle,
		BorderStyle: f.BorderStyle,
		Width:       width,
	}
	lines := make([]Line, 0, height)
	for i := 0; i < height; i++ {
		if i == msgRow {
			pad := (width - lipgloss.Width(message)) / 2
			if pad < 0 {
				pad = 0
			}
			lines = append(lines, Line{Text: strings.Repeat(" ", pad) + message, Style: ov.Style})
			continue
		}
		lines = append(lines, Line{Style: ov.Style})
	}
	base.Lines = lines
	return Render(base)
}

// renderLine truncates, pads, and styles a single row to an exact
// column width.
func renderLine(line Line, width int) string {
	text := line.Text
	if line.Raw {
		if w := lipgloss.Width(text); w > width {
			text = truncate.StringWithTail(text, uint(width-1), "…")
		}
		if w := lipgloss.Width(text); w < width {
			text += strings.Repeat(" ", width-w)
		}
		return text
	}
	text = truncateText(text, width)
	if w := lipgloss.Width(text); w < width {
		if line.Center {
			left := (width - w) / 2
			text = strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
		} else {
			text += strings.Repeat(" ", width-w)
		}
	}
	if line.Style != nil {
		return line.Style.Render(text)
	}
	return text
}

func styleText(text string, style *lipgloss.Style) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

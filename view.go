package termpick

import (
	"fmt"

	"termpick/render"
)

// buildFrame lays out the current state as a render.Frame: optional
// header, filter row, the windowed choice rows with scroll indicators,
// padding, and footer.
func (c *Chooser) buildFrame() render.Frame {
	f := render.Frame{
		Border:      !c.styles.NoBorder,
		BorderStyle: c.styles.Border,
		TitleStyle:  c.styles.Title,
	}

	if c.ExpandWidth {
		f.Expand = true
		f.MaxWidth = 80
		if c.renderer != nil {
			f.MaxWidth, _ = c.renderer.Size()
		}
	} else {
		f.Width = c.Width
	}

	var lines []render.Line

	if f.Border {
		f.Title = c.Title
	} else if c.Title != "" {
		lines = append(lines, render.Line{Text: c.Title, Style: c.styles.Title, Center: true})
	}

	if c.Header != "" {
		switch c.HeaderLocation {
		case HeaderOutsideTop:
			f.Banner = []render.Line{{Text: c.Header, Style: c.styles.Header}}
		case HeaderLeft:
			f.SideText = c.Header
			f.SideStyle = c.styles.Header
			f.HeaderOn = render.SideLeft
		case HeaderRight:
			f.SideText = c.Header
			f.SideStyle = c.styles.Header
			f.HeaderOn = render.SideRight
		default:
			lines = append(lines, render.Line{Text: c.Header, Style: c.styles.Header})
		}
	}

	display := c.display()
	total := len(display)

	if c.filtering {
		text := c.styles.Filter.Render(c.messages.FilterLabel+c.filterText) +
			c.styles.FilterCursor +
			fmt.Sprintf("  (%d/%d)", total, len(c.choices))
		lines = append(lines, render.Line{Text: text, Raw: true})
	}

	maxItems := c.visibleCount(total, len(lines))
	win := computeWindow(total, maxItems, c.highlightedFilteredIndex)

	if win.up {
		lines = append(lines, render.Line{Text: "  " + c.styles.ScrollUpIndicator, Style: c.styles.ScrollIndicator})
	}
	for i := win.start; i < win.end; i++ {
		lines = append(lines, c.ext.RenderRow(c, display[i]))
	}
	if win.down {
		lines = append(lines, render.Line{Text: "  " + c.styles.ScrollDownIndicator, Style: c.styles.ScrollIndicator})
	}

	footer := c.footerText()

	// A fixed Height pads the body so the frame never shrinks as the
	// list does.
	if c.Height > 0 {
		target := c.Height
		if f.Border {
			target -= 2
		}
		if footer != "" {
			target--
		}
		for len(lines) < target {
			lines = append(lines, render.Line{})
		}
	}

	if footer != "" {
		lines = append(lines, render.Line{Text: footer, Style: c.styles.Footer, Center: true})
	}

	if c.errMsg != "" {
		f.Overlay = &render.Overlay{
			Message: c.errMsg,
			Title:   c.messages.ValidationErrorTitle,
			Style:   c.styles.Error,
		}
	}

	f.Lines = lines
	return f
}

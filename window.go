package termpick

// Windowing keeps the highlighted row visible inside a fixed number of
// display rows, reserving rows for scroll indicators and keeping the
// cursor a few rows clear of the top edge while scrolling.

const (
	// scrollTopOffset is how many rows of context stay above the
	// cursor once the list scrolls.
	scrollTopOffset = 3
	// minVisibleWhenScrolling floors the window so a cramped frame
	// still shows a usable slice of a long list.
	minVisibleWhenScrolling = scrollTopOffset + 2
)

// window describes one rendered slice of the choice list.
type window struct {
	start, end int
	up, down   bool
}

// computeWindow picks the [start,end) slice of a total-row list shown
// in maxItems display rows with the cursor at the given index. Rows
// consumed by scroll indicators come out of maxItems.
func computeWindow(total, maxItems, cursor int) window {
	if total <= maxItems {
		return window{start: 0, end: total}
	}

	off := scrollTopOffset
	if half := maxItems / 2; off > half {
		off = half
	}
	start := cursor - off
	if start < 0 {
		start = 0
	}

	up := start > 0
	down := start+maxItems < total
	arrows := 0
	if up {
		arrows++
		start++
	}
	if down {
		arrows++
	}

	choiceRows := maxItems - arrows
	if choiceRows < 1 {
		choiceRows = 1
	}
	if max := total - choiceRows; start > max {
		start = max
	}
	if start < 0 {
		start = 0
	}
	end := start + choiceRows
	if end > total {
		end = total
	}

	return window{start: start, end: end, up: start > 0, down: end < total}
}

// visibleCount resolves how many display rows the choice list gets,
// after the frame chrome already emitted (header and filter rows, the
// border, the footer) is subtracted from the available height.
func (c *Chooser) visibleCount(total, rowsSoFar int) int {
	avail := c.Height
	if avail == 0 {
		avail = c.MaxHeight
	}
	if avail == 0 {
		if c.renderer != nil {
			_, avail = c.renderer.Size()
		}
		if avail == 0 {
			avail = 24
		}
	}

	if !c.styles.NoBorder {
		avail -= 2
	}
	avail -= rowsSoFar
	if c.footerText() != "" {
		avail--
	}

	if total > avail && avail < minVisibleWhenScrolling {
		avail = minVisibleWhenScrolling
	}
	if avail < 1 {
		avail = 1
	}
	return avail
}

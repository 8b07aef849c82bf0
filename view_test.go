package termpick

import (
	"strings"
	"testing"

	"termpick/render"
)

func manyChoices(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strings.Repeat("c", 1+i%5)
	}
	return out
}

func TestFrameHeaderInsideTop(t *testing.T) {
	cfg := testConfig("a", "b")
	cfg.Header = "Pick one"
	c := New(cfg)
	f := c.buildFrame()
	if len(f.Lines) == 0 || f.Lines[0].Text != "Pick one" {
		t.Fatalf("first line = %+v", f.Lines)
	}
	if f.Banner != nil || f.HeaderOn != render.SideNone {
		t.Fatalf("header leaked outside the panel: %+v", f)
	}
}

func TestFrameHeaderOutsideTop(t *testing.T) {
	cfg := testConfig("a", "b")
	cfg.Header = "Pick one"
	cfg.HeaderLocation = HeaderOutsideTop
	f := New(cfg).buildFrame()
	if len(f.Banner) != 1 || f.Banner[0].Text != "Pick one" {
		t.Fatalf("banner = %+v", f.Banner)
	}
}

func TestFrameHeaderBeside(t *testing.T) {
	for loc, side := range map[HeaderLocation]render.Side{
		HeaderLeft:  render.SideLeft,
		HeaderRight: render.SideRight,
	} {
		cfg := testConfig("a")
		cfg.Header = "ctx"
		cfg.HeaderLocation = loc
		f := New(cfg).buildFrame()
		if f.SideText != "ctx" || f.HeaderOn != side {
			t.Fatalf("loc %d: side header = %q on %d", loc, f.SideText, f.HeaderOn)
		}
	}
}

func TestFrameTitleOnBorder(t *testing.T) {
	cfg := testConfig("a")
	cfg.Title = "Menu"
	f := New(cfg).buildFrame()
	if !f.Border || f.Title != "Menu" {
		t.Fatalf("frame = %+v", f)
	}
}

func TestFrameTitleRowWithoutBorder(t *testing.T) {
	cfg := testConfig("a")
	cfg.Title = "Menu"
	cfg.Styles = &Styles{NoBorder: true}
	f := New(cfg).buildFrame()
	if f.Border {
		t.Fatalf("border still on")
	}
	if len(f.Lines) == 0 || f.Lines[0].Text != "Menu" || !f.Lines[0].Center {
		t.Fatalf("title row = %+v", f.Lines[0])
	}
}

func TestFrameScrollIndicators(t *testing.T) {
	cfg := testConfig(manyChoices(40)...)
	cfg.Height = 12
	c := New(cfg)
	f := c.buildFrame()

	styles := DefaultStyles()
	joined := ""
	for _, l := range f.Lines {
		joined += l.Text + "\n"
	}
	if strings.Contains(joined, styles.ScrollUpIndicator) {
		t.Fatalf("top of the list should not show an up indicator:\n%s", joined)
	}
	if !strings.Contains(joined, styles.ScrollDownIndicator) {
		t.Fatalf("long list missing a down indicator:\n%s", joined)
	}

	c.moveTo(20)
	c.syncHighlight()
	f = c.buildFrame()
	joined = ""
	for _, l := range f.Lines {
		joined += l.Text + "\n"
	}
	if !strings.Contains(joined, styles.ScrollUpIndicator) || !strings.Contains(joined, styles.ScrollDownIndicator) {
		t.Fatalf("mid-list missing indicators:\n%s", joined)
	}
}

func TestFrameFixedHeightPads(t *testing.T) {
	cfg := testConfig("a", "b")
	cfg.Height = 10
	f := New(cfg).buildFrame()
	// 10 rows minus the border leaves 8 body rows, footer included.
	if len(f.Lines) != 8 {
		t.Fatalf("frame has %d body lines, want 8", len(f.Lines))
	}
}

func TestFrameFooterDefaultsAndOverride(t *testing.T) {
	c := New(testConfig("a"))
	f := c.buildFrame()
	last := f.Lines[len(f.Lines)-1]
	msgs := DefaultMessages()
	if !containsAll(last.Text, msgs.NavInstructions, msgs.FooterSeparator, msgs.ConfirmInstructions) {
		t.Fatalf("footer = %q", last.Text)
	}

	cfg := testConfig("a")
	cfg.FooterParts = []string{"q Quit"}
	f = New(cfg).buildFrame()
	last = f.Lines[len(f.Lines)-1]
	if last.Text != "q Quit" {
		t.Fatalf("footer = %q", last.Text)
	}

	// An explicitly empty slice suppresses the footer.
	cfg = testConfig("a")
	cfg.FooterParts = []string{}
	f = New(cfg).buildFrame()
	for _, l := range f.Lines {
		if strings.Contains(l.Text, msgs.NavInstructions) {
			t.Fatalf("footer not suppressed: %q", l.Text)
		}
	}
}

func TestFrameExpandWidthUsesRenderer(t *testing.T) {
	cfg := testConfig("a")
	cfg.ExpandWidth = true
	cfg.Renderer = render.NewCapture(64, 24)
	f := New(cfg).buildFrame()
	if !f.Expand || f.MaxWidth != 64 {
		t.Fatalf("frame width mode = expand=%v max=%d", f.Expand, f.MaxWidth)
	}
}

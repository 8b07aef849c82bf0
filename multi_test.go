package termpick

import (
	"fmt"
	"testing"

	"termpick/key"
	"termpick/render"
)

func multiConfig(choices ...string) MultiConfig {
	return MultiConfig{Config: testConfig(choices...)}
}

func TestMultiTogglesAndConfirms(t *testing.T) {
	cfg := multiConfig("a", "b", "c")
	cfg.Reader = key.NewScript(key.Space, key.Down, key.Down, key.Space, key.Enter)
	res := NewMulti(cfg).Run()
	if len(res.Values) != 2 || res.Values[0] != "a" || res.Values[1] != "c" {
		t.Fatalf("Run = %+v, want [a c]", res)
	}
	if res.Indices[0] != 0 || res.Indices[1] != 2 {
		t.Fatalf("indices = %v, want [0 2]", res.Indices)
	}
}

func TestMultiToggleOffDeselects(t *testing.T) {
	cfg := multiConfig("a", "b")
	cfg.Reader = key.NewScript(key.Space, key.Space, key.Enter)
	if res := NewMulti(cfg).Run(); !res.None() {
		t.Fatalf("Run = %+v, want none", res)
	}
}

func TestMultiResultsFollowMasterOrder(t *testing.T) {
	cfg := multiConfig("a", "b", "c")
	// Select c first, then a.
	cfg.Reader = key.NewScript(key.End, key.Space, key.Home, key.Space, key.Enter)
	res := NewMulti(cfg).Run()
	if len(res.Values) != 2 || res.Values[0] != "a" || res.Values[1] != "c" {
		t.Fatalf("Run = %+v, want master order [a c]", res)
	}
}

func TestMultiCancelDiscardsSelection(t *testing.T) {
	cfg := multiConfig("a", "b")
	cfg.Reader = key.NewScript(key.Space, key.Esc)
	if res := NewMulti(cfg).Run(); !res.None() {
		t.Fatalf("Run = %+v, want none", res)
	}
}

func TestMultiMinSelectedBlocksConfirm(t *testing.T) {
	cap := render.NewCapture(80, 24)
	cfg := multiConfig("a", "b", "c")
	cfg.Renderer = cap
	cfg.MinSelected = 2
	// The blocked confirm shows an error; the next key dismisses it.
	cfg.Reader = key.NewScript(
		key.Enter,
		key.Down,
		key.Space, key.Down, key.Space, key.Enter,
	)
	res := NewMulti(cfg).Run()
	if len(res.Values) != 2 {
		t.Fatalf("Run = %+v, want 2 selections", res)
	}

	sawOverlay := false
	for _, f := range cap.Frames {
		if f.Overlay != nil {
			sawOverlay = true
			want := fmt.Sprintf(DefaultMessages().MinSelectedError, 2)
			if f.Overlay.Message != want {
				t.Fatalf("overlay message = %q, want %q", f.Overlay.Message, want)
			}
		}
	}
	if !sawOverlay {
		t.Fatalf("blocked confirm never showed an error overlay")
	}
}

func TestMultiMaxSelectedBlocksConfirm(t *testing.T) {
	cfg := multiConfig("a", "b", "c")
	cfg.MaxSelected = 1
	cfg.Reader = key.NewScript(key.Space, key.Down, key.Space, key.Enter)
	if res := NewMulti(cfg).Run(); !res.None() {
		t.Fatalf("Run = %+v, want none (script exhausted while blocked)", res)
	}
}

func TestMultiRangeMessage(t *testing.T) {
	m := NewMulti(MultiConfig{
		Config:      testConfig("a", "b", "c"),
		MinSelected: 1,
		MaxSelected: 2,
	})
	got := m.ext.ValidateSelection(m.Chooser)
	want := fmt.Sprintf(DefaultMessages().RangeSelectedError, 1, 2)
	if got != want {
		t.Fatalf("validation = %q, want %q", got, want)
	}
}

func TestMultiInitialSelections(t *testing.T) {
	cfg := multiConfig("a", "b", "c")
	cfg.InitialSelected = []int{0}
	cfg.InitialSelectedValues = []string{"c"}
	cfg.Reader = key.NewScript(key.Enter)
	res := NewMulti(cfg).Run()
	if len(res.Values) != 2 || res.Values[0] != "a" || res.Values[1] != "c" {
		t.Fatalf("Run = %+v, want [a c]", res)
	}
}

func TestMultiCheckboxRendering(t *testing.T) {
	cap := render.NewCapture(80, 24)
	cfg := multiConfig("a", "b")
	cfg.Renderer = cap
	cfg.Reader = key.NewScript(key.Space, key.Esc)
	NewMulti(cfg).Run()
	frame := cap.Last()
	if len(frame.Lines) < 2 {
		t.Fatalf("frame has %d lines", len(frame.Lines))
	}
	styles := DefaultStyles()
	if !containsAll(frame.Lines[0].Text, styles.CheckboxChecked, "a") {
		t.Fatalf("selected row = %q", frame.Lines[0].Text)
	}
	if !containsAll(frame.Lines[1].Text, styles.CheckboxUnchecked, "b") {
		t.Fatalf("unselected row = %q", frame.Lines[1].Text)
	}
}

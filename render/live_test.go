package render

import (
	"bytes"
	"strings"
	"testing"
)

func liveFrame(texts ...string) Frame {
	f := Frame{Width: 8}
	for _, t := range texts {
		f.Lines = append(f.Lines, Line{Text: t})
	}
	return f
}

func TestLivePaintsWithCRLF(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf, true)
	if err := l.Start(liveFrame("one", "two")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, hideCursor) {
		t.Fatalf("output does not hide the cursor: %q", out)
	}
	if !strings.Contains(out, "one") || !strings.Contains(out, "\r\n") {
		t.Fatalf("output = %q", out)
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Fatalf("bare newline leaked into raw-mode output: %q", out)
	}
}

func TestLiveUpdateRewinds(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf, true)
	l.Start(liveFrame("one", "two", "three"))
	buf.Reset()
	l.Update(liveFrame("four"))
	out := buf.String()
	// Three painted rows rewind by two.
	if !strings.Contains(out, "\x1b[2A") {
		t.Fatalf("update did not rewind: %q", out)
	}
	if !strings.Contains(out, eraseDown) || !strings.Contains(out, "four") {
		t.Fatalf("update output = %q", out)
	}
}

func TestLiveStopTransientErases(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf, true)
	l.Start(liveFrame("one", "two"))
	buf.Reset()
	l.Stop()
	out := buf.String()
	if !strings.Contains(out, eraseDown) {
		t.Fatalf("transient stop did not erase: %q", out)
	}
	if !strings.Contains(out, showCursor) {
		t.Fatalf("stop did not restore the cursor: %q", out)
	}
}

func TestLiveStopPersistentKeepsFrame(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf, false)
	l.Start(liveFrame("one"))
	buf.Reset()
	l.Stop()
	out := buf.String()
	if strings.Contains(out, eraseDown) {
		t.Fatalf("persistent stop erased the frame: %q", out)
	}
	if !strings.Contains(out, showCursor) {
		t.Fatalf("stop did not restore the cursor: %q", out)
	}
}

func TestLiveUpdateBeforeStartIsNoop(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf, true)
	l.Update(liveFrame("one"))
	if buf.Len() != 0 {
		t.Fatalf("update before start wrote %q", buf.String())
	}
}

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	eraseDown  = "\x1b[0J"
)

// Live paints frames in place on a terminal. Each Update moves the
// cursor back to the top of the previous frame and repaints the whole
// thing; Stop erases the frame when the surface is transient.
//
// Output is written with CRLF line endings so painting works from raw
// mode, where the reader holds the terminal.
type Live struct {
	out       io.Writer
	transient bool
	rows      int
	started   bool
}

// NewLive builds a live surface over the given writer. A transient
// surface erases itself on Stop.
func NewLive(out io.Writer, transient bool) *Live {
	if out == nil {
		out = os.Stdout
	}
	return &Live{out: out, transient: transient}
}

func (l *Live) Start(f Frame) error {
	fmt.Fprint(l.out, hideCursor)
	l.started = true
	l.paint(f)
	return nil
}

func (l *Live) Update(f Frame) {
	if !l.started {
		return
	}
	l.rewind()
	l.paint(f)
}

func (l *Live) Stop() {
	if !l.started {
		return
	}
	if l.transient {
		l.rewind()
	} else {
		fmt.Fprint(l.out, "\r\n")
	}
	fmt.Fprint(l.out, showCursor)
	l.started = false
	l.rows = 0
}

// Size probes the terminal backing the writer; non-terminal writers
// get a conventional 80x24.
func (l *Live) Size() (int, int) {
	if f, ok := l.out.(*os.File); ok {
		if fd := int(f.Fd()); term.IsTerminal(fd) {
			if w, h, err := term.GetSize(fd); err == nil {
				return w, h
			}
		}
	}
	return 80, 24
}

func (l *Live) paint(f Frame) {
	out := Render(f)
	fmt.Fprint(l.out, "\r"+strings.ReplaceAll(out, "\n", "\r\n"))
	l.rows = strings.Count(out, "\n") + 1
}

// rewind moves the cursor to the first painted row and clears below.
func (l *Live) rewind() {
	if l.rows > 1 {
		fmt.Fprintf(l.out, "\x1b[%dA", l.rows-1)
	}
	fmt.Fprint(l.out, "\r"+eraseDown)
}

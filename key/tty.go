package key

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TTY reads logical keys from a terminal. Acquire puts the terminal
// into raw mode; Release restores the previous state.
type TTY struct {
	in       *os.File
	oldState *term.State
}

// NewTTY builds a reader over standard input.
func NewTTY() *TTY {
	return &TTY{in: os.Stdin}
}

// NewTTYFile builds a reader over the given terminal file.
func NewTTYFile(f *os.File) *TTY {
	return &TTY{in: f}
}

func (t *TTY) Acquire() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("key: fd %d is not a terminal", fd)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("key: entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

func (t *TTY) Release() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// ReadKey reads one key press and decodes it into a logical token.
// Unrecognized sequences yield Empty so the caller simply reads again.
func (t *TTY) ReadKey() (string, error) {
	buf := make([]byte, 8)
	n, err := t.in.Read(buf)
	if err != nil {
		return Empty, err
	}
	return Decode(buf[:n]), nil
}

// Decode maps one raw input chunk to a logical token. The tables cover
// the common CSI and SS3 encodings; anything else decodes to Empty.
func Decode(b []byte) string {
	if len(b) == 0 {
		return Empty
	}
	if len(b) == 1 {
		switch b[0] {
		case '\r', '\n':
			return Enter
		case 0x1b:
			return Esc
		case 0x03:
			return CtrlC
		case 0x7f, 0x08:
			return Backspace
		case ' ':
			return Space
		}
		if b[0] >= 0x20 && b[0] < 0x7f {
			return string(rune(b[0]))
		}
		return Empty
	}
	// ESC [ ... (CSI) and ESC O ... (SS3) sequences.
	if b[0] == 0x1b && (b[1] == '[' || b[1] == 'O') && len(b) >= 3 {
		switch string(b[2:]) {
		case "A":
			return Up
		case "B":
			return Down
		case "H", "1~", "7~":
			return Home
		case "F", "4~", "8~":
			return End
		case "5~":
			return PageUp
		case "6~":
			return PageDown
		case "3~":
			return Empty // forward delete, unbound
		}
		return Empty
	}
	// Multi-byte rune (UTF-8 input arrives as one chunk in raw mode).
	if b[0] >= 0xc0 {
		r := []rune(string(b))
		if len(r) == 1 {
			return string(r[0])
		}
	}
	return Empty
}

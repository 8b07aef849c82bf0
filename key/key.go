// Package key defines the logical key vocabulary consumed by the
// chooser engine and the Reader contract that supplies it.
//
// Readers translate whatever the host terminal delivers into a small
// set of named tokens; the engine never sees raw bytes or escape
// sequences. A Reader is a scoped resource: Acquire takes exclusive
// control of the input stream (raw mode on a real terminal) and
// Release restores it. Callers must pair the two on every exit path.
package key

import "errors"

// Logical key tokens. Printable characters are passed through as
// single-rune strings; Empty means "no recognized input, read again".
const (
	Up        = "UP_ARROW"
	Down      = "DOWN_ARROW"
	Enter     = "ENTER"
	Esc       = "ESC"
	CtrlC     = "CTRL_C"
	Home      = "HOME"
	End       = "END"
	PageUp    = "PAGE_UP"
	PageDown  = "PAGE_DOWN"
	Backspace = "BACKSPACE"
	Space     = "SPACE"
	Empty     = ""
)

// ErrExhausted is returned by a Script reader once every token has
// been consumed.
var ErrExhausted = errors.New("key: script exhausted")

// Reader yields one logical key token per call.
type Reader interface {
	// Acquire takes control of the input source. On a terminal this
	// enters raw mode.
	Acquire() error
	// Release undoes Acquire. It is safe to call after a failed
	// Acquire and must be called on every exit path.
	Release() error
	// ReadKey blocks until one logical token is available. An empty
	// token is not an error; it means the input was unrecognized and
	// the caller should read again.
	ReadKey() (string, error)
}

// Script replays a fixed token sequence. It is the reader used by
// tests and by callers that drive a control programmatically.
type Script struct {
	tokens []string
	pos    int
}

// NewScript builds a Script reader over the given tokens.
func NewScript(tokens ...string) *Script {
	return &Script{tokens: tokens}
}

func (s *Script) Acquire() error { return nil }

func (s *Script) Release() error { return nil }

// ReadKey returns the next token, or ErrExhausted when the script has
// run out.
func (s *Script) ReadKey() (string, error) {
	if s.pos >= len(s.tokens) {
		return Empty, ErrExhausted
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// Remaining reports how many tokens have not been consumed yet.
func (s *Script) Remaining() int {
	return len(s.tokens) - s.pos
}

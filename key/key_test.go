package key

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"enter-cr", []byte{'\r'}, Enter},
		{"enter-lf", []byte{'\n'}, Enter},
		{"esc", []byte{0x1b}, Esc},
		{"ctrl-c", []byte{0x03}, CtrlC},
		{"backspace-del", []byte{0x7f}, Backspace},
		{"backspace-bs", []byte{0x08}, Backspace},
		{"space", []byte{' '}, Space},
		{"printable", []byte{'q'}, "q"},
		{"digit", []byte{'7'}, "7"},
		{"up-csi", []byte("\x1b[A"), Up},
		{"down-csi", []byte("\x1b[B"), Down},
		{"up-ss3", []byte("\x1bOA"), Up},
		{"home", []byte("\x1b[H"), Home},
		{"home-tilde", []byte("\x1b[1~"), Home},
		{"end", []byte("\x1b[F"), End},
		{"end-tilde", []byte("\x1b[4~"), End},
		{"page-up", []byte("\x1b[5~"), PageUp},
		{"page-down", []byte("\x1b[6~"), PageDown},
		{"delete-unbound", []byte("\x1b[3~"), Empty},
		{"unknown-csi", []byte("\x1b[Z"), Empty},
		{"utf8-rune", []byte("é"), "é"},
		{"control-byte", []byte{0x01}, Empty},
		{"empty", nil, Empty},
	}
	for _, tc := range cases {
		if got := Decode(tc.in); got != tc.want {
			t.Fatalf("%s: Decode(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestScriptReplaysTokens(t *testing.T) {
	s := NewScript(Down, Down, Enter)
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	for _, want := range []string{Down, Down, Enter} {
		got, err := s.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey: %v", err)
		}
		if got != want {
			t.Fatalf("ReadKey = %q, want %q", got, want)
		}
	}
	if s.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", s.Remaining())
	}
	if _, err := s.ReadKey(); err != ErrExhausted {
		t.Fatalf("ReadKey after end: err = %v, want ErrExhausted", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

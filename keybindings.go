package termpick

import "termpick/key"

// Keybindings maps a logical action name to the key tokens that
// trigger it.
type Keybindings map[string][]string

// Actions understood by the engine's dispatch loop.
const (
	ActionUp        = "up"
	ActionDown      = "down"
	ActionConfirm   = "confirm"
	ActionCancel    = "cancel"
	ActionHome      = "home"
	ActionEnd       = "end"
	ActionPageUp    = "page_up"
	ActionPageDown  = "page_down"
	ActionBackspace = "backspace"
)

// DefaultKeybindings returns the binding table shared by every
// control.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		ActionUp:        {key.Up},
		ActionDown:      {key.Down},
		ActionConfirm:   {key.Enter},
		ActionCancel:    {key.Esc, key.CtrlC},
		ActionHome:      {key.Home},
		ActionEnd:       {key.End},
		ActionPageUp:    {key.PageUp},
		ActionPageDown:  {key.PageDown},
		ActionBackspace: {key.Backspace},
	}
}

// merge overlays user bindings on the defaults. An override replaces
// the whole token list for its action, it is not merged key by key.
func (kb Keybindings) merge(overrides Keybindings) Keybindings {
	merged := make(Keybindings, len(kb))
	for action, tokens := range kb {
		merged[action] = append([]string(nil), tokens...)
	}
	for action, tokens := range overrides {
		merged[action] = append([]string(nil), tokens...)
	}
	return merged
}

func (kb Keybindings) matches(action, token string) bool {
	for _, t := range kb[action] {
		if t == token {
			return true
		}
	}
	return false
}

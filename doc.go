// Package termpick is a family of interactive terminal choosers: a
// scrollable single-select list plus filtering, multi-select,
// keyboard-shortcut, and file-browsing variants.
//
// Every control is driven synchronously: Run blocks until the user
// confirms, cancels, or a ShouldExit hook fires, and returns the
// selection as a Result. Input arrives through a key.Reader and output
// goes through a render.Renderer, so controls can be scripted and
// tested without a terminal.
package termpick

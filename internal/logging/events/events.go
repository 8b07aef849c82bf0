// Package events groups the trace points the engine emits, so call
// sites stay one-liners and event names live in one place.
package events

import "termpick/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type FileTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	File   = FileTracer{}
)

func (UITracer) Cursor(index int) {
	logging.Trace("chooser.cursor", "index", index)
}

func (UITracer) Confirm(value string, index int) {
	logging.Trace("chooser.confirm", "value", value, "index", index)
}

func (UITracer) Cancel() {
	logging.Trace("chooser.cancel")
}

func (UITracer) ValidationFailed(message string) {
	logging.Trace("chooser.validation-failed", "message", message)
}

func (UITracer) Toggle(index int, selected bool) {
	logging.Trace("chooser.toggle", "index", index, "selected", selected)
}

func (FilterTracer) Append(filter string, shown, total int) {
	logging.Trace("filter.append", "filter", filter, "shown", shown, "total", total)
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", "filter", filter)
}

func (FileTracer) Navigate(path string) {
	logging.Trace("file.navigate", "path", path)
}

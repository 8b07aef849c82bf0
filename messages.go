package termpick

// Messages holds every user-visible string a control emits. Empty
// fields fall back to the defaults, so callers override only the
// strings they need to localize or rephrase.
type Messages struct {
	NavInstructions     string
	ConfirmInstructions string
	FooterSeparator     string
	FilterLabel         string

	// ShortcutSelectRange takes the low and high key of an
	// auto-assigned digit range; ShortcutSelectKey is used when keys
	// were supplied explicitly.
	ShortcutSelectRange string
	ShortcutSelectKey   string

	// Selection-count validation templates. Min and Max take one count
	// each; Range takes min then max.
	MinSelectedError   string
	MaxSelectedError   string
	RangeSelectedError string

	ValidationErrorTitle string
}

// DefaultMessages returns the stock wording.
func DefaultMessages() *Messages {
	return &Messages{
		NavInstructions:      "↑↓ Navigate",
		ConfirmInstructions:  "Enter Confirm",
		FooterSeparator:      " • ",
		FilterLabel:          "Filter: ",
		ShortcutSelectRange:  "Press %d-%d to Select",
		ShortcutSelectKey:    "Press Highlighted Key to Select",
		MinSelectedError:     "Please select at least %d items",
		MaxSelectedError:     "Please select at most %d items",
		RangeSelectedError:   "Please select between %d and %d items",
		ValidationErrorTitle: "Error",
	}
}

// mergeMessages overlays non-empty override fields on a base.
func mergeMessages(base, overrides *Messages) *Messages {
	if overrides == nil {
		return base
	}
	merged := *base
	if overrides.NavInstructions != "" {
		merged.NavInstructions = overrides.NavInstructions
	}
	if overrides.ConfirmInstructions != "" {
		merged.ConfirmInstructions = overrides.ConfirmInstructions
	}
	if overrides.FooterSeparator != "" {
		merged.FooterSeparator = overrides.FooterSeparator
	}
	if overrides.FilterLabel != "" {
		merged.FilterLabel = overrides.FilterLabel
	}
	if overrides.ShortcutSelectRange != "" {
		merged.ShortcutSelectRange = overrides.ShortcutSelectRange
	}
	if overrides.ShortcutSelectKey != "" {
		merged.ShortcutSelectKey = overrides.ShortcutSelectKey
	}
	if overrides.MinSelectedError != "" {
		merged.MinSelectedError = overrides.MinSelectedError
	}
	if overrides.MaxSelectedError != "" {
		merged.MaxSelectedError = overrides.MaxSelectedError
	}
	if overrides.RangeSelectedError != "" {
		merged.RangeSelectedError = overrides.RangeSelectedError
	}
	if overrides.ValidationErrorTitle != "" {
		merged.ValidationErrorTitle = overrides.ValidationErrorTitle
	}
	return &merged
}

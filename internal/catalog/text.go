package catalog

import "github.com/alexanderramin/intake/internal/domain"

// enText builds english-only question text.
func enText(title, help string) map[string]domain.UIText {
	return map[string]domain.UIText{"en": {Title: title, Help: help}}
}

// biText builds english + hungarian question text. The hungarian entries
// carry no separate help text; Localize falls back per-field consumers
// render the english help alongside.
func biText(enTitle, enHelp, huTitle string) map[string]domain.UIText {
	return map[string]domain.UIText{
		"en": {Title: enTitle, Help: enHelp},
		"hu": {Title: huTitle, Help: enHelp},
	}
}

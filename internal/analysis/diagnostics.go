package analysis

import (
	"fmt"

	"github.com/devopstoday11/tremor-language-server/internal/language"
	"github.com/devopstoday11/tremor-language-server/internal/text"
)

// Diagnostics checks source and maps each finding into caller coordinates.
// Zero findings is a valid, common result.
func (e *Engine) Diagnostics(source string) []DiagnosticRecord {
	rawErrors := e.lang.ParseErrors(source)
	if len(rawErrors) == 0 {
		return nil
	}

	records := make([]DiagnosticRecord, 0, len(rawErrors))
	for _, raw := range rawErrors {
		message := raw.Callout
		if raw.Hint != "" {
			// comma here splits the message into multiple lines
			message = fmt.Sprintf("%s, Note: %s", message, raw.Hint)
		}
		records = append(records, DiagnosticRecord{
			Range: text.Range{
				Start: fromNative(raw.Start),
				End:   fromNative(raw.End),
			},
			Message:  message,
			Severity: raw.Level,
			Source:   Source,
		})
	}

	e.log.Debug("diagnostics computed", "count", len(records))
	return records
}

// fromNative converts a one-based native location to a zero-based position.
func fromNative(loc language.Location) text.Position {
	var pos text.Position
	if loc.Line > 0 {
		pos.Line = loc.Line - 1
	}
	if loc.Column > 0 {
		pos.Character = loc.Column - 1
	}
	return pos
}

package lsp

import (
	"net/url"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/devopstoday11/tremor-language-server/internal/analysis"
	"github.com/devopstoday11/tremor-language-server/internal/language"
	"github.com/devopstoday11/tremor-language-server/internal/text"
)

func publishDiagnostics(context *glsp.Context, uri string, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func fromProtocolPosition(pos protocol.Position) text.Position {
	return text.Position{Line: pos.Line, Character: pos.Character}
}

func toProtocolPosition(pos text.Position) protocol.Position {
	return protocol.Position{Line: pos.Line, Character: pos.Character}
}

func toProtocolRange(r text.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(r.Start),
		End:   toProtocolPosition(r.End),
	}
}

func toProtocolSeverity(level language.Severity) protocol.DiagnosticSeverity {
	switch level {
	case language.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case language.SeverityInfo:
		return protocol.DiagnosticSeverityInformation
	case language.SeverityHint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func toProtocolDiagnostics(records []analysis.DiagnosticRecord) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(records))
	for _, record := range records {
		severity := toProtocolSeverity(record.Severity)
		source := record.Source
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(record.Range),
			Severity: &severity,
			Source:   &source,
			Message:  record.Message,
		})
	}
	return diagnostics
}

func toProtocolCompletionItems(candidates []analysis.CompletionCandidate) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindFunction
	format := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for _, candidate := range candidates {
		item := protocol.CompletionItem{
			Label: candidate.Label,
			Kind:  &kind,
		}
		if candidate.Detail != "" {
			detail := candidate.Detail
			item.Detail = &detail
		}
		if candidate.Documentation != "" {
			item.Documentation = protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: candidate.Documentation,
			}
		}
		if candidate.InsertText != "" {
			insertText := candidate.InsertText
			item.InsertText = &insertText
			item.InsertTextFormat = &format
		}
		items = append(items, item)
	}
	return items
}

// uriToPath strips the file scheme from a document URI. Non-file URIs are
// returned unchanged; the subsequent read will fail and be logged.
func uriToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uri
	}
	return parsed.Path
}

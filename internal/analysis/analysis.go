// Package analysis turns document text into diagnostics, completion
// candidates, and hover content. The pipelines are pure functions over their
// inputs; the only shared state they touch is the document store.
package analysis

import (
	"github.com/tliron/commonlog"

	"github.com/devopstoday11/tremor-language-server/internal/document"
	"github.com/devopstoday11/tremor-language-server/internal/language"
	"github.com/devopstoday11/tremor-language-server/internal/text"
)

// Source tags every diagnostic this server produces.
const Source = "tremor-language-server"

// DiagnosticRecord is one positioned, severity-tagged finding. Positions are
// zero-based in the configured column unit.
type DiagnosticRecord struct {
	Range    text.Range
	Message  string
	Severity language.Severity
	Source   string
}

// CompletionCandidate is one completion suggestion. Detail, Documentation and
// InsertText are empty when no documentation exists for the candidate.
type CompletionCandidate struct {
	Label         string
	Detail        string
	Documentation string // markdown
	InsertText    string // snippet syntax
}

// HoverContent is a rendered markdown documentation block.
type HoverContent struct {
	Value string
}

// Engine binds the pipelines to a document store and a language. All methods
// are safe for concurrent use.
type Engine struct {
	store *document.Store
	lang  language.Language
	unit  text.ColumnUnit
	log   commonlog.Logger
}

// NewEngine creates an engine over store using lang for language semantics.
func NewEngine(lang language.Language, store *document.Store, unit text.ColumnUnit, log commonlog.Logger) *Engine {
	return &Engine{
		store: store,
		lang:  lang,
		unit:  unit,
		log:   log,
	}
}

// OnOpen records the opened document and returns its current diagnostics.
func (e *Engine) OnOpen(uri string, source string) []DiagnosticRecord {
	e.store.Open(uri, source)
	return e.Diagnostics(source)
}

// OnChange replaces the document's text and returns its current diagnostics.
// A change is a whole-text replacement, never a patch.
func (e *Engine) OnChange(uri string, source string) []DiagnosticRecord {
	e.store.Update(uri, source)
	return e.Diagnostics(source)
}

// OnClose applies the store's close policy and returns an empty diagnostics
// list so the caller can clear anything previously shown.
func (e *Engine) OnClose(uri string) []DiagnosticRecord {
	e.store.Close(uri)
	return []DiagnosticRecord{}
}

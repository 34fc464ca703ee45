package analysis_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tliron/commonlog"

	"github.com/devopstoday11/tremor-language-server/internal/analysis"
	"github.com/devopstoday11/tremor-language-server/internal/document"
	"github.com/devopstoday11/tremor-language-server/internal/language"
	"github.com/devopstoday11/tremor-language-server/internal/text"
)

// fakeLanguage injects controlled capability results into the pipelines.
type fakeLanguage struct {
	errors    []language.RawError
	functions map[string][]string
	docs      map[string]language.FunctionDoc
}

func (f *fakeLanguage) ParseErrors(string) []language.RawError {
	return f.errors
}

func (f *fakeLanguage) Functions(namespace string) []string {
	return f.functions[namespace]
}

func (f *fakeLanguage) FunctionDoc(fqn string) (language.FunctionDoc, bool) {
	doc, ok := f.docs[fqn]
	return doc, ok
}

func newEngine(lang language.Language) *analysis.Engine {
	return analysis.NewEngine(
		lang,
		document.NewStore(false),
		text.ColumnUnitUTF16,
		commonlog.GetLogger("test"),
	)
}

func TestDiagnostics(t *testing.T) {
	lang := &fakeLanguage{
		errors: []language.RawError{
			{
				Start:   language.Location{Line: 3, Column: 5},
				End:     language.Location{Line: 3, Column: 9},
				Callout: "something is off",
				Level:   language.SeverityError,
				Hint:    "try turning it off and on again",
			},
			{
				Start:   language.Location{Line: 7, Column: 1},
				End:     language.Location{Line: 7, Column: 2},
				Callout: "minor nit",
				Level:   language.SeverityWarning,
			},
		},
	}
	engine := newEngine(lang)

	records := engine.Diagnostics("whatever")
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.Range.Start != (text.Position{Line: 2, Character: 4}) {
		t.Errorf("Start = %v, want zero-based line 2 character 4", first.Range.Start)
	}
	if !strings.Contains(first.Message, "something is off") {
		t.Errorf("Message = %q lacks the callout", first.Message)
	}
	if !strings.Contains(first.Message, "Note: try turning it off and on again") {
		t.Errorf("Message = %q lacks the hint note", first.Message)
	}
	if first.Severity != language.SeverityError {
		t.Errorf("Severity = %v", first.Severity)
	}
	if first.Source != analysis.Source {
		t.Errorf("Source = %q", first.Source)
	}

	second := records[1]
	if strings.Contains(second.Message, "Note:") {
		t.Errorf("Message = %q has a note without a hint", second.Message)
	}
	if second.Severity != language.SeverityWarning {
		t.Errorf("Severity = %v", second.Severity)
	}
}

func TestDiagnosticsClean(t *testing.T) {
	engine := newEngine(&fakeLanguage{})
	if records := engine.Diagnostics("let x = 1;"); len(records) != 0 {
		t.Errorf("got %v, want none", records)
	}
}

func TestOnOpenAndOnChange(t *testing.T) {
	lang := &fakeLanguage{
		errors: []language.RawError{
			{
				Start:   language.Location{Line: 1, Column: 1},
				End:     language.Location{Line: 1, Column: 2},
				Callout: "broken",
				Level:   language.SeverityError,
			},
		},
		functions: map[string][]string{"math": {"floor"}},
	}
	engine := newEngine(lang)

	if records := engine.OnOpen("file:///a.tremor", "math::"); len(records) != 1 {
		t.Fatalf("OnOpen returned %d records, want 1", len(records))
	}

	// The opened text is now current: queries against it resolve.
	candidates, err := engine.Completions("file:///a.tremor", text.Position{Line: 0, Character: 6})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	// A change replaces the text wholesale.
	if records := engine.OnChange("file:///a.tremor", "plain"); len(records) != 1 {
		t.Fatalf("OnChange returned %d records, want 1", len(records))
	}
	candidates, err = engine.Completions("file:///a.tremor", text.Position{Line: 0, Character: 5})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("completions against replaced text = %v, want none", candidates)
	}
}

func TestOnClose(t *testing.T) {
	engine := newEngine(&fakeLanguage{})
	engine.OnOpen("file:///a.tremor", "text")

	records := engine.OnClose("file:///a.tremor")
	if records == nil || len(records) != 0 {
		t.Errorf("OnClose = %v, want an empty, non-nil list", records)
	}

	// Default policy removes the entry.
	_, err := engine.Completions("file:///a.tremor", text.Position{})
	if !errors.Is(err, document.ErrNotFound) {
		t.Errorf("Completions after close error = %v, want ErrNotFound", err)
	}
}

func TestCompletionsUnknownDocument(t *testing.T) {
	engine := newEngine(&fakeLanguage{})
	_, err := engine.Completions("file:///missing.tremor", text.Position{})
	if !errors.Is(err, document.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCompletionsRequireNamespace(t *testing.T) {
	// Even a language eager to offer members never completes a bare token.
	lang := &fakeLanguage{
		functions: map[string][]string{"": {"sneaky"}, "math": {"floor"}},
	}
	engine := newEngine(lang)
	engine.OnOpen("file:///a.tremor", "floo")

	candidates, err := engine.Completions("file:///a.tremor", text.Position{Line: 0, Character: 4})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("got %v, want none for an unqualified token", candidates)
	}
}

func TestCompletionsEnrichment(t *testing.T) {
	lang := &fakeLanguage{
		functions: map[string][]string{"math": {"floor", "undocumented"}},
		docs: map[string]language.FunctionDoc{
			"math::floor": {
				Signature:   language.FunctionSignature{FullName: "math::floor", Args: []string{"value", "precision"}},
				Description: "Rounds down.",
			},
		},
	}
	engine := newEngine(lang)
	engine.OnOpen("file:///a.tremor", "let x = math::")

	candidates, err := engine.Completions("file:///a.tremor", text.Position{Line: 0, Character: 14})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}

	documented := candidates[0]
	if documented.Label != "floor" {
		t.Errorf("Label = %q, want floor (order follows Functions)", documented.Label)
	}
	if documented.Detail != "math::floor(value, precision)" {
		t.Errorf("Detail = %q", documented.Detail)
	}
	if documented.Documentation != "Rounds down." {
		t.Errorf("Documentation = %q", documented.Documentation)
	}
	if documented.InsertText != "floor(${1:value}, ${2:precision})" {
		t.Errorf("InsertText = %q", documented.InsertText)
	}
	// One tabbable placeholder per argument.
	if got := strings.Count(documented.InsertText, "${"); got != 2 {
		t.Errorf("placeholder count = %d, want 2", got)
	}

	bare := candidates[1]
	if bare.Label != "undocumented" {
		t.Errorf("Label = %q", bare.Label)
	}
	if bare.Detail != "" || bare.Documentation != "" || bare.InsertText != "" {
		t.Errorf("undocumented candidate is enriched: %+v", bare)
	}
}

func TestCompletionsNullaryFunction(t *testing.T) {
	lang := &fakeLanguage{
		functions: map[string][]string{"stats": {"count"}},
		docs: map[string]language.FunctionDoc{
			"stats::count": {
				Signature:   language.FunctionSignature{FullName: "stats::count"},
				Description: "Counts.",
			},
		},
	}
	engine := newEngine(lang)
	engine.OnOpen("file:///q.trickle", "stats::")

	candidates, err := engine.Completions("file:///q.trickle", text.Position{Line: 0, Character: 7})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].InsertText != "count()" {
		t.Errorf("InsertText = %q, want count()", candidates[0].InsertText)
	}
}

func TestHover(t *testing.T) {
	lang := &fakeLanguage{
		docs: map[string]language.FunctionDoc{
			"math::floor": {
				Signature:   language.FunctionSignature{FullName: "math::floor", Args: []string{"value"}},
				Description: "Rounds down.",
			},
			// A same-named unqualified entry must never hover.
			"floor": {
				Signature:   language.FunctionSignature{FullName: "floor"},
				Description: "Should stay invisible.",
			},
		},
	}
	engine := newEngine(lang)

	tests := []struct {
		name    string
		source  string
		pos     text.Position
		want    string // empty means no hover
	}{
		{
			name:   "qualified token hovers",
			source: "math::floor",
			pos:    text.Position{Line: 0, Character: 11},
			want:   "math::floor(value)",
		},
		{
			name:   "bare token never hovers",
			source: "floor",
			pos:    text.Position{Line: 0, Character: 5},
		},
		{
			name:   "qualified but undocumented",
			source: "math::unknown",
			pos:    text.Position{Line: 0, Character: 13},
		},
		{
			name:   "whitespace cursor",
			source: "math::floor ",
			pos:    text.Position{Line: 0, Character: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine.OnOpen("file:///a.tremor", tt.source)
			content, err := engine.Hover("file:///a.tremor", tt.pos)
			if err != nil {
				t.Fatalf("Hover() error = %v", err)
			}
			if tt.want == "" {
				if content != nil {
					t.Errorf("Hover = %q, want none", content.Value)
				}
				return
			}
			if content == nil {
				t.Fatal("Hover returned nothing")
			}
			if !strings.Contains(content.Value, tt.want) {
				t.Errorf("Hover = %q, want it to contain %q", content.Value, tt.want)
			}
			if !strings.Contains(content.Value, "Rounds down.") {
				t.Errorf("Hover = %q lacks the description", content.Value)
			}
		})
	}
}

func TestHoverUnknownDocument(t *testing.T) {
	engine := newEngine(&fakeLanguage{})
	_, err := engine.Hover("file:///missing.tremor", text.Position{})
	if !errors.Is(err, document.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

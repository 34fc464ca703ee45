package language_test

import (
	"strings"
	"testing"

	"github.com/devopstoday11/tremor-language-server/internal/language"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{name: "tremor-script", ok: true},
		{name: "tremor", ok: true},
		{name: "tremor-query", ok: true},
		{name: "trickle", ok: true},
		{name: "cobol", ok: false},
		{name: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := language.Lookup(tt.name)
			if tt.ok && (err != nil || lang == nil) {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("Lookup(%q) should fail", tt.name)
			}
		})
	}
}

func mustLookup(t *testing.T, name string) language.Language {
	t.Helper()
	lang, err := language.Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	return lang
}

func TestFunctions(t *testing.T) {
	script := mustLookup(t, "tremor-script")

	names := script.Functions("math")
	if len(names) == 0 {
		t.Fatal("Functions(math) is empty")
	}
	// Member order follows the embedded documentation.
	if names[0] != "floor" || names[1] != "ceil" {
		t.Errorf("Functions(math) = %v, want floor, ceil, ... in doc order", names)
	}

	if got := script.Functions("no_such_module"); len(got) != 0 {
		t.Errorf("Functions(no_such_module) = %v, want empty", got)
	}
}

func TestAggregateModulesAreQueryOnly(t *testing.T) {
	script := mustLookup(t, "tremor-script")
	query := mustLookup(t, "tremor-query")

	if got := script.Functions("stats"); len(got) != 0 {
		t.Errorf("script Functions(stats) = %v, want empty", got)
	}
	if got := query.Functions("stats"); len(got) == 0 {
		t.Error("query Functions(stats) is empty")
	}
	// The scripting stdlib is shared.
	if got := query.Functions("string"); len(got) == 0 {
		t.Error("query Functions(string) is empty")
	}
}

func TestFunctionDoc(t *testing.T) {
	script := mustLookup(t, "tremor-script")

	doc, ok := script.FunctionDoc("math::floor")
	if !ok {
		t.Fatal("FunctionDoc(math::floor) not found")
	}
	if doc.Signature.FullName != "math::floor" {
		t.Errorf("FullName = %q", doc.Signature.FullName)
	}
	if len(doc.Signature.Args) != 1 || doc.Signature.Args[0] != "value" {
		t.Errorf("Args = %v, want [value]", doc.Signature.Args)
	}
	if doc.Description == "" {
		t.Error("Description is empty")
	}

	if _, ok := script.FunctionDoc("math::no_such_function"); ok {
		t.Error("FunctionDoc on unknown name should not resolve")
	}
	// Lookups are exact: a bare member name never matches.
	if _, ok := script.FunctionDoc("floor"); ok {
		t.Error("FunctionDoc on unqualified name should not resolve")
	}
}

func TestSignatureRendering(t *testing.T) {
	sig := language.FunctionSignature{FullName: "string::replace", Args: []string{"input", "from", "to"}}
	if got := sig.String(); got != "string::replace(input, from, to)" {
		t.Errorf("String() = %q", got)
	}

	doc := language.FunctionDoc{Signature: sig, Description: "Replaces things."}
	rendered := doc.String()
	if !strings.Contains(rendered, "string::replace(input, from, to)") {
		t.Errorf("doc rendering %q lacks the signature", rendered)
	}
	if !strings.Contains(rendered, "Replaces things.") {
		t.Errorf("doc rendering %q lacks the description", rendered)
	}
}

func TestNullarySignature(t *testing.T) {
	query := mustLookup(t, "tremor-query")
	doc, ok := query.FunctionDoc("stats::count")
	if !ok {
		t.Fatal("FunctionDoc(stats::count) not found")
	}
	if got := doc.Signature.String(); got != "stats::count()" {
		t.Errorf("String() = %q, want stats::count()", got)
	}
}

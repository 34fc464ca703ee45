// Package language supplies per-dialect semantics to the otherwise
// language-agnostic pipelines: syntax checking, namespace member listing, and
// function documentation lookup.
package language

import (
	"fmt"
	"strings"
)

// Severity classifies a RawError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// Location is a position in the language's native coordinate system:
// one-based line and column, columns counted in runes.
type Location struct {
	Line   uint32
	Column uint32
}

// RawError is a single problem found in a source text. Malformed input is
// the expected case for ParseErrors: it is reported as RawErrors, never as a
// Go error.
type RawError struct {
	Start   Location
	End     Location
	Callout string
	Level   Severity
	Hint    string // optional, empty when absent
}

// FunctionSignature names a function and its arguments in declaration order.
type FunctionSignature struct {
	FullName string
	Args     []string
}

func (s FunctionSignature) String() string {
	return fmt.Sprintf("%s(%s)", s.FullName, strings.Join(s.Args, ", "))
}

// FunctionDoc is the documentation of a single stdlib function.
type FunctionDoc struct {
	Signature   FunctionSignature
	Description string // markdown
}

// String renders the doc as a markdown block: signature, blank line,
// description.
func (d FunctionDoc) String() string {
	return fmt.Sprintf("### %s\n\n%s", d.Signature, d.Description)
}

// Language is the capability set a dialect provides to the pipelines.
// Implementations are stateless and safe for concurrent use.
type Language interface {
	// ParseErrors checks text and returns its problems in document order.
	// A nil result means the text is clean or syntactically empty.
	ParseErrors(text string) []RawError

	// Functions lists the member names of a namespace in a stable order.
	// Unknown namespaces yield an empty list, not an error.
	Functions(namespace string) []string

	// FunctionDoc returns documentation for an exact fully-qualified name.
	FunctionDoc(fqn string) (FunctionDoc, bool)
}

// Lookup resolves a dialect by name. The set of dialects is closed and fixed
// at compile time; selection happens once at server startup.
func Lookup(name string) (Language, error) {
	switch name {
	case "tremor-script", "tremor":
		return newTremorScript(), nil
	case "tremor-query", "trickle":
		return newTremorQuery(), nil
	default:
		return nil, fmt.Errorf("unknown language %q (supported: tremor-script, tremor-query)", name)
	}
}

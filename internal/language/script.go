package language

import (
	"strings"
	"sync"
)

var (
	scriptOnce     sync.Once
	scriptRegistry *registry
)

// tremorScript is the tremor-script dialect: an expression language with
// `let` bindings and namespace-qualified stdlib calls.
type tremorScript struct {
	reg *registry
}

func newTremorScript() *tremorScript {
	scriptOnce.Do(func() {
		scriptRegistry = loadRegistry(stdlibJSON)
	})
	return &tremorScript{reg: scriptRegistry}
}

func (l *tremorScript) ParseErrors(source string) []RawError {
	return checkScript(source)
}

func (l *tremorScript) Functions(namespace string) []string {
	return l.reg.functions(namespace)
}

func (l *tremorScript) FunctionDoc(fqn string) (FunctionDoc, bool) {
	return l.reg.doc(fqn)
}

// checkScript runs the lexical and structural checks shared by expression
// contexts. Syntactically empty input yields nil.
func checkScript(source string) []RawError {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	tokens, errs := scan(source)
	errs = append(errs, checkDelimiters(tokens)...)
	errs = append(errs, checkLet(tokens)...)
	return sortErrors(errs)
}

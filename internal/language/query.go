package language

import (
	"strings"
	"sync"
)

var (
	queryOnce     sync.Once
	queryRegistry *registry
)

// tremorQuery is the tremor-query (trickle) dialect. It shares the scripting
// stdlib and additionally exposes the aggregate modules that only make sense
// inside windowed select statements.
type tremorQuery struct {
	reg *registry
}

func newTremorQuery() *tremorQuery {
	queryOnce.Do(func() {
		queryRegistry = loadRegistry(stdlibJSON, aggrJSON)
	})
	return &tremorQuery{reg: queryRegistry}
}

func (l *tremorQuery) ParseErrors(source string) []RawError {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	tokens, errs := scan(source)
	errs = append(errs, checkDelimiters(tokens)...)
	errs = append(errs, checkLet(tokens)...)
	errs = append(errs, checkSelect(tokens)...)
	return sortErrors(errs)
}

func (l *tremorQuery) Functions(namespace string) []string {
	return l.reg.functions(namespace)
}

func (l *tremorQuery) FunctionDoc(fqn string) (FunctionDoc, bool) {
	return l.reg.doc(fqn)
}

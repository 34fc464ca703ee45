package analysis

import (
	"fmt"
	"strings"

	"github.com/devopstoday11/tremor-language-server/internal/text"
)

// Completions suggests the members of the namespace qualified before the
// cursor. Without a namespace-qualified token there is nothing to suggest and
// the result is empty; candidate order follows the language's member order.
// Unknown documents yield document.ErrNotFound.
func (e *Engine) Completions(uri string, pos text.Position) ([]CompletionCandidate, error) {
	source, err := e.store.Get(uri)
	if err != nil {
		return nil, err
	}

	token, ok := text.ExtractToken(source, pos, e.unit)
	if !ok || token.Namespace == "" {
		return nil, nil
	}
	e.log.Debug("completion token", "namespace", token.Namespace, "member", token.Member)

	var candidates []CompletionCandidate
	for _, name := range e.lang.Functions(token.Namespace) {
		candidate := CompletionCandidate{Label: name}
		fqn := token.Namespace + text.PathSeparator + name
		if doc, ok := e.lang.FunctionDoc(fqn); ok {
			candidate.Detail = doc.Signature.String()
			candidate.Documentation = doc.Description
			candidate.InsertText = fmt.Sprintf("%s(%s)", name, argsSnippet(doc.Signature.Args))
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// argsSnippet renders arguments as tabbable snippet placeholders:
// `${1:first}, ${2:second}`. Placeholder numbering is one-based and follows
// declaration order.
func argsSnippet(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("${%d:%s}", i+1, arg)
	}
	return strings.Join(parts, ", ")
}

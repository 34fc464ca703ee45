package analysis

import (
	"github.com/devopstoday11/tremor-language-server/internal/text"
)

// Hover renders the documentation of the fully-qualified name under the
// cursor. Bare identifiers never hover: the raw token must contain a path
// separator, and it is looked up whole, unsplit. Unknown documents yield
// document.ErrNotFound.
func (e *Engine) Hover(uri string, pos text.Position) (*HoverContent, error) {
	source, err := e.store.Get(uri)
	if err != nil {
		return nil, err
	}

	token, ok := text.ExtractToken(source, pos, e.unit)
	if !ok || !token.Qualified() {
		return nil, nil
	}
	e.log.Debug("hover token", "raw", token.Raw)

	doc, ok := e.lang.FunctionDoc(token.Raw)
	if !ok {
		return nil, nil
	}
	return &HoverContent{Value: doc.String()}, nil
}

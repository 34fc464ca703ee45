package language

import (
	_ "embed"

	"github.com/tidwall/gjson"

	"github.com/devopstoday11/tremor-language-server/internal/text"
)

// The stdlib documentation ships with the binary. stdlib.json holds the
// modules shared by both dialects; aggr.json holds the aggregate modules
// that only exist in query contexts.
var (
	//go:embed docs/stdlib.json
	stdlibJSON []byte

	//go:embed docs/aggr.json
	aggrJSON []byte
)

// registry indexes embedded function documentation by namespace and by
// fully-qualified name. It is built once per dialect and read-only after.
type registry struct {
	members map[string][]string
	docs    map[string]FunctionDoc
}

// loadRegistry decodes one or more documentation blobs. Member order follows
// the order of appearance in the JSON document.
func loadRegistry(blobs ...[]byte) *registry {
	reg := &registry{
		members: make(map[string][]string),
		docs:    make(map[string]FunctionDoc),
	}
	for _, blob := range blobs {
		gjson.ParseBytes(blob).ForEach(func(module, functions gjson.Result) bool {
			namespace := module.String()
			functions.ForEach(func(name, fn gjson.Result) bool {
				member := name.String()
				fqn := namespace + text.PathSeparator + member

				var args []string
				for _, arg := range fn.Get("args").Array() {
					args = append(args, arg.String())
				}

				reg.members[namespace] = append(reg.members[namespace], member)
				reg.docs[fqn] = FunctionDoc{
					Signature:   FunctionSignature{FullName: fqn, Args: args},
					Description: fn.Get("description").String(),
				}
				return true
			})
			return true
		})
	}
	return reg
}

func (r *registry) functions(namespace string) []string {
	return r.members[namespace]
}

func (r *registry) doc(fqn string) (FunctionDoc, bool) {
	doc, ok := r.docs[fqn]
	return doc, ok
}

package lsp

import (
	"fmt"
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	if err := ls.configure(params.InitializationOptions); err != nil {
		return nil, fmt.Errorf("invalid initialization options: %w", err)
	}

	capabilities := ls.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{":"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	context.Notify("window/logMessage", protocol.LogMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: "tremor language server initialized",
	})
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	ls.log.Info("server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	ls.log.Debug("didOpen", "uri", uri)

	// Prefer the text the client sent; fall back to disk for clients that
	// open documents without inlining their content. The read happens here,
	// before any store interaction, so no lock is held during I/O.
	source := params.TextDocument.Text
	if source == "" {
		if data, err := os.ReadFile(uriToPath(uri)); err == nil {
			source = string(data)
		} else {
			ls.log.Warning("could not load document from disk", "uri", uri, "error", err)
		}
	}

	records := ls.engine.OnOpen(uri, source)
	publishDiagnostics(context, uri, toProtocolDiagnostics(records))
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	ls.log.Debug("didChange", "uri", uri)

	source, ok := wholeText(params.ContentChanges)
	if !ok {
		ls.log.Warning("ignoring non-full change event", "uri", uri)
		return nil
	}

	records := ls.engine.OnChange(uri, source)
	publishDiagnostics(context, uri, toProtocolDiagnostics(records))
	return nil
}

// wholeText extracts the last full-text replacement from a change batch.
// Full sync is negotiated at initialize, so ranged changes are not expected.
func wholeText(changes []any) (string, bool) {
	source, found := "", false
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			source, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				source, found = c.Text, true
			}
		}
	}
	return source, found
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	ls.log.Debug("didClose", "uri", uri)

	// Always an empty list, so the client clears what it was showing.
	records := ls.engine.OnClose(uri)
	publishDiagnostics(context, uri, toProtocolDiagnostics(records))
	return nil
}

func (ls *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	uri := params.TextDocument.URI
	pos := fromProtocolPosition(params.Position)

	candidates, err := ls.engine.Completions(uri, pos)
	if err != nil {
		// Unknown documents degrade to no completions rather than an error
		// surfaced in the editor.
		ls.log.Warning("completion on unknown document", "uri", uri, "error", err)
		return []protocol.CompletionItem{}, nil
	}
	return toProtocolCompletionItems(candidates), nil
}

func (ls *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	pos := fromProtocolPosition(params.Position)

	content, err := ls.engine.Hover(uri, pos)
	if err != nil {
		ls.log.Warning("hover on unknown document", "uri", uri, "error", err)
		return nil, nil
	}
	if content == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content.Value,
		},
	}, nil
}

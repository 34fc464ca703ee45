// Package lsp wires the analysis engine to the language server protocol.
// It is the only package that sees protocol types; everything below it works
// on plain core values.
package lsp

import (
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/devopstoday11/tremor-language-server/internal/analysis"
	"github.com/devopstoday11/tremor-language-server/internal/config"
	"github.com/devopstoday11/tremor-language-server/internal/document"
	"github.com/devopstoday11/tremor-language-server/internal/language"
)

const lsName = "tremor-language-server"

var version = "0.1.0"

type Server struct {
	handler *protocol.Handler
	lang    language.Language
	log     commonlog.Logger

	// engine starts with default options and is rebuilt during initialize,
	// once the client's initializationOptions are known.
	engine *analysis.Engine
}

// NewServer creates a protocol server for the given dialect. The dialect is
// fixed for the server's lifetime.
func NewServer(lang language.Language) (*server.Server, error) {
	ls := &Server{
		lang: lang,
		log:  commonlog.GetLogger(lsName),
	}
	if err := ls.configure(nil); err != nil {
		return nil, err
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentCompletion: ls.textDocumentCompletion,
		TextDocumentHover:      ls.textDocumentHover,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}

// configure applies the client's initializationOptions.
func (ls *Server) configure(options any) error {
	cfg, err := config.Load(options)
	if err != nil {
		return err
	}
	unit, err := cfg.Unit()
	if err != nil {
		return err
	}

	ls.engine = analysis.NewEngine(
		ls.lang,
		document.NewStore(cfg.RetainOnClose),
		unit,
		commonlog.GetLogger(lsName+".analysis"),
	)
	return nil
}

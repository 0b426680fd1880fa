// Package langserver implements a Language Server Protocol server for
// equation documents. Every non-blank line of a checked document is
// treated as one equation; failures surface as diagnostics and the
// canonical form of a valid line is shown on hover.
package langserver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Diego-Ivan/proyecto-sel/equation"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "sel"

type Server struct {
	mu        sync.Mutex
	documents map[string]string

	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	ls := &Server{
		documents: make(map[string]string),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.setDocument(params.TextDocument.URI, params.TextDocument.Text)
	ls.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.setDocument(params.TextDocument.URI, textChange.Text)
		}
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.setDocument(params.TextDocument.URI, *params.Text)
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

// textDocumentHover reports the canonical form of the equation on the
// hovered line. Lines that do not reduce to a linear form get no hover;
// their problems are already visible as diagnostics.
func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	content, ok := ls.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	lines := strings.Split(content, "\n")
	lineNo := int(params.Position.Line)
	if lineNo < 0 || lineNo >= len(lines) {
		return nil, nil
	}
	line := lines[lineNo]
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	form, err := equation.SimplifyExpression(line)
	if err != nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("```\n%s\n```", form),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: params.Position.Line, Character: 0},
			End:   protocol.Position{Line: params.Position.Line, Character: protocol.UInteger(len(line))},
		},
	}, nil
}

func (ls *Server) setDocument(uri, content string) {
	ls.mu.Lock()
	ls.documents[uri] = content
	ls.mu.Unlock()
}

func (ls *Server) document(uri string) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	content, ok := ls.documents[uri]
	return content, ok
}

func (ls *Server) publishDiagnostics(ctx *glsp.Context, uri string) {
	content, ok := ls.document(uri)
	if !ok {
		return
	}
	diagnostics := Diagnostics(content)
	if diagnostics == nil {
		// An empty list clears stale diagnostics on the client.
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}

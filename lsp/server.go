// Package lsp wires the volki analyses into a language server over stdio.
package lsp

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/shmigatron/volki/internal/documents"
	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/internal/module"
	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/lsp/methods/lifecycle"
	"github.com/shmigatron/volki/lsp/methods/textDocument"
	"github.com/shmigatron/volki/lsp/methods/textDocument/completion"
	"github.com/shmigatron/volki/lsp/methods/textDocument/definition"
	"github.com/shmigatron/volki/lsp/methods/textDocument/diagnostic"
	documentcolor "github.com/shmigatron/volki/lsp/methods/textDocument/documentColor"
	"github.com/shmigatron/volki/lsp/methods/textDocument/hover"
	"github.com/shmigatron/volki/lsp/methods/workspace"
	"github.com/shmigatron/volki/lsp/types"
)

// Verify that Server implements the ServerContext interface.
var _ types.ServerContext = (*Server)(nil)

// Server is the volki language server.
type Server struct {
	documents  *documents.Manager
	workspace  module.Workspace
	glspServer *server.Server

	// mu protects context, root, styleConfig, and supportsMarkdown from
	// concurrent access across handler goroutines.
	mu               sync.RWMutex
	context          *glsp.Context
	rootURI          string
	rootPath         string
	styleConfig      *style.Config
	supportsMarkdown bool
}

// NewServer creates the server with every handler wrapped in the logging
// and panic-recovery middleware.
func NewServer() (*Server, error) {
	s := &Server{
		documents:   documents.NewManager(),
		workspace:   module.OSWorkspace{},
		styleConfig: style.DefaultConfig(),
	}

	protocolHandler := protocol.Handler{
		Initialize:                      method(s, "initialize", lifecycle.Initialize),
		Initialized:                     notify(s, "initialized", lifecycle.Initialized),
		Shutdown:                        noParam(s, "shutdown", lifecycle.Shutdown),
		SetTrace:                        notify(s, "$/setTrace", lifecycle.SetTrace),
		WorkspaceDidChangeConfiguration: notify(s, "workspace/didChangeConfiguration", workspace.DidChangeConfiguration),
		TextDocumentDidOpen:             notify(s, "textDocument/didOpen", textDocument.DidOpen),
		TextDocumentDidChange:           notify(s, "textDocument/didChange", textDocument.DidChange),
		TextDocumentDidClose:            notify(s, "textDocument/didClose", textDocument.DidClose),
		TextDocumentHover:               method(s, "textDocument/hover", hover.Hover),
		TextDocumentCompletion:          method(s, "textDocument/completion", completion.Completion),
		TextDocumentDefinition:          method(s, "textDocument/definition", definition.Definition),
		TextDocumentColor:               method(s, "textDocument/documentColor", documentcolor.DocumentColor),
		TextDocumentColorPresentation:   method(s, "textDocument/colorPresentation", documentcolor.ColorPresentation),
	}

	s.glspServer = server.NewServer(&protocolHandler, lifecycle.ServerName, false)
	return s, nil
}

// RunStdio starts the LSP server on the stdio transport.
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// ServerContext interface implementation

// Document returns the open document with the given URI, or nil.
func (s *Server) Document(uri string) *documents.Document {
	return s.documents.Get(uri)
}

// DocumentManager returns the document manager.
func (s *Server) DocumentManager() *documents.Manager {
	return s.documents
}

// AllDocuments returns all open documents.
func (s *Server) AllDocuments() []*documents.Document {
	return s.documents.GetAll()
}

// RootURI returns the workspace root URI.
func (s *Server) RootURI() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootURI
}

// RootPath returns the workspace root path.
func (s *Server) RootPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootPath
}

// SetRootURI sets the workspace root URI.
func (s *Server) SetRootURI(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootURI = uri
}

// SetRootPath sets the workspace root path.
func (s *Server) SetRootPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootPath = path
}

// Workspace returns the file system the module resolver walks.
func (s *Server) Workspace() module.Workspace {
	return s.workspace
}

// StyleConfig returns the current style configuration.
func (s *Server) StyleConfig() *style.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.styleConfig
}

// SetStyleConfig replaces the style configuration.
func (s *Server) SetStyleConfig(cfg *style.Config) {
	if cfg == nil {
		cfg = style.DefaultConfig()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styleConfig = cfg
}

// ReloadStyleConfig re-discovers volki.config.json/yaml from the workspace
// root.
func (s *Server) ReloadStyleConfig() {
	root := s.RootPath()
	if root == "" {
		s.SetStyleConfig(style.DefaultConfig())
		return
	}
	cfg := style.LoadConfigForFile(filepath.Join(root, "volki.config.json"))
	s.SetStyleConfig(cfg)
	log.Info("Style config loaded for workspace %s", root)
}

// ClientSupportsMarkdown reports the hover format negotiated at initialize.
func (s *Server) ClientSupportsMarkdown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supportsMarkdown
}

// SetClientSupportsMarkdown records the client's hover content format.
func (s *Server) SetClientSupportsMarkdown(supported bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supportsMarkdown = supported
}

// GLSPContext returns the stored client context.
func (s *Server) GLSPContext() *glsp.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.context
}

// SetGLSPContext stores the client context for server-initiated
// notifications.
func (s *Server) SetGLSPContext(ctx *glsp.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = ctx
}

// PublishDiagnostics computes and pushes diagnostics for a document.
func (s *Server) PublishDiagnostics(context *glsp.Context, uri string) error {
	workingContext := context
	if workingContext == nil {
		workingContext = s.GLSPContext()
	}
	if workingContext == nil || workingContext.Notify == nil {
		return fmt.Errorf("cannot publish diagnostics: no client context available")
	}

	diagnostics, err := diagnostic.GetDiagnostics(s, uri)
	if err != nil {
		return err
	}

	workingContext.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
	return nil
}

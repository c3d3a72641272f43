// Package types holds the shared interfaces the LSP handlers depend on, so
// handlers can be tested against a mock server.
package types

import (
	"github.com/tliron/glsp"

	"github.com/shmigatron/volki/internal/documents"
	"github.com/shmigatron/volki/internal/module"
	"github.com/shmigatron/volki/internal/style"
)

// ServerContext provides all dependencies needed for LSP handlers. The
// unified context keeps handler signatures uniform and enables dependency
// injection for testing.
type ServerContext interface {
	// Document operations
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager
	AllDocuments() []*documents.Document

	// Workspace operations
	RootURI() string
	RootPath() string
	SetRootURI(uri string)
	SetRootPath(path string)

	// Workspace returns the file system the module resolver walks.
	Workspace() module.Workspace

	// Style configuration
	StyleConfig() *style.Config
	SetStyleConfig(cfg *style.Config)
	// ReloadStyleConfig re-discovers the style config from the workspace
	// root.
	ReloadStyleConfig()

	// Client capabilities recorded at initialize
	ClientSupportsMarkdown() bool
	SetClientSupportsMarkdown(supported bool)

	// GLSP context management (for async operations)
	GLSPContext() *glsp.Context
	SetGLSPContext(ctx *glsp.Context)

	// Diagnostics publishing
	PublishDiagnostics(context *glsp.Context, uri string) error
}

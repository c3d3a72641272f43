// Package testutil provides a mock ServerContext for handler tests.
package testutil

import (
	"github.com/tliron/glsp"

	"github.com/shmigatron/volki/internal/documents"
	"github.com/shmigatron/volki/internal/module"
	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/lsp/types"
)

// MockServerContext implements types.ServerContext for testing. Published
// diagnostics are recorded instead of sent.
type MockServerContext struct {
	docs             *documents.Manager
	workspace        module.Workspace
	rootURI          string
	rootPath         string
	styleConfig      *style.Config
	supportsMarkdown bool
	glspContext      *glsp.Context

	// PublishedURIs records every PublishDiagnostics call.
	PublishedURIs []string
}

var _ types.ServerContext = (*MockServerContext)(nil)

// NewMockServerContext creates a mock with defaults: an empty document set,
// the real file system, and the default style config.
func NewMockServerContext() *MockServerContext {
	return &MockServerContext{
		docs:        documents.NewManager(),
		workspace:   module.OSWorkspace{},
		styleConfig: style.DefaultConfig(),
	}
}

// OpenDocument registers a document with version 1.
func (m *MockServerContext) OpenDocument(uri, content string) {
	_ = m.docs.DidOpen(uri, "volki", 1, content)
}

// SetWorkspace swaps the file system the module resolver walks.
func (m *MockServerContext) SetWorkspace(ws module.Workspace) {
	m.workspace = ws
}

func (m *MockServerContext) Document(uri string) *documents.Document {
	return m.docs.Get(uri)
}

func (m *MockServerContext) DocumentManager() *documents.Manager {
	return m.docs
}

func (m *MockServerContext) AllDocuments() []*documents.Document {
	return m.docs.GetAll()
}

func (m *MockServerContext) RootURI() string { return m.rootURI }

func (m *MockServerContext) RootPath() string { return m.rootPath }

func (m *MockServerContext) SetRootURI(uri string) { m.rootURI = uri }

func (m *MockServerContext) SetRootPath(p string) { m.rootPath = p }

func (m *MockServerContext) Workspace() module.Workspace { return m.workspace }

func (m *MockServerContext) StyleConfig() *style.Config {
	return m.styleConfig
}

func (m *MockServerContext) SetStyleConfig(cfg *style.Config) {
	if cfg == nil {
		cfg = style.DefaultConfig()
	}
	m.styleConfig = cfg
}

func (m *MockServerContext) ReloadStyleConfig() {
	m.styleConfig = style.DefaultConfig()
}

func (m *MockServerContext) ClientSupportsMarkdown() bool { return m.supportsMarkdown }
func (m *MockServerContext) SetClientSupportsMarkdown(supported bool) {
	m.supportsMarkdown = supported
}

func (m *MockServerContext) GLSPContext() *glsp.Context { return m.glspContext }

func (m *MockServerContext) SetGLSPContext(ctx *glsp.Context) { m.glspContext = ctx }

func (m *MockServerContext) PublishDiagnostics(context *glsp.Context, uri string) error {
	m.PublishedURIs = append(m.PublishedURIs, uri)
	return nil
}

// Package lifecycle implements the LSP session lifecycle requests:
// initialize, initialized, shutdown, and trace control.
package lifecycle

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/internal/uriutil"
	"github.com/shmigatron/volki/internal/version"
	"github.com/shmigatron/volki/lsp/types"
)

// ServerName is the name reported to clients in the initialize response.
const ServerName = "volki-language-server"

// Initialize handles the LSP initialize request: it records the workspace
// root, loads the style configuration, and reports server capabilities.
func Initialize(ctx types.ServerContext, context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	log.Info("Initializing for client: %s", clientName)

	if params.RootURI != nil {
		ctx.SetRootURI(*params.RootURI)
		ctx.SetRootPath(uriutil.URIToPath(*params.RootURI))
	} else if params.RootPath != nil {
		ctx.SetRootPath(*params.RootPath)
		ctx.SetRootURI(uriutil.PathToURI(*params.RootPath))
	}
	if root := ctx.RootPath(); root != "" {
		log.Info("Workspace root: %s", root)
		ctx.ReloadStyleConfig()
	}

	ctx.SetClientSupportsMarkdown(clientSupportsMarkdown(params.Capabilities))

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    &syncKind,
		},
		HoverProvider: true,
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{" ", "\"", "'"},
		},
		DefinitionProvider: true,
		ColorProvider:      true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: strPtr(version.GetVersion()),
		},
	}, nil
}

// Initialized handles the initialized notification. The client context is
// stored for later server-initiated notifications.
func Initialized(ctx types.ServerContext, context *glsp.Context, params *protocol.InitializedParams) error {
	ctx.SetGLSPContext(context)
	log.Info("Client session initialized")
	return nil
}

// Shutdown handles the shutdown request.
func Shutdown(ctx types.ServerContext, context *glsp.Context) error {
	log.Info("Shutting down")
	return nil
}

// SetTrace handles the $/setTrace notification.
func SetTrace(ctx types.ServerContext, context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// clientSupportsMarkdown checks whether the client accepts markdown hover
// content. Absent capabilities default to plaintext.
func clientSupportsMarkdown(caps protocol.ClientCapabilities) bool {
	if caps.TextDocument == nil || caps.TextDocument.Hover == nil {
		return false
	}
	for _, format := range caps.TextDocument.Hover.ContentFormat {
		if format == protocol.MarkupKindMarkdown {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

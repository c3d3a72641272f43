package workspace

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/lsp/types"
)

// DidChangeConfiguration handles the workspace/didChangeConfiguration
// notification. Style configuration lives in volki.config.json/yaml rather
// than client settings, so this re-discovers the config from the workspace
// root and republishes diagnostics for every open document.
func DidChangeConfiguration(ctx types.ServerContext, context *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	log.Info("Configuration changed, reloading style config")

	ctx.ReloadStyleConfig()

	glspCtx := ctx.GLSPContext()
	if glspCtx == nil {
		glspCtx = context
	}
	if glspCtx != nil {
		for _, doc := range ctx.AllDocuments() {
			if err := ctx.PublishDiagnostics(glspCtx, doc.URI()); err != nil {
				log.Warn("failed to publish diagnostics for %s: %v", doc.URI(), err)
			}
		}
	}

	return nil
}

// Package textDocument implements the textDocument/* lifecycle
// notifications.
package textDocument

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/lsp/types"
)

// DidOpen handles the textDocument/didOpen notification.
func DidOpen(ctx types.ServerContext, context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debug("Document opened: %s (language: %s, version: %d)",
		params.TextDocument.URI, params.TextDocument.LanguageID, int(params.TextDocument.Version))

	err := ctx.DocumentManager().DidOpen(params.TextDocument.URI, params.TextDocument.LanguageID,
		int(params.TextDocument.Version), params.TextDocument.Text)
	if err != nil {
		return err
	}

	publish(ctx, context, params.TextDocument.URI)
	return nil
}

// DidChange handles the textDocument/didChange notification.
func DidChange(ctx types.ServerContext, context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	version := int(params.TextDocument.Version)

	log.Debug("Document changed: %s (version: %d, changes: %d)", uri, version, len(params.ContentChanges))

	// ContentChanges is deserialized as a mix of ranged and whole-document
	// events; normalize them into one slice.
	changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(params.ContentChanges))
	for _, change := range params.ContentChanges {
		switch ev := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			changes = append(changes, ev)
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, protocol.TextDocumentContentChangeEvent{Text: ev.Text})
		}
	}

	if err := ctx.DocumentManager().DidChange(uri, version, changes); err != nil {
		return err
	}

	publish(ctx, context, uri)
	return nil
}

// DidClose handles the textDocument/didClose notification. Any published
// diagnostics for the document are cleared.
func DidClose(ctx types.ServerContext, context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debug("Document closed: %s", uri)

	if err := ctx.DocumentManager().DidClose(uri); err != nil {
		return err
	}

	if context != nil && context.Notify != nil {
		context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

func publish(ctx types.ServerContext, context *glsp.Context, uri string) {
	glspCtx := ctx.GLSPContext()
	if glspCtx == nil {
		glspCtx = context
	}
	if glspCtx == nil {
		return
	}
	if err := ctx.PublishDiagnostics(glspCtx, uri); err != nil {
		log.Warn("failed to publish diagnostics for %s: %v", uri, err)
	}
}

// Package completion implements textDocument/completion for utility class
// names inside markup class attributes.
package completion

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/lsp/methods/textDocument"
	"github.com/shmigatron/volki/lsp/types"
)

var (
	itemsOnce   sync.Once
	cachedItems []protocol.CompletionItem
)

// completionItems builds the static candidate list once: every utility in
// the inventory, with the declarations it resolves to as detail.
func completionItems() []protocol.CompletionItem {
	itemsOnce.Do(func() {
		kind := protocol.CompletionItemKindValue
		for _, name := range style.UtilityNames() {
			item := protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			}
			if resolved := style.Resolve(name); resolved != nil {
				detail := resolved.Declarations
				item.Detail = &detail
			}
			cachedItems = append(cachedItems, item)
		}
	})
	return cachedItems
}

// Completion handles the textDocument/completion request. Candidates are
// offered only inside a class attribute value; the client filters them
// against the partial word.
func Completion(ctx types.ServerContext, context *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := ctx.Document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	if !textDocument.InClassAttribute(doc, params.Position) {
		return nil, nil
	}

	return completionItems(), nil
}

// Package documentcolor implements textDocument/documentColor and
// colorPresentation for palette-colored utilities in class attributes.
package documentcolor

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/lsp/methods/textDocument"
	"github.com/shmigatron/volki/lsp/types"
)

// DocumentColor handles the textDocument/documentColor request. Every class
// attribute entry that names a palette color gets a color swatch.
func DocumentColor(ctx types.ServerContext, context *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	doc := ctx.Document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	config := ctx.StyleConfig()
	content := doc.Content()

	var colors []protocol.ColorInformation
	for _, span := range style.CollectClassSpans(doc.Tokens()) {
		parsed := style.ParseClassNameWithConfig(span.Name, config)
		if parsed.IsCustom {
			continue
		}
		name, ok := style.ExtractColorName(parsed.Utility)
		if !ok {
			continue
		}
		hex, ok := style.ColorHex(name)
		if !ok {
			continue
		}

		parsedColor, err := csscolorparser.Parse(hex)
		if err != nil {
			log.Debug("unparseable palette value %q for %s: %v", hex, name, err)
			continue
		}

		colors = append(colors, protocol.ColorInformation{
			Range: textDocument.SpanRange(content, span),
			Color: protocol.Color{
				Red:   protocol.Decimal(parsedColor.R),
				Green: protocol.Decimal(parsedColor.G),
				Blue:  protocol.Decimal(parsedColor.B),
				Alpha: protocol.Decimal(parsedColor.A),
			},
		})
	}
	return colors, nil
}

// ColorPresentation handles the textDocument/colorPresentation request. The
// presented labels are the hex value and, when one matches, the nearest
// palette name.
func ColorPresentation(ctx types.ServerContext, context *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	hex := fmt.Sprintf("#%02x%02x%02x",
		channelByte(float64(params.Color.Red)),
		channelByte(float64(params.Color.Green)),
		channelByte(float64(params.Color.Blue)))

	presentations := []protocol.ColorPresentation{{Label: hex}}
	if name, ok := style.NearestColorName(hex); ok {
		presentations = append(presentations, protocol.ColorPresentation{Label: name})
	}
	return presentations, nil
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

package documentcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/lsp/testutil"
)

const uri = "file:///view.volki"

func TestDocumentColor(t *testing.T) {
	ctx := testutil.NewMockServerContext()
	ctx.OpenDocument(uri, `fn view() { <div class="bg-red-500 p-4 text-white"></div> }`)

	colors, err := DocumentColor(ctx, &glsp.Context{}, &protocol.DocumentColorParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, colors, 2)

	t.Run("red-500", func(t *testing.T) {
		c := colors[0].Color
		assert.InDelta(t, 0xef/255.0, float64(c.Red), 0.001)
		assert.InDelta(t, 0x44/255.0, float64(c.Green), 0.001)
		assert.InDelta(t, 0x44/255.0, float64(c.Blue), 0.001)
		assert.InDelta(t, 1.0, float64(c.Alpha), 0.001)
		assert.Equal(t, protocol.UInteger(24), colors[0].Range.Start.Character)
	})

	t.Run("white", func(t *testing.T) {
		c := colors[1].Color
		assert.InDelta(t, 1.0, float64(c.Red), 0.001)
		assert.InDelta(t, 1.0, float64(c.Green), 0.001)
		assert.InDelta(t, 1.0, float64(c.Blue), 0.001)
	})

	t.Run("unknown document", func(t *testing.T) {
		colors, err := DocumentColor(ctx, &glsp.Context{}, &protocol.DocumentColorParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///missing.volki"},
		})
		require.NoError(t, err)
		assert.Nil(t, colors)
	})
}

func TestColorPresentation(t *testing.T) {
	presentations, err := ColorPresentation(nil, &glsp.Context{}, &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 0xef / 255.0, Green: 0x44 / 255.0, Blue: 0x44 / 255.0, Alpha: 1},
	})
	require.NoError(t, err)
	require.NotEmpty(t, presentations)
	assert.Equal(t, "#ef4444", presentations[0].Label)

	var labels []string
	for _, p := range presentations {
		labels = append(labels, p.Label)
	}
	assert.Contains(t, labels, "red-500")
}

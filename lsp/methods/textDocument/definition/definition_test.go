package definition

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/uriutil"
	"github.com/shmigatron/volki/lsp/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func definitionAt(t *testing.T, ctx *testutil.MockServerContext, uri string, line, char int) any {
	t.Helper()
	result, err := Definition(ctx, &glsp.Context{}, &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)},
		},
	})
	require.NoError(t, err)
	return result
}

func TestDefinition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "core.volki"), "pub fn render() {}\npub struct Html {}\n")
	writeFile(t, filepath.Join(dir, "src", "main.volki"), "use self::core::{render};\n\nfn main() {}\n")

	ctx := testutil.NewMockServerContext()
	mainPath := filepath.Join(dir, "src", "main.volki")
	mainURI := uriutil.PathToURI(mainPath)
	content, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	ctx.OpenDocument(mainURI, string(content))

	t.Run("module path resolves to file", func(t *testing.T) {
		result := definitionAt(t, ctx, mainURI, 0, 11)
		loc, ok := result.(protocol.Location)
		require.True(t, ok)
		assert.True(t, strings.HasSuffix(loc.URI, "/core.volki"))
	})

	t.Run("imported symbol narrows to its declaration", func(t *testing.T) {
		result := definitionAt(t, ctx, mainURI, 0, 18)
		loc, ok := result.(protocol.Location)
		require.True(t, ok)
		assert.True(t, strings.HasSuffix(loc.URI, "/core.volki"))
		assert.Equal(t, protocol.UInteger(0), loc.Range.Start.Line)
		assert.Equal(t, protocol.UInteger(7), loc.Range.Start.Character)
	})

	t.Run("outside a use statement", func(t *testing.T) {
		assert.Nil(t, definitionAt(t, ctx, mainURI, 2, 4))
	})

	t.Run("unresolvable path", func(t *testing.T) {
		badURI := uriutil.PathToURI(filepath.Join(dir, "src", "bad.volki"))
		ctx.OpenDocument(badURI, "use self::missing::thing;\n")
		assert.Nil(t, definitionAt(t, ctx, badURI, 0, 12))
	})
}

package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/lsp/testutil"
)

func TestInitialize(t *testing.T) {
	t.Run("sets root from rootUri", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		rootURI := "file:///workspace"

		result, err := Initialize(ctx, &glsp.Context{}, &protocol.InitializeParams{RootURI: &rootURI})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "file:///workspace", ctx.RootURI())
		assert.Equal(t, "/workspace", ctx.RootPath())
	})

	t.Run("sets root from rootPath", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		rootPath := "/workspace"

		_, err := Initialize(ctx, &glsp.Context{}, &protocol.InitializeParams{RootPath: &rootPath})
		require.NoError(t, err)

		assert.Equal(t, "/workspace", ctx.RootPath())
		assert.Equal(t, "file:///workspace", ctx.RootURI())
	})

	t.Run("reports capabilities and server info", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()

		result, err := Initialize(ctx, &glsp.Context{}, &protocol.InitializeParams{})
		require.NoError(t, err)

		initResult, ok := result.(protocol.InitializeResult)
		require.True(t, ok)
		require.NotNil(t, initResult.ServerInfo)
		assert.Equal(t, ServerName, initResult.ServerInfo.Name)

		caps := initResult.Capabilities
		assert.Equal(t, true, caps.HoverProvider)
		assert.Equal(t, true, caps.DefinitionProvider)
		assert.Equal(t, true, caps.ColorProvider)
		assert.NotNil(t, caps.CompletionProvider)
	})

	t.Run("detects markdown hover support", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()

		params := &protocol.InitializeParams{}
		params.Capabilities.TextDocument = &protocol.TextDocumentClientCapabilities{
			Hover: &protocol.HoverClientCapabilities{
				ContentFormat: []protocol.MarkupKind{protocol.MarkupKindMarkdown, protocol.MarkupKindPlainText},
			},
		}

		_, err := Initialize(ctx, &glsp.Context{}, params)
		require.NoError(t, err)
		assert.True(t, ctx.ClientSupportsMarkdown())
	})

	t.Run("defaults to plaintext", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		_, err := Initialize(ctx, &glsp.Context{}, &protocol.InitializeParams{})
		require.NoError(t, err)
		assert.False(t, ctx.ClientSupportsMarkdown())
	})
}

func TestInitialized(t *testing.T) {
	ctx := testutil.NewMockServerContext()
	glspCtx := &glsp.Context{}

	require.NoError(t, Initialized(ctx, glspCtx, &protocol.InitializedParams{}))
	assert.Same(t, glspCtx, ctx.GLSPContext())
}

func TestShutdown(t *testing.T) {
	ctx := testutil.NewMockServerContext()
	assert.NoError(t, Shutdown(ctx, &glsp.Context{}))
}

package module_test

import (
	"testing"

	"github.com/shmigatron/volki/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImportStatements(t *testing.T) {
	t.Run("brace group", func(t *testing.T) {
		stmts := module.ParseImportStatements("use root::core::{Html, Fragment};")
		require.Len(t, stmts, 1)
		assert.Equal(t, []string{"root", "core"}, stmts[0].Segments)
		require.Len(t, stmts[0].Symbols, 2)
		assert.Equal(t, "Html", stmts[0].Symbols[0].Name)
		assert.Equal(t, "Fragment", stmts[0].Symbols[1].Name)
		assert.False(t, stmts[0].Pub)
	})

	t.Run("plain path takes last segment as symbol", func(t *testing.T) {
		stmts := module.ParseImportStatements("use root::util::helpers::clamp;")
		require.Len(t, stmts, 1)
		assert.Equal(t, []string{"root", "util", "helpers"}, stmts[0].Segments)
		require.Len(t, stmts[0].Symbols, 1)
		assert.Equal(t, "clamp", stmts[0].Symbols[0].Name)
	})

	t.Run("single segment is not an import", func(t *testing.T) {
		assert.Empty(t, module.ParseImportStatements("use foo;"))
	})

	t.Run("glob import", func(t *testing.T) {
		stmts := module.ParseImportStatements("use root::prelude::*;")
		require.Len(t, stmts, 1)
		require.Len(t, stmts[0].Symbols, 1)
		assert.True(t, stmts[0].Symbols[0].Glob)
	})

	t.Run("pub use marks re-export", func(t *testing.T) {
		stmts := module.ParseImportStatements("pub use self::widgets::{Button};")
		require.Len(t, stmts, 1)
		assert.True(t, stmts[0].Pub)
		assert.Equal(t, []string{"self", "widgets"}, stmts[0].Segments)
	})

	t.Run("self and star inside braces are skipped", func(t *testing.T) {
		stmts := module.ParseImportStatements("use root::core::{self, Html, *};")
		require.Len(t, stmts, 1)
		require.Len(t, stmts[0].Symbols, 2)
		assert.Equal(t, "Html", stmts[0].Symbols[0].Name)
		assert.True(t, stmts[0].Symbols[1].Glob)
	})

	t.Run("multiple statements", func(t *testing.T) {
		source := `
			use root::core::{Html, Fragment};
			let greeting = "hi";
			use self::state::Store;
		`
		stmts := module.ParseImportStatements(source)
		require.Len(t, stmts, 2)
		assert.Equal(t, []string{"root", "core"}, stmts[0].Segments)
		assert.Equal(t, []string{"self", "state"}, stmts[1].Segments)
	})

	t.Run("non-use statements are skipped", func(t *testing.T) {
		assert.Empty(t, module.ParseImportStatements("let x = 5; fn used() {}"))
	})
}

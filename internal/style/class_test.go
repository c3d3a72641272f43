package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassNamePlain(t *testing.T) {
	parsed := ParseClassName("p-4")
	assert.Equal(t, "p-4", parsed.Utility)
	assert.Equal(t, "p-4", parsed.Original)
	assert.Empty(t, parsed.PseudoClasses)
	assert.Empty(t, parsed.MediaQueries)
	assert.False(t, parsed.Important)
	assert.False(t, parsed.IsCustom)
}

func TestParseClassNameVariants(t *testing.T) {
	t.Run("pseudo class", func(t *testing.T) {
		parsed := ParseClassName("hover:bg-red-500")
		assert.Equal(t, "bg-red-500", parsed.Utility)
		assert.Equal(t, []string{":hover"}, parsed.PseudoClasses)
	})

	t.Run("pseudo element", func(t *testing.T) {
		parsed := ParseClassName("before:content-none")
		assert.Equal(t, []string{"::before"}, parsed.PseudoClasses)

		parsed = ParseClassName("file:border-0")
		assert.Equal(t, []string{"::file-selector-button"}, parsed.PseudoClasses)
	})

	t.Run("screen", func(t *testing.T) {
		parsed := ParseClassName("md:flex")
		assert.Equal(t, "flex", parsed.Utility)
		assert.Equal(t, []string{"(min-width:768px)"}, parsed.MediaQueries)
	})

	t.Run("max screen", func(t *testing.T) {
		parsed := ParseClassName("max-md:hidden")
		assert.Equal(t, []string{"(max-width:768px)"}, parsed.MediaQueries)
	})

	t.Run("stacked", func(t *testing.T) {
		parsed := ParseClassName("md:hover:bg-red-500")
		assert.Equal(t, "bg-red-500", parsed.Utility)
		assert.Equal(t, []string{"(min-width:768px)"}, parsed.MediaQueries)
		assert.Equal(t, []string{":hover"}, parsed.PseudoClasses)
	})

	t.Run("important", func(t *testing.T) {
		parsed := ParseClassName("!p-4")
		assert.True(t, parsed.Important)
		assert.Equal(t, "p-4", parsed.Utility)
		assert.Equal(t, "!p-4", parsed.Original)
	})

	t.Run("custom passthrough", func(t *testing.T) {
		parsed := ParseClassName("custom:sidebar-header")
		assert.True(t, parsed.IsCustom)
		assert.Equal(t, "sidebar-header", parsed.Utility)
	})
}

func TestParseClassNameDarkMode(t *testing.T) {
	t.Run("media strategy", func(t *testing.T) {
		parsed := ParseClassName("dark:bg-black")
		assert.Equal(t, []string{"(prefers-color-scheme:dark)"}, parsed.MediaQueries)
		assert.Empty(t, parsed.SelectorPrefixes)
	})

	t.Run("class strategy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DarkMode = DarkModeClass
		parsed := ParseClassNameWithConfig("dark:bg-black", cfg)
		assert.Equal(t, []string{".dark "}, parsed.SelectorPrefixes)
		assert.Empty(t, parsed.MediaQueries)
	})
}

func TestParseClassNameGroupPeer(t *testing.T) {
	parsed := ParseClassName("group-hover:underline")
	assert.Equal(t, []string{".group:hover "}, parsed.SelectorPrefixes)

	parsed = ParseClassName("peer-focus:ring-2")
	assert.Equal(t, []string{".peer:focus ~ "}, parsed.SelectorPrefixes)

	t.Run("named", func(t *testing.T) {
		parsed := ParseClassName("group-hover/sidebar:flex")
		assert.Equal(t, []string{`.group\/sidebar:hover `}, parsed.SelectorPrefixes)
	})
}

func TestParseClassNameBracketVariants(t *testing.T) {
	t.Run("min max width", func(t *testing.T) {
		parsed := ParseClassName("min-[600px]:flex")
		assert.Equal(t, "flex", parsed.Utility)
		assert.Equal(t, []string{"(min-width:600px)"}, parsed.MediaQueries)

		parsed = ParseClassName("max-[900px]:hidden")
		assert.Equal(t, []string{"(max-width:900px)"}, parsed.MediaQueries)
	})

	t.Run("supports", func(t *testing.T) {
		parsed := ParseClassName("supports-[display:grid]:grid")
		assert.Equal(t, []string{"(display:grid)"}, parsed.MediaQueries)
	})

	t.Run("data and aria", func(t *testing.T) {
		parsed := ParseClassName("data-[open]:block")
		assert.Equal(t, []string{"[data-open]"}, parsed.PseudoClasses)

		parsed = ParseClassName("aria-[expanded=true]:rotate-180")
		assert.Equal(t, []string{"[aria-expanded=true]"}, parsed.PseudoClasses)
	})

	t.Run("colon inside brackets survives", func(t *testing.T) {
		parsed := ParseClassName("supports-[display:grid]:hover:grid")
		assert.Equal(t, "grid", parsed.Utility)
		assert.Equal(t, []string{"(display:grid)"}, parsed.MediaQueries)
		assert.Equal(t, []string{":hover"}, parsed.PseudoClasses)
	})
}

func TestParseClassNameMediaVariants(t *testing.T) {
	parsed := ParseClassName("motion-reduce:transition-none")
	assert.Equal(t, []string{"(prefers-reduced-motion:reduce)"}, parsed.MediaQueries)

	parsed = ParseClassName("print:hidden")
	assert.Equal(t, []string{"print"}, parsed.MediaQueries)
}

func TestParseClassNameUnknownVariant(t *testing.T) {
	// An unknown prefix stops consumption; the remainder becomes the
	// utility and will fail resolution downstream.
	parsed := ParseClassName("bogus:hover:p-4")
	assert.Equal(t, "p-4", parsed.Utility)
	assert.Empty(t, parsed.PseudoClasses)
}

func TestIsValidVariant(t *testing.T) {
	for _, name := range []string{"hover", "focus", "md", "dark", "before", "group-hover", "custom", "motion-safe", "min-[500px]"} {
		assert.True(t, IsValidVariant(name), name)
	}
	for _, name := range []string{"bogus", "", "hover2"} {
		assert.False(t, IsValidVariant(name), name)
	}
}

func TestEscapeSelector(t *testing.T) {
	cases := map[string]string{
		"p-4":            "p-4",
		"w-1/2":          `w-1\/2`,
		"hover:flex":     `hover\:flex`,
		"bg-[#161b22]":   `bg-\[\#161b22\]`,
		"!p-4":           `\!p-4`,
		"bg-red-500/50":  `bg-red-500\/50`,
		"min-[600px]:p-4": `min-\[600px\]\:p-4`,
	}
	for in, want := range cases {
		assert.Equal(t, want, EscapeSelector(in), in)
	}
}

func TestSplitVariantChain(t *testing.T) {
	require.Equal(t, []string{"hover", "p-4"}, splitVariantChain("hover:p-4"))
	require.Equal(t, []string{"min-[600px]", "hover", "p-4"}, splitVariantChain("min-[600px]:hover:p-4"))
	require.Equal(t, []string{"p-4"}, splitVariantChain("p-4"))
	require.Equal(t, []string{"supports-[display:grid]", "grid"}, splitVariantChain("supports-[display:grid]:grid"))
}

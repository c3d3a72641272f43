package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLayout(t *testing.T) {
	t.Run("display", func(t *testing.T) {
		r := Resolve("flex")
		require.NotNil(t, r)
		assert.Equal(t, "display:flex;", r.Declarations)
		assert.False(t, r.IsCustom())

		r = Resolve("hidden")
		require.NotNil(t, r)
		assert.Equal(t, "display:none;", r.Declarations)
	})

	t.Run("container", func(t *testing.T) {
		r := Resolve("container")
		require.NotNil(t, r)
		assert.Equal(t, "width:100%;", r.Declarations)
	})

	t.Run("columns", func(t *testing.T) {
		r := Resolve("columns-3")
		require.NotNil(t, r)
		assert.Equal(t, "columns:3;", r.Declarations)

		r = Resolve("columns-md")
		require.NotNil(t, r)
		assert.Equal(t, "columns:28rem;", r.Declarations)

		assert.Nil(t, Resolve("columns-13"))
	})
}

func TestResolveFlexbox(t *testing.T) {
	r := Resolve("items-center")
	require.NotNil(t, r)
	assert.Equal(t, "align-items:center;", r.Declarations)

	r = Resolve("flex-1")
	require.NotNil(t, r)
	assert.Equal(t, "flex:1 1 0%;", r.Declarations)

	t.Run("order", func(t *testing.T) {
		r := Resolve("order-first")
		require.NotNil(t, r)
		assert.Equal(t, "order:-9999;", r.Declarations)

		r = Resolve("order-3")
		require.NotNil(t, r)
		assert.Equal(t, "order:3;", r.Declarations)
	})
}

func TestResolveGrid(t *testing.T) {
	r := Resolve("grid-cols-3")
	require.NotNil(t, r)
	assert.Equal(t, "grid-template-columns:repeat(3,minmax(0,1fr));", r.Declarations)

	r = Resolve("col-span-2")
	require.NotNil(t, r)
	assert.Equal(t, "grid-column:span 2 / span 2;", r.Declarations)

	assert.Nil(t, Resolve("grid-cols-0"))
	assert.Nil(t, Resolve("grid-cols-13"))
}

func TestResolveSpacing(t *testing.T) {
	t.Run("padding scale", func(t *testing.T) {
		cases := map[string]string{
			"p-0":  "padding:0px;",
			"p-1":  "padding:0.25rem;",
			"p-4":  "padding:1rem;",
			"p-8":  "padding:2rem;",
			"px-4": "padding-left:1rem;padding-right:1rem;",
			"pt-2": "padding-top:0.5rem;",
		}
		for class, want := range cases {
			r := Resolve(class)
			require.NotNil(t, r, class)
			assert.Equal(t, want, r.Declarations, class)
		}
	})

	t.Run("half steps", func(t *testing.T) {
		r := Resolve("p-0.5")
		require.NotNil(t, r)
		assert.Equal(t, "padding:0.125rem;", r.Declarations)

		r = Resolve("p-1.5")
		require.NotNil(t, r)
		assert.Equal(t, "padding:0.375rem;", r.Declarations)
	})

	t.Run("margin auto", func(t *testing.T) {
		r := Resolve("mx-auto")
		require.NotNil(t, r)
		assert.Equal(t, "margin-left:auto;margin-right:auto;", r.Declarations)

		r = Resolve("m-auto")
		require.NotNil(t, r)
		assert.Equal(t, "margin:auto;", r.Declarations)
	})

	t.Run("negative margin", func(t *testing.T) {
		r := Resolve("-mt-4")
		require.NotNil(t, r)
		assert.Equal(t, "margin-top:-1rem;", r.Declarations)

		r = Resolve("-mx-2")
		require.NotNil(t, r)
		assert.Equal(t, "margin-left:-0.5rem;margin-right:-0.5rem;", r.Declarations)
	})

	t.Run("space between", func(t *testing.T) {
		r := Resolve("space-x-4")
		require.NotNil(t, r)
		assert.True(t, r.IsCustom())
		assert.Equal(t, ">:not([hidden])~:not([hidden])", r.SelectorSuffix)
		assert.Equal(t, "margin-left:1rem;", r.Declarations)
	})

	t.Run("gap", func(t *testing.T) {
		r := Resolve("gap-2")
		require.NotNil(t, r)
		assert.Equal(t, "gap:0.5rem;", r.Declarations)

		r = Resolve("gap-x-4")
		require.NotNil(t, r)
		assert.Equal(t, "column-gap:1rem;", r.Declarations)
	})

	t.Run("arbitrary", func(t *testing.T) {
		r := Resolve("p-[3px]")
		require.NotNil(t, r)
		assert.Equal(t, "padding:3px;", r.Declarations)
	})
}

func TestResolveSizing(t *testing.T) {
	cases := map[string]string{
		"w-4":         "width:1rem;",
		"w-full":      "width:100%;",
		"w-screen":    "width:100vw;",
		"h-screen":    "height:100vh;",
		"w-1/2":       "width:50%;",
		"w-2/3":       "width:66.666667%;",
		"size-4":      "width:1rem;height:1rem;",
		"max-w-lg":    "max-width:32rem;",
		"max-w-prose": "max-width:65ch;",
		"min-w-0":     "min-width:0px;",
		"min-h-screen": "min-height:100vh;",
		"w-[200px]":   "width:200px;",
		"basis-1/2":   "flex-basis:50%;",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}

	t.Run("invalid fraction", func(t *testing.T) {
		assert.Nil(t, Resolve("w-3/2"))
		r := Resolve("w-4/4")
		require.NotNil(t, r)
		assert.Equal(t, "width:100%;", r.Declarations)
	})
}

func TestResolveTypography(t *testing.T) {
	cases := map[string]string{
		"text-center":  "text-align:center;",
		"text-sm":      "font-size:0.875rem;line-height:1.25rem;",
		"font-bold":    "font-weight:700;",
		"leading-none": "line-height:1;",
		"tracking-tight": "letter-spacing:-0.025em;",
		"underline":    "text-decoration-line:underline;",
		"decoration-2": "text-decoration-thickness:2px;",
		"indent-4":     "text-indent:1rem;",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}

	t.Run("color", func(t *testing.T) {
		r := Resolve("text-red-500")
		require.NotNil(t, r)
		assert.Equal(t, "color:#ef4444;", r.Declarations)

		r = Resolve("text-red-500/50")
		require.NotNil(t, r)
		assert.Equal(t, "color:rgb(239 68 68 / 0.5);", r.Declarations)
	})

	t.Run("arbitrary color", func(t *testing.T) {
		r := Resolve("text-[#e6edf3]")
		require.NotNil(t, r)
		assert.Equal(t, "color:#e6edf3;", r.Declarations)
	})
}

func TestResolveBackgrounds(t *testing.T) {
	r := Resolve("bg-blue-500")
	require.NotNil(t, r)
	assert.Equal(t, "background-color:#3b82f6;", r.Declarations)

	r = Resolve("bg-blue-500/75")
	require.NotNil(t, r)
	assert.Equal(t, "background-color:rgb(59 130 246 / 0.75);", r.Declarations)

	r = Resolve("bg-gradient-to-r")
	require.NotNil(t, r)
	assert.Contains(t, r.Declarations, "linear-gradient(to right")

	r = Resolve("from-red-500")
	require.NotNil(t, r)
	assert.Contains(t, r.Declarations, "--tw-gradient-from:#ef4444")

	r = Resolve("bg-[#161b22]")
	require.NotNil(t, r)
	assert.Equal(t, "background-color:#161b22;", r.Declarations)
}

func TestResolveBorders(t *testing.T) {
	cases := map[string]string{
		"border":         "border-width:1px;",
		"border-2":       "border-width:2px;",
		"border-t":       "border-top-width:1px;",
		"border-t-2":     "border-top-width:2px;",
		"border-red-500": "border-color:#ef4444;",
		"rounded":        "border-radius:0.25rem;",
		"rounded-lg":     "border-radius:0.5rem;",
		"rounded-full":   "border-radius:9999px;",
		"rounded-tl-lg":  "border-top-left-radius:0.5rem;",
		"outline-2":      "outline-width:2px;",
		"outline-offset-2": "outline-offset:2px;",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}

	t.Run("divide", func(t *testing.T) {
		r := Resolve("divide-x")
		require.NotNil(t, r)
		assert.True(t, r.IsCustom())
		assert.Equal(t, "border-left-width:1px;", r.Declarations)

		r = Resolve("divide-gray-200")
		require.NotNil(t, r)
		assert.True(t, r.IsCustom())
		assert.Equal(t, "border-color:#e5e7eb;", r.Declarations)
	})

	t.Run("ring", func(t *testing.T) {
		r := Resolve("ring-2")
		require.NotNil(t, r)
		assert.Contains(t, r.Declarations, "box-shadow:0 0 0 2px")

		r = Resolve("ring-blue-500")
		require.NotNil(t, r)
		assert.Equal(t, "--tw-ring-color:#3b82f6;", r.Declarations)
	})
}

func TestResolveEffects(t *testing.T) {
	r := Resolve("shadow-lg")
	require.NotNil(t, r)
	assert.Contains(t, r.Declarations, "box-shadow:")

	t.Run("opacity", func(t *testing.T) {
		cases := map[string]string{
			"opacity-0":   "opacity:0;",
			"opacity-50":  "opacity:0.5;",
			"opacity-75":  "opacity:0.75;",
			"opacity-100": "opacity:1;",
		}
		for class, want := range cases {
			r := Resolve(class)
			require.NotNil(t, r, class)
			assert.Equal(t, want, r.Declarations, class)
		}
		assert.Nil(t, Resolve("opacity-101"))
	})
}

func TestResolveTransforms(t *testing.T) {
	cases := map[string]string{
		"scale-50":        "transform:scale(0.5);",
		"scale-100":       "transform:scale(1);",
		"scale-150":       "transform:scale(1.5);",
		"rotate-45":       "transform:rotate(45deg);",
		"-rotate-45":      "transform:rotate(-45deg);",
		"translate-x-4":   "transform:translateX(1rem);",
		"-translate-y-4":  "transform:translateY(-1rem);",
		"translate-x-1/2": "transform:translateX(50%);",
		"translate-x-full": "transform:translateX(100%);",
		"skew-x-6":        "transform:skewX(6deg);",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}
}

func TestResolveFilters(t *testing.T) {
	cases := map[string]string{
		"blur":                   "filter:blur(8px);",
		"blur-lg":                "filter:blur(16px);",
		"brightness-50":          "filter:brightness(0.5);",
		"brightness-150":         "filter:brightness(1.5);",
		"grayscale":              "filter:grayscale(100%);",
		"hue-rotate-90":          "filter:hue-rotate(90deg);",
		"-hue-rotate-15":         "filter:hue-rotate(-15deg);",
		"backdrop-blur":          "backdrop-filter:blur(8px);",
		"backdrop-brightness-75": "backdrop-filter:brightness(0.75);",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}
}

func TestResolveTransitions(t *testing.T) {
	r := Resolve("transition")
	require.NotNil(t, r)
	assert.Contains(t, r.Declarations, "transition-property:color,background-color")

	r = Resolve("duration-300")
	require.NotNil(t, r)
	assert.Equal(t, "transition-duration:300ms;", r.Declarations)

	r = Resolve("animate-spin")
	require.NotNil(t, r)
	assert.Equal(t, "animation:spin 1s linear infinite;", r.Declarations)
}

func TestResolveInteractivity(t *testing.T) {
	cases := map[string]string{
		"cursor-pointer":  "cursor:pointer;",
		"select-none":     "user-select:none;",
		"accent-red-500":  "accent-color:#ef4444;",
		"accent-auto":     "accent-color:auto;",
		"caret-blue-500":  "caret-color:#3b82f6;",
		"scroll-m-4":      "scroll-margin:1rem;",
		"scroll-pl-2":     "scroll-padding-left:0.5rem;",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}
}

func TestResolveTables(t *testing.T) {
	r := Resolve("border-collapse")
	require.NotNil(t, r)
	assert.Equal(t, "border-collapse:collapse;", r.Declarations)

	r = Resolve("border-spacing-x-2")
	require.NotNil(t, r)
	assert.Equal(t, "border-spacing:0.5rem 0;", r.Declarations)
}

func TestResolveSVG(t *testing.T) {
	r := Resolve("fill-current")
	require.NotNil(t, r)
	assert.Equal(t, "fill:currentColor;", r.Declarations)

	r = Resolve("stroke-2")
	require.NotNil(t, r)
	assert.Equal(t, "stroke-width:2;", r.Declarations)

	r = Resolve("stroke-red-500")
	require.NotNil(t, r)
	assert.Equal(t, "stroke:#ef4444;", r.Declarations)
}

func TestResolveInset(t *testing.T) {
	cases := map[string]string{
		"inset-0":    "inset:0px;",
		"inset-x-0":  "left:0px;right:0px;",
		"top-1/2":    "top:50%;",
		"top-auto":   "top:auto;",
		"left-full":  "left:100%;",
		"-top-4":     "top:-1rem;",
		"-inset-x-2": "left:-0.5rem;right:-0.5rem;",
		"z-10":       "z-index:10;",
		"z-auto":     "z-index:auto;",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}
}

func TestResolveUnknown(t *testing.T) {
	assert.Nil(t, Resolve("definitely-not-real"))
	assert.Nil(t, Resolve(""))
}

func TestResolveRule(t *testing.T) {
	rule, ok := ResolveRule("p-4")
	require.True(t, ok)
	assert.Equal(t, ".p-4{padding:1rem;}", rule)

	rule, ok = ResolveRule("w-1/2")
	require.True(t, ok)
	assert.Equal(t, `.w-1\/2{width:50%;}`, rule)

	rule, ok = ResolveRule("space-x-4")
	require.True(t, ok)
	assert.Equal(t, ".space-x-4>:not([hidden])~:not([hidden]){margin-left:1rem;}", rule)

	_, ok = ResolveRule("nope-nope")
	assert.False(t, ok)
}

func TestCategory(t *testing.T) {
	cases := map[string]string{
		"flex":          "layout",
		"items-center":  "flexbox",
		"grid-cols-3":   "grid",
		"p-4":           "spacing",
		"w-full":        "sizing",
		"text-sm":       "typography",
		"bg-red-500":    "backgrounds",
		"border":        "borders",
		"shadow":        "effects",
		"rotate-45":     "transforms",
		"blur":          "filters",
		"transition":    "transitions",
		"cursor-pointer": "interactivity",
		"table-fixed":   "tables",
		"fill-current":  "svg",
		"top-0":         "inset",
	}
	for class, want := range cases {
		got, ok := Category(class)
		require.True(t, ok, class)
		assert.Equal(t, want, got, class)
	}

	_, ok := Category("not-a-thing")
	assert.False(t, ok)
}

func TestExtractColorName(t *testing.T) {
	name, ok := ExtractColorName("bg-red-500")
	require.True(t, ok)
	assert.Equal(t, "red-500", name)

	name, ok = ExtractColorName("bg-red-500/75")
	require.True(t, ok)
	assert.Equal(t, "red-500", name)

	name, ok = ExtractColorName("text-white")
	require.True(t, ok)
	assert.Equal(t, "white", name)

	_, ok = ExtractColorName("p-4")
	assert.False(t, ok)

	// Unresolvable classes never report a color.
	_, ok = ExtractColorName("bg-madeup-999")
	assert.False(t, ok)

	t.Run("prefixes follow the owning category", func(t *testing.T) {
		cases := map[string]string{
			"decoration-sky-500":   "sky-500",
			"from-amber-300":       "amber-300",
			"border-red-500":       "red-500",
			"outline-blue-500":     "blue-500",
			"ring-offset-blue-500": "blue-500",
			"ring-pink-200":        "pink-200",
			"divide-pink-200":      "pink-200",
			"shadow-red-500":       "red-500",
			"accent-green-600":     "green-600",
			"caret-red-500":        "red-500",
			"fill-red-500":         "red-500",
			"stroke-red-500":       "red-500",
		}
		for class, want := range cases {
			name, ok := ExtractColorName(class)
			require.True(t, ok, class)
			assert.Equal(t, want, name, class)

			category, ok := Category(class)
			require.True(t, ok, class)
			assert.NotEmpty(t, category, class)
		}
	})
}

func TestColorOpacityAlpha(t *testing.T) {
	cases := map[string]string{
		"bg-red-500/0":   "background-color:rgb(239 68 68 / 0);",
		"bg-red-500/5":   "background-color:rgb(239 68 68 / 0.5);",
		"bg-red-500/45":  "background-color:rgb(239 68 68 / 0.45);",
		"bg-red-500/100": "background-color:rgb(239 68 68 / 1);",
	}
	for class, want := range cases {
		r := Resolve(class)
		require.NotNil(t, r, class)
		assert.Equal(t, want, r.Declarations, class)
	}

	t.Run("transparent ignores opacity", func(t *testing.T) {
		r := Resolve("bg-transparent/50")
		require.NotNil(t, r)
		assert.Equal(t, "background-color:transparent;", r.Declarations)
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Nil(t, Resolve("bg-red-500/101"))
	})
}

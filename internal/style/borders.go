package style

import "strings"

var borderStatics = map[string]string{
	// Border width shorthand
	"border":   "border-width:1px;",
	"border-0": "border-width:0px;",
	"border-2": "border-width:2px;",
	"border-4": "border-width:4px;",
	"border-8": "border-width:8px;",

	// Per-side width, 1px default
	"border-t": "border-top-width:1px;",
	"border-r": "border-right-width:1px;",
	"border-b": "border-bottom-width:1px;",
	"border-l": "border-left-width:1px;",
	"border-x": "border-left-width:1px;border-right-width:1px;",
	"border-y": "border-top-width:1px;border-bottom-width:1px;",

	// Style
	"border-solid":  "border-style:solid;",
	"border-dashed": "border-style:dashed;",
	"border-dotted": "border-style:dotted;",
	"border-double": "border-style:double;",
	"border-hidden": "border-style:hidden;",
	"border-none":   "border-style:none;",

	// Radius shorthand
	"rounded":      "border-radius:0.25rem;",
	"rounded-none": "border-radius:0px;",
	"rounded-sm":   "border-radius:0.125rem;",
	"rounded-md":   "border-radius:0.375rem;",
	"rounded-lg":   "border-radius:0.5rem;",
	"rounded-xl":   "border-radius:0.75rem;",
	"rounded-2xl":  "border-radius:1rem;",
	"rounded-3xl":  "border-radius:1.5rem;",
	"rounded-full": "border-radius:9999px;",

	// Per-side radius, default size
	"rounded-t": "border-top-left-radius:0.25rem;border-top-right-radius:0.25rem;",
	"rounded-r": "border-top-right-radius:0.25rem;border-bottom-right-radius:0.25rem;",
	"rounded-b": "border-bottom-right-radius:0.25rem;border-bottom-left-radius:0.25rem;",
	"rounded-l": "border-top-left-radius:0.25rem;border-bottom-left-radius:0.25rem;",

	// Outline
	"outline-none":   "outline:2px solid transparent;outline-offset:2px;",
	"outline":        "outline-style:solid;",
	"outline-dashed": "outline-style:dashed;",
	"outline-dotted": "outline-style:dotted;",
	"outline-double": "outline-style:double;",

	// Ring
	"ring":       "box-shadow:0 0 0 3px rgba(59,130,246,0.5);",
	"ring-0":     "box-shadow:0 0 0 0px rgba(59,130,246,0.5);",
	"ring-1":     "box-shadow:0 0 0 1px rgba(59,130,246,0.5);",
	"ring-2":     "box-shadow:0 0 0 2px rgba(59,130,246,0.5);",
	"ring-4":     "box-shadow:0 0 0 4px rgba(59,130,246,0.5);",
	"ring-8":     "box-shadow:0 0 0 8px rgba(59,130,246,0.5);",
	"ring-inset": "--tw-ring-inset:inset;",
}

// divideStatics all target children via the divide suffix.
var divideStatics = map[string]string{
	"divide-x":      "border-left-width:1px;",
	"divide-y":      "border-top-width:1px;",
	"divide-x-0":    "border-left-width:0px;",
	"divide-y-0":    "border-top-width:0px;",
	"divide-x-2":    "border-left-width:2px;",
	"divide-y-2":    "border-top-width:2px;",
	"divide-x-4":    "border-left-width:4px;",
	"divide-y-4":    "border-top-width:4px;",
	"divide-x-8":    "border-left-width:8px;",
	"divide-y-8":    "border-top-width:8px;",
	"divide-solid":  "border-style:solid;",
	"divide-dashed": "border-style:dashed;",
	"divide-dotted": "border-style:dotted;",
	"divide-double": "border-style:double;",
	"divide-none":   "border-style:none;",
}

var radiusSizes = map[string]string{
	"none": "0px",
	"sm":   "0.125rem",
	"md":   "0.375rem",
	"lg":   "0.5rem",
	"xl":   "0.75rem",
	"2xl":  "1rem",
	"3xl":  "1.5rem",
	"full": "9999px",
}

var borderSides = []struct {
	prefix string
	props  []string
}{
	{"border-t-", []string{"border-top"}},
	{"border-r-", []string{"border-right"}},
	{"border-b-", []string{"border-bottom"}},
	{"border-l-", []string{"border-left"}},
	{"border-x-", []string{"border-left", "border-right"}},
	{"border-y-", []string{"border-top", "border-bottom"}},
}

var radiusCorners = []struct {
	prefix  string
	corners []string
}{
	{"rounded-t-", []string{"border-top-left-radius", "border-top-right-radius"}},
	{"rounded-r-", []string{"border-top-right-radius", "border-bottom-right-radius"}},
	{"rounded-b-", []string{"border-bottom-right-radius", "border-bottom-left-radius"}},
	{"rounded-l-", []string{"border-top-left-radius", "border-bottom-left-radius"}},
	{"rounded-tl-", []string{"border-top-left-radius"}},
	{"rounded-tr-", []string{"border-top-right-radius"}},
	{"rounded-bl-", []string{"border-bottom-left-radius"}},
	{"rounded-br-", []string{"border-bottom-right-radius"}},
}

func resolveBorders(class string) *ResolvedUtility {
	if decls, ok := borderStatics[class]; ok {
		return standard(decls)
	}
	if decls, ok := divideStatics[class]; ok {
		return custom(spaceChildSuffix, decls)
	}

	for _, side := range borderSides {
		rest, ok := strings.CutPrefix(class, side.prefix)
		if !ok {
			continue
		}
		if n, found := parseUint(rest); found {
			var b strings.Builder
			for _, p := range side.props {
				b.WriteString(p)
				b.WriteString("-width:")
				b.WriteString(uintString(n))
				b.WriteString("px;")
			}
			return standard(b.String())
		}
		// Axis forms take a width only; single sides also take a color.
		if len(side.props) == 1 {
			if decls, found := resolveColorWithOpacity(rest, side.props[0]+"-color"); found {
				return standard(decls)
			}
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "border-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("border-width:%dpx;", n)
		}
		if decls, found := resolveColorWithOpacity(rest, "border-color"); found {
			return standard(decls)
		}
		if val, found := parseArbitrary(rest); found {
			return standardf("border-color:%s;", val)
		}
		return nil
	}

	for _, corner := range radiusCorners {
		rest, ok := strings.CutPrefix(class, corner.prefix)
		if !ok {
			continue
		}
		val, found := radiusSizes[rest]
		if !found {
			return nil
		}
		var b strings.Builder
		for _, c := range corner.corners {
			b.WriteString(c)
			b.WriteByte(':')
			b.WriteString(val)
			b.WriteByte(';')
		}
		return standard(b.String())
	}

	if rest, ok := strings.CutPrefix(class, "outline-offset-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("outline-offset:%dpx;", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "outline-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("outline-width:%dpx;", n)
		}
		if decls, found := resolveColorWithOpacity(rest, "outline-color"); found {
			return standard(decls)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "ring-offset-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("--tw-ring-offset-width:%dpx;box-shadow:0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color),var(--tw-ring-shadow);", n)
		}
		if hex, found := ColorHex(rest); found {
			return standardf("--tw-ring-offset-color:%s;", hex)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "ring-"); ok {
		if hex, found := ColorHex(rest); found {
			return standardf("--tw-ring-color:%s;", hex)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "divide-"); ok {
		if hex, found := ColorHex(rest); found {
			return custom(spaceChildSuffix, "border-color:"+hex+";")
		}
	}
	return nil
}

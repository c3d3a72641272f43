package style

import "strings"

// dimensionKeywords are shared by w-, h-, and size-. The screen keyword is
// axis dependent and handled separately.
func dimensionKeyword(rest string) (string, bool) {
	switch rest {
	case "auto":
		return "auto", true
	case "full":
		return "100%", true
	case "svw":
		return "100svw", true
	case "svh":
		return "100svh", true
	case "lvw":
		return "100lvw", true
	case "lvh":
		return "100lvh", true
	case "dvw":
		return "100dvw", true
	case "dvh":
		return "100dvh", true
	case "min":
		return "min-content", true
	case "max":
		return "max-content", true
	case "fit":
		return "fit-content", true
	case "px":
		return "1px", true
	}
	return "", false
}

func resolveDimension(rest, property, screenUnit string) *ResolvedUtility {
	if rest == "screen" {
		return standardf("%s:100%s;", property, screenUnit)
	}
	if val, ok := dimensionKeyword(rest); ok {
		return standardf("%s:%s;", property, val)
	}
	if pct, ok := parseFraction(rest); ok {
		return standardf("%s:%s;", property, pct)
	}
	if val, ok := parseSpacing(rest); ok {
		return standardf("%s:%s;", property, val)
	}
	return nil
}

var maxWidthSizes = map[string]string{
	"none": "none",
	"0":    "0rem",
	"xs":   "20rem", "sm": "24rem", "md": "28rem", "lg": "32rem",
	"xl": "36rem", "2xl": "42rem", "3xl": "48rem", "4xl": "56rem",
	"5xl": "64rem", "6xl": "72rem", "7xl": "80rem",
	"full": "100%", "min": "min-content", "max": "max-content",
	"fit": "fit-content", "prose": "65ch",
	"screen-sm": "640px", "screen-md": "768px", "screen-lg": "1024px",
	"screen-xl": "1280px", "screen-2xl": "1536px", "screen": "100vw",
}

func resolveSizing(class string) *ResolvedUtility {
	if rest, ok := strings.CutPrefix(class, "basis-"); ok {
		switch rest {
		case "auto":
			return standard("flex-basis:auto;")
		case "full":
			return standard("flex-basis:100%;")
		case "px":
			return standard("flex-basis:1px;")
		}
		if pct, found := parseFraction(rest); found {
			return standardf("flex-basis:%s;", pct)
		}
		if val, found := parseSpacing(rest); found {
			return standardf("flex-basis:%s;", val)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "size-"); ok {
		val, found := dimensionKeyword(rest)
		if !found {
			if val, found = parseFraction(rest); !found {
				if val, found = parseSpacing(rest); !found {
					return nil
				}
			}
		}
		return standardf("width:%s;height:%s;", val, val)
	}

	if rest, ok := strings.CutPrefix(class, "max-w-"); ok {
		if val, found := maxWidthSizes[rest]; found {
			return standardf("max-width:%s;", val)
		}
		if val, found := parseSpacing(rest); found {
			return standardf("max-width:%s;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "max-h-"); ok {
		switch rest {
		case "none":
			return standard("max-height:none;")
		case "full":
			return standard("max-height:100%;")
		case "screen":
			return standard("max-height:100vh;")
		case "min":
			return standard("max-height:min-content;")
		case "max":
			return standard("max-height:max-content;")
		case "fit":
			return standard("max-height:fit-content;")
		}
		if val, found := parseSpacing(rest); found {
			return standardf("max-height:%s;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "min-w-"); ok {
		switch rest {
		case "0":
			return standard("min-width:0px;")
		case "full":
			return standard("min-width:100%;")
		case "min":
			return standard("min-width:min-content;")
		case "max":
			return standard("min-width:max-content;")
		case "fit":
			return standard("min-width:fit-content;")
		}
		if val, found := parseSpacing(rest); found {
			return standardf("min-width:%s;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "min-h-"); ok {
		switch rest {
		case "0":
			return standard("min-height:0px;")
		case "full":
			return standard("min-height:100%;")
		case "screen":
			return standard("min-height:100vh;")
		case "svh":
			return standard("min-height:100svh;")
		case "lvh":
			return standard("min-height:100lvh;")
		case "dvh":
			return standard("min-height:100dvh;")
		case "min":
			return standard("min-height:min-content;")
		case "max":
			return standard("min-height:max-content;")
		case "fit":
			return standard("min-height:fit-content;")
		}
		if val, found := parseSpacing(rest); found {
			return standardf("min-height:%s;", val)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "w-"); ok {
		return resolveDimension(rest, "width", "vw")
	}
	if rest, ok := strings.CutPrefix(class, "h-"); ok {
		return resolveDimension(rest, "height", "vh")
	}
	return nil
}

package style

import "strings"

var svgStatics = map[string]string{
	"fill-none":      "fill:none;",
	"fill-current":   "fill:currentColor;",
	"fill-inherit":   "fill:inherit;",
	"stroke-none":    "stroke:none;",
	"stroke-current": "stroke:currentColor;",
	"stroke-inherit": "stroke:inherit;",
}

func resolveSVG(class string) *ResolvedUtility {
	if decls, ok := svgStatics[class]; ok {
		return standard(decls)
	}
	if rest, ok := strings.CutPrefix(class, "fill-"); ok {
		if hex, found := ColorHex(rest); found {
			return standardf("fill:%s;", hex)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "stroke-"); ok {
		// Widths shadow colors: stroke-2 is a width, stroke-red-500 a color.
		if n, found := parseUint(rest); found {
			return standardf("stroke-width:%d;", n)
		}
		if hex, found := ColorHex(rest); found {
			return standardf("stroke:%s;", hex)
		}
	}
	return nil
}

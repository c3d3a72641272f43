package style

import "strings"

var layoutStatics = map[string]string{
	// Display
	"block":              "display:block;",
	"inline":             "display:inline;",
	"inline-block":       "display:inline-block;",
	"flex":               "display:flex;",
	"inline-flex":        "display:inline-flex;",
	"grid":               "display:grid;",
	"inline-grid":        "display:inline-grid;",
	"hidden":             "display:none;",
	"table":              "display:table;",
	"table-row":          "display:table-row;",
	"table-cell":         "display:table-cell;",
	"table-caption":      "display:table-caption;",
	"table-column":       "display:table-column;",
	"table-column-group": "display:table-column-group;",
	"table-footer-group": "display:table-footer-group;",
	"table-header-group": "display:table-header-group;",
	"table-row-group":    "display:table-row-group;",
	"contents":           "display:contents;",
	"list-item":          "display:list-item;",
	"flow-root":          "display:flow-root;",
	"container":          "width:100%;",

	// Position
	"relative": "position:relative;",
	"absolute": "position:absolute;",
	"fixed":    "position:fixed;",
	"sticky":   "position:sticky;",
	"static":   "position:static;",

	// Float / Clear
	"float-right": "float:right;",
	"float-left":  "float:left;",
	"float-none":  "float:none;",
	"clear-left":  "clear:left;",
	"clear-right": "clear:right;",
	"clear-both":  "clear:both;",
	"clear-none":  "clear:none;",

	// Visibility
	"visible":   "visibility:visible;",
	"invisible": "visibility:hidden;",
	"collapse":  "visibility:collapse;",

	// Box sizing
	"box-border":  "box-sizing:border-box;",
	"box-content": "box-sizing:content-box;",

	// Isolation
	"isolate":        "isolation:isolate;",
	"isolation-auto": "isolation:auto;",

	// Aspect ratio
	"aspect-auto":   "aspect-ratio:auto;",
	"aspect-square": "aspect-ratio:1 / 1;",
	"aspect-video":  "aspect-ratio:16 / 9;",

	// Object fit
	"object-contain":    "object-fit:contain;",
	"object-cover":      "object-fit:cover;",
	"object-fill":       "object-fit:fill;",
	"object-none":       "object-fit:none;",
	"object-scale-down": "object-fit:scale-down;",

	// Object position
	"object-bottom":       "object-position:bottom;",
	"object-center":       "object-position:center;",
	"object-left":         "object-position:left;",
	"object-left-bottom":  "object-position:left bottom;",
	"object-left-top":     "object-position:left top;",
	"object-right":        "object-position:right;",
	"object-right-bottom": "object-position:right bottom;",
	"object-right-top":    "object-position:right top;",
	"object-top":          "object-position:top;",

	// Overflow
	"overflow-hidden":    "overflow:hidden;",
	"overflow-auto":      "overflow:auto;",
	"overflow-scroll":    "overflow:scroll;",
	"overflow-visible":   "overflow:visible;",
	"overflow-clip":      "overflow:clip;",
	"overflow-x-auto":    "overflow-x:auto;",
	"overflow-y-auto":    "overflow-y:auto;",
	"overflow-x-hidden":  "overflow-x:hidden;",
	"overflow-y-hidden":  "overflow-y:hidden;",
	"overflow-x-clip":    "overflow-x:clip;",
	"overflow-y-clip":    "overflow-y:clip;",
	"overflow-x-visible": "overflow-x:visible;",
	"overflow-y-visible": "overflow-y:visible;",
	"overflow-x-scroll":  "overflow-x:scroll;",
	"overflow-y-scroll":  "overflow-y:scroll;",

	// Overscroll
	"overscroll-auto":      "overscroll-behavior:auto;",
	"overscroll-contain":   "overscroll-behavior:contain;",
	"overscroll-none":      "overscroll-behavior:none;",
	"overscroll-x-auto":    "overscroll-behavior-x:auto;",
	"overscroll-x-contain": "overscroll-behavior-x:contain;",
	"overscroll-x-none":    "overscroll-behavior-x:none;",
	"overscroll-y-auto":    "overscroll-behavior-y:auto;",
	"overscroll-y-contain": "overscroll-behavior-y:contain;",
	"overscroll-y-none":    "overscroll-behavior-y:none;",

	// Break after
	"break-after-auto":       "break-after:auto;",
	"break-after-avoid":      "break-after:avoid;",
	"break-after-all":        "break-after:all;",
	"break-after-avoid-page": "break-after:avoid-page;",
	"break-after-page":       "break-after:page;",
	"break-after-left":       "break-after:left;",
	"break-after-right":      "break-after:right;",
	"break-after-column":     "break-after:column;",

	// Break before
	"break-before-auto":       "break-before:auto;",
	"break-before-avoid":      "break-before:avoid;",
	"break-before-all":        "break-before:all;",
	"break-before-avoid-page": "break-before:avoid-page;",
	"break-before-page":       "break-before:page;",
	"break-before-left":       "break-before:left;",
	"break-before-right":      "break-before:right;",
	"break-before-column":     "break-before:column;",

	// Break inside
	"break-inside-auto":         "break-inside:auto;",
	"break-inside-avoid":        "break-inside:avoid;",
	"break-inside-avoid-page":   "break-inside:avoid-page;",
	"break-inside-avoid-column": "break-inside:avoid-column;",

	// Screen reader
	"sr-only":     "position:absolute;width:1px;height:1px;padding:0;margin:-1px;overflow:hidden;clip:rect(0,0,0,0);white-space:nowrap;border-width:0;",
	"not-sr-only": "position:static;width:auto;height:auto;padding:0;margin:0;overflow:visible;clip:auto;white-space:normal;",
}

var columnSizes = map[string]string{
	"auto": "auto",
	"3xs":  "16rem", "2xs": "18rem", "xs": "20rem", "sm": "24rem",
	"md": "28rem", "lg": "32rem", "xl": "36rem", "2xl": "42rem",
	"3xl": "48rem", "4xl": "56rem", "5xl": "64rem", "6xl": "72rem",
	"7xl": "80rem",
}

func resolveLayout(class string) *ResolvedUtility {
	if decls, ok := layoutStatics[class]; ok {
		return standard(decls)
	}
	if rest, ok := strings.CutPrefix(class, "columns-"); ok {
		if size, found := columnSizes[rest]; found {
			return standardf("columns:%s;", size)
		}
		if n, found := parseUint(rest); found && n >= 1 && n <= 12 {
			return standardf("columns:%d;", n)
		}
	}
	return nil
}

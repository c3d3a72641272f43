package style

import "strings"

var backgroundStatics = map[string]string{
	// Gradient directions
	"bg-gradient-to-t":  "background-image:linear-gradient(to top,var(--tw-gradient-stops));",
	"bg-gradient-to-tr": "background-image:linear-gradient(to top right,var(--tw-gradient-stops));",
	"bg-gradient-to-r":  "background-image:linear-gradient(to right,var(--tw-gradient-stops));",
	"bg-gradient-to-br": "background-image:linear-gradient(to bottom right,var(--tw-gradient-stops));",
	"bg-gradient-to-b":  "background-image:linear-gradient(to bottom,var(--tw-gradient-stops));",
	"bg-gradient-to-bl": "background-image:linear-gradient(to bottom left,var(--tw-gradient-stops));",
	"bg-gradient-to-l":  "background-image:linear-gradient(to left,var(--tw-gradient-stops));",
	"bg-gradient-to-tl": "background-image:linear-gradient(to top left,var(--tw-gradient-stops));",
	"bg-none":           "background-image:none;",

	// Size
	"bg-auto":    "background-size:auto;",
	"bg-cover":   "background-size:cover;",
	"bg-contain": "background-size:contain;",

	// Position
	"bg-center":       "background-position:center;",
	"bg-top":          "background-position:top;",
	"bg-right":        "background-position:right;",
	"bg-bottom":       "background-position:bottom;",
	"bg-left":         "background-position:left;",
	"bg-left-bottom":  "background-position:left bottom;",
	"bg-left-top":     "background-position:left top;",
	"bg-right-bottom": "background-position:right bottom;",
	"bg-right-top":    "background-position:right top;",

	// Repeat
	"bg-repeat":       "background-repeat:repeat;",
	"bg-no-repeat":    "background-repeat:no-repeat;",
	"bg-repeat-x":     "background-repeat:repeat-x;",
	"bg-repeat-y":     "background-repeat:repeat-y;",
	"bg-repeat-round": "background-repeat:round;",
	"bg-repeat-space": "background-repeat:space;",

	// Attachment
	"bg-fixed":  "background-attachment:fixed;",
	"bg-local":  "background-attachment:local;",
	"bg-scroll": "background-attachment:scroll;",

	// Clip
	"bg-clip-border":  "background-clip:border-box;",
	"bg-clip-padding": "background-clip:padding-box;",
	"bg-clip-content": "background-clip:content-box;",
	"bg-clip-text":    "-webkit-background-clip:text;background-clip:text;",

	// Origin
	"bg-origin-border":  "background-origin:border-box;",
	"bg-origin-padding": "background-origin:padding-box;",
	"bg-origin-content": "background-origin:content-box;",
}

func resolveBackgrounds(class string) *ResolvedUtility {
	if decls, ok := backgroundStatics[class]; ok {
		return standard(decls)
	}

	if rest, ok := strings.CutPrefix(class, "bg-"); ok {
		if decls, found := resolveColorWithOpacity(rest, "background-color"); found {
			return standard(decls)
		}
		if val, found := parseArbitrary(rest); found {
			return standardf("background-color:%s;", val)
		}
		return nil
	}

	// Gradient stops carry a color only, no opacity modifier.
	if rest, ok := strings.CutPrefix(class, "from-"); ok {
		if hex, found := ColorHex(rest); found {
			return standardf("--tw-gradient-from:%s var(--tw-gradient-from-position);--tw-gradient-to:rgb(255 255 255 / 0) var(--tw-gradient-to-position);--tw-gradient-stops:var(--tw-gradient-from),var(--tw-gradient-to);", hex)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "via-"); ok {
		if hex, found := ColorHex(rest); found {
			return standardf("--tw-gradient-to:rgb(255 255 255 / 0) var(--tw-gradient-to-position);--tw-gradient-stops:var(--tw-gradient-from),%s var(--tw-gradient-via-position),var(--tw-gradient-to);", hex)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "to-"); ok {
		if hex, found := ColorHex(rest); found {
			return standardf("--tw-gradient-to:%s var(--tw-gradient-to-position);", hex)
		}
	}
	return nil
}

package style

import "strings"

var filterStatics = map[string]string{
	// Blur
	"blur-none": "filter:blur(0);",
	"blur-sm":   "filter:blur(4px);",
	"blur":      "filter:blur(8px);",
	"blur-md":   "filter:blur(12px);",
	"blur-lg":   "filter:blur(16px);",
	"blur-xl":   "filter:blur(24px);",
	"blur-2xl":  "filter:blur(40px);",
	"blur-3xl":  "filter:blur(64px);",

	"grayscale":   "filter:grayscale(100%);",
	"grayscale-0": "filter:grayscale(0);",
	"invert":      "filter:invert(100%);",
	"invert-0":    "filter:invert(0);",
	"sepia":       "filter:sepia(100%);",
	"sepia-0":     "filter:sepia(0);",

	// Drop shadow
	"drop-shadow-sm":   "filter:drop-shadow(0 1px 1px rgba(0,0,0,0.05));",
	"drop-shadow":      "filter:drop-shadow(0 1px 2px rgba(0,0,0,0.1)) drop-shadow(0 1px 1px rgba(0,0,0,0.06));",
	"drop-shadow-md":   "filter:drop-shadow(0 4px 3px rgba(0,0,0,0.07)) drop-shadow(0 2px 2px rgba(0,0,0,0.06));",
	"drop-shadow-lg":   "filter:drop-shadow(0 10px 8px rgba(0,0,0,0.04)) drop-shadow(0 4px 3px rgba(0,0,0,0.1));",
	"drop-shadow-xl":   "filter:drop-shadow(0 20px 13px rgba(0,0,0,0.03)) drop-shadow(0 8px 5px rgba(0,0,0,0.08));",
	"drop-shadow-2xl":  "filter:drop-shadow(0 25px 25px rgba(0,0,0,0.15));",
	"drop-shadow-none": "filter:drop-shadow(0 0 #0000);",

	// Backdrop blur
	"backdrop-blur-none": "backdrop-filter:blur(0);",
	"backdrop-blur-sm":   "backdrop-filter:blur(4px);",
	"backdrop-blur":      "backdrop-filter:blur(8px);",
	"backdrop-blur-md":   "backdrop-filter:blur(12px);",
	"backdrop-blur-lg":   "backdrop-filter:blur(16px);",
	"backdrop-blur-xl":   "backdrop-filter:blur(24px);",
	"backdrop-blur-2xl":  "backdrop-filter:blur(40px);",
	"backdrop-blur-3xl":  "backdrop-filter:blur(64px);",

	"backdrop-grayscale":   "backdrop-filter:grayscale(100%);",
	"backdrop-grayscale-0": "backdrop-filter:grayscale(0);",
	"backdrop-invert":      "backdrop-filter:invert(100%);",
	"backdrop-invert-0":    "backdrop-filter:invert(0);",
	"backdrop-sepia":       "backdrop-filter:sepia(100%);",
	"backdrop-sepia-0":     "backdrop-filter:sepia(0);",
}

// filterPercent allows values above 100, e.g. brightness-150 is 1.5.
func filterPercent(n uint) string {
	switch {
	case n == 0:
		return "0"
	case n == 100:
		return "1"
	case n%100 == 0:
		return uintString(n / 100)
	case n%10 == 0:
		return uintString(n/100) + "." + uintString((n%100)/10)
	default:
		return uintString(n/100) + "." + uintString(n%100)
	}
}

var filterFunctions = []struct {
	prefix   string
	property string
	fn       string
}{
	{"brightness-", "filter", "brightness"},
	{"contrast-", "filter", "contrast"},
	{"saturate-", "filter", "saturate"},
	{"backdrop-brightness-", "backdrop-filter", "brightness"},
	{"backdrop-contrast-", "backdrop-filter", "contrast"},
	{"backdrop-saturate-", "backdrop-filter", "saturate"},
}

func resolveFilters(class string) *ResolvedUtility {
	if decls, ok := filterStatics[class]; ok {
		return standard(decls)
	}

	for _, f := range filterFunctions {
		if rest, ok := strings.CutPrefix(class, f.prefix); ok {
			if n, found := parseUint(rest); found {
				return standardf("%s:%s(%s);", f.property, f.fn, filterPercent(n))
			}
			return nil
		}
	}

	if rest, ok := strings.CutPrefix(class, "-hue-rotate-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("filter:hue-rotate(-%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "hue-rotate-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("filter:hue-rotate(%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "backdrop-hue-rotate-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("backdrop-filter:hue-rotate(%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "backdrop-opacity-"); ok {
		if n, found := parseUint(rest); found && n <= 100 {
			return standardf("backdrop-filter:opacity(%s);", filterPercent(n))
		}
	}
	return nil
}

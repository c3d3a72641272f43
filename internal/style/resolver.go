package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolvedUtility is the output of resolving one utility class. Standard
// utilities carry only declarations; custom utilities (divide-*, space-x/y)
// also carry a child-selector suffix.
type ResolvedUtility struct {
	Declarations string
	// SelectorSuffix is non-empty for utilities that style children, e.g.
	// ">:not([hidden])~:not([hidden])".
	SelectorSuffix string
}

// IsCustom reports whether the utility targets child elements.
func (r *ResolvedUtility) IsCustom() bool {
	return r.SelectorSuffix != ""
}

func standard(decls string) *ResolvedUtility {
	return &ResolvedUtility{Declarations: decls}
}

func standardf(format string, args ...any) *ResolvedUtility {
	return &ResolvedUtility{Declarations: fmt.Sprintf(format, args...)}
}

func custom(suffix, decls string) *ResolvedUtility {
	return &ResolvedUtility{SelectorSuffix: suffix, Declarations: decls}
}

// categoryTable drives Resolve, Category, and ExtractColorName from one
// ordered list, so the three can never disagree. Order matters: earlier
// categories win overlapping prefixes. colorPrefixes lists the prefixes in
// the category whose remainder can be a palette color.
var categoryTable = []struct {
	name          string
	resolve       func(string) *ResolvedUtility
	colorPrefixes []string
}{
	{"layout", resolveLayout, nil},
	{"flexbox", resolveFlexbox, nil},
	{"grid", resolveGrid, nil},
	{"spacing", resolveSpacing, nil},
	{"sizing", resolveSizing, nil},
	{"typography", resolveTypography, []string{"text-", "decoration-"}},
	{"backgrounds", resolveBackgrounds, []string{"bg-", "from-", "via-", "to-"}},
	{"borders", resolveBorders, []string{"border-", "outline-", "ring-offset-", "ring-", "divide-"}},
	{"effects", resolveEffects, []string{"shadow-"}},
	{"transforms", resolveTransforms, nil},
	{"filters", resolveFilters, nil},
	{"transitions", resolveTransitions, nil},
	{"interactivity", resolveInteractivity, []string{"accent-", "caret-"}},
	{"tables", resolveTables, nil},
	{"svg", resolveSVG, []string{"fill-", "stroke-"}},
	{"inset", resolveInset, nil},
}

// Resolve maps a bare utility name to declarations. Returns nil for unknown
// utilities; the caller decides whether that is a diagnostic.
func Resolve(utility string) *ResolvedUtility {
	for _, cat := range categoryTable {
		if r := cat.resolve(utility); r != nil {
			return r
		}
	}
	return nil
}

// ResolveRule maps a utility to a complete CSS rule, selector included.
func ResolveRule(utility string) (string, bool) {
	r := Resolve(utility)
	if r == nil {
		return "", false
	}
	return "." + EscapeSelector(utility) + r.SelectorSuffix + "{" + r.Declarations + "}", true
}

// Category names the category that resolves the utility, or "" when none
// does. Derived from the same table as Resolve.
func Category(utility string) (string, bool) {
	for _, cat := range categoryTable {
		if cat.resolve(utility) != nil {
			return cat.name, true
		}
	}
	return "", false
}

// ExtractColorName returns the palette color a utility refers to, e.g.
// "red-500" from "bg-red-500/75". Only utilities that actually resolve
// report a color, and only the prefixes of the category that resolved them
// are consulted.
func ExtractColorName(utility string) (string, bool) {
	for _, cat := range categoryTable {
		if cat.resolve(utility) == nil {
			continue
		}
		for _, prefix := range cat.colorPrefixes {
			rest, ok := strings.CutPrefix(utility, prefix)
			if !ok {
				continue
			}
			if slash := strings.IndexByte(rest, '/'); slash >= 0 {
				rest = rest[:slash]
			}
			if _, found := ColorHex(rest); found {
				return rest, true
			}
		}
		return "", false
	}
	return "", false
}

// spacingValue converts a spacing-scale step to a CSS length: 0 is "0px",
// otherwise n quarter-rems.
func spacingValue(n uint) string {
	if n == 0 {
		return "0px"
	}
	whole := n / 4
	switch n % 4 {
	case 1:
		return fmt.Sprintf("%d.25rem", whole)
	case 2:
		return fmt.Sprintf("%d.5rem", whole)
	case 3:
		return fmt.Sprintf("%d.75rem", whole)
	default:
		return fmt.Sprintf("%drem", whole)
	}
}

func uintString(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

// parseUint parses a non-negative decimal with no sign or separators.
func parseUint(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// parseFractionalSpacing handles the half steps: "0.5" is 0.125rem, "1.5" is
// 0.375rem, and so on.
func parseFractionalSpacing(s string) (string, bool) {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || frac != "5" {
		return "", false
	}
	n, ok := parseUint(whole)
	if !ok {
		return "", false
	}
	// n.5 steps land on odd multiples of 0.125rem.
	return fmt.Sprintf("0.%drem", (n*2+1)*125), true
}

// fractionTable is the fixed fraction-to-percentage mapping. Anything not
// listed (and not num==den) does not resolve.
var fractionTable = map[string]string{
	"1/2": "50%",
	"1/3": "33.333333%", "2/3": "66.666667%",
	"1/4": "25%", "2/4": "50%", "3/4": "75%",
	"1/5": "20%", "2/5": "40%", "3/5": "60%", "4/5": "80%",
	"1/6": "16.666667%", "2/6": "33.333333%", "3/6": "50%",
	"4/6": "66.666667%", "5/6": "83.333333%",
	"1/12": "8.333333%", "2/12": "16.666667%", "3/12": "25%",
	"4/12": "33.333333%", "5/12": "41.666667%", "6/12": "50%",
	"7/12": "58.333333%", "8/12": "66.666667%", "9/12": "75%",
	"10/12": "83.333333%", "11/12": "91.666667%",
}

// parseFraction resolves "1/2" style values. num==den is always 100%;
// num>den never resolves.
func parseFraction(s string) (string, bool) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return "", false
	}
	num, okN := parseUint(numStr)
	den, okD := parseUint(denStr)
	if !okN || !okD || den == 0 || num > den {
		return "", false
	}
	if num == den {
		return "100%", true
	}
	pct, found := fractionTable[s]
	return pct, found
}

// parseArbitrary unwraps a bracketed value: "[200px]" yields "200px".
func parseArbitrary(s string) (string, bool) {
	if len(s) > 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// parseSpacing accepts an integer step, a half step, or an arbitrary value.
func parseSpacing(s string) (string, bool) {
	if n, ok := parseUint(s); ok {
		return spacingValue(n), true
	}
	if v, ok := parseFractionalSpacing(s); ok {
		return v, true
	}
	if v, ok := parseArbitrary(s); ok {
		return v, true
	}
	return "", false
}

// resolveColorWithOpacity renders "red-500/50" style values as
// "prop:rgb(r g b / a);" and plain palette names as "prop:hex;". Opacity is
// a 0-100 percentage; transparent ignores it.
func resolveColorWithOpacity(colorPart, property string) (string, bool) {
	name, opacityStr, hasOpacity := strings.Cut(colorPart, "/")
	if !hasOpacity {
		hex, ok := ColorHex(colorPart)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s:%s;", property, hex), true
	}

	opacity, ok := parseUint(opacityStr)
	if !ok || opacity > 100 {
		return "", false
	}
	hex, ok := ColorHex(name)
	if !ok {
		return "", false
	}
	if hex == "transparent" {
		return fmt.Sprintf("%s:transparent;", property), true
	}
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return "", false
	}
	var alpha string
	switch {
	case opacity == 100:
		alpha = "1"
	case opacity == 0:
		alpha = "0"
	case opacity%10 == 0:
		alpha = fmt.Sprintf("0.%d", opacity/10)
	default:
		alpha = fmt.Sprintf("0.%d", opacity)
	}
	return fmt.Sprintf("%s:rgb(%d %d %d / %s);", property, r, g, b, alpha), true
}

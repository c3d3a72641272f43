package style

import "strings"

var negativeInsets = []struct {
	prefix string
	props  []string
}{
	{"-inset-x-", []string{"left", "right"}},
	{"-inset-y-", []string{"top", "bottom"}},
	{"-inset-", []string{"inset"}},
	{"-top-", []string{"top"}},
	{"-right-", []string{"right"}},
	{"-bottom-", []string{"bottom"}},
	{"-left-", []string{"left"}},
	{"-start-", []string{"inset-inline-start"}},
	{"-end-", []string{"inset-inline-end"}},
}

var positiveInsets = []struct {
	prefix string
	props  []string
}{
	{"inset-x-", []string{"left", "right"}},
	{"inset-y-", []string{"top", "bottom"}},
	{"inset-", []string{"inset"}},
	{"top-", []string{"top"}},
	{"right-", []string{"right"}},
	{"bottom-", []string{"bottom"}},
	{"left-", []string{"left"}},
	{"start-", []string{"inset-inline-start"}},
	{"end-", []string{"inset-inline-end"}},
}

// insetValue accepts keywords, fractions, and spacing steps. Negative forms
// only accept spacing steps, matching the margin utilities.
func insetValue(s string) (string, bool) {
	switch s {
	case "auto":
		return "auto", true
	case "full":
		return "100%", true
	case "px":
		return "1px", true
	}
	if pct, ok := parseFraction(s); ok {
		return pct, true
	}
	if val, ok := parseSpacing(s); ok {
		return val, true
	}
	return "", false
}

func resolveInset(class string) *ResolvedUtility {
	for _, neg := range negativeInsets {
		if rest, ok := strings.CutPrefix(class, neg.prefix); ok {
			if val, found := parseSpacing(rest); found {
				return standard(declsFor(neg.props, "-"+val))
			}
			return nil
		}
	}

	for _, pos := range positiveInsets {
		if rest, ok := strings.CutPrefix(class, pos.prefix); ok {
			if val, found := insetValue(rest); found {
				return standard(declsFor(pos.props, val))
			}
			return nil
		}
	}

	if rest, ok := strings.CutPrefix(class, "z-"); ok {
		if rest == "auto" {
			return standard("z-index:auto;")
		}
		if n, found := parseUint(rest); found {
			return standardf("z-index:%d;", n)
		}
	}
	return nil
}

package style

import "strings"

// spaceChildSuffix targets every child after the first, the same trick the
// divide utilities use.
const spaceChildSuffix = ">:not([hidden])~:not([hidden])"

// spacingSides maps a margin/padding shorthand suffix to the CSS properties
// it sets.
var marginAxes = []struct {
	prefix string
	props  []string
}{
	{"mx-", []string{"margin-left", "margin-right"}},
	{"my-", []string{"margin-top", "margin-bottom"}},
	{"mt-", []string{"margin-top"}},
	{"mr-", []string{"margin-right"}},
	{"mb-", []string{"margin-bottom"}},
	{"ml-", []string{"margin-left"}},
	{"ms-", []string{"margin-inline-start"}},
	{"me-", []string{"margin-inline-end"}},
	{"m-", []string{"margin"}},
}

var paddingAxes = []struct {
	prefix string
	props  []string
}{
	{"px-", []string{"padding-left", "padding-right"}},
	{"py-", []string{"padding-top", "padding-bottom"}},
	{"pt-", []string{"padding-top"}},
	{"pr-", []string{"padding-right"}},
	{"pb-", []string{"padding-bottom"}},
	{"pl-", []string{"padding-left"}},
	{"ps-", []string{"padding-inline-start"}},
	{"pe-", []string{"padding-inline-end"}},
	{"p-", []string{"padding"}},
}

func declsFor(props []string, value string) string {
	var b strings.Builder
	for _, p := range props {
		b.WriteString(p)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteByte(';')
	}
	return b.String()
}

func resolveSpacing(class string) *ResolvedUtility {
	switch class {
	case "space-x-reverse":
		return custom(spaceChildSuffix, "--tw-space-x-reverse:1;")
	case "space-y-reverse":
		return custom(spaceChildSuffix, "--tw-space-y-reverse:1;")
	}
	if rest, ok := strings.CutPrefix(class, "space-x-"); ok {
		if val, found := parseSpacing(rest); found {
			return custom(spaceChildSuffix, "margin-left:"+val+";")
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "space-y-"); ok {
		if val, found := parseSpacing(rest); found {
			return custom(spaceChildSuffix, "margin-top:"+val+";")
		}
		return nil
	}

	// Negative margins come before the positive forms so "-mt-4" never
	// reaches the bare "m" prefixes.
	if rest, ok := strings.CutPrefix(class, "-"); ok {
		for _, axis := range marginAxes {
			if v, found := strings.CutPrefix(rest, axis.prefix); found {
				if val, ok := parseSpacing(v); ok {
					return standard(declsFor(axis.props, "-"+val))
				}
				return nil
			}
		}
		return nil
	}

	for _, axis := range paddingAxes {
		if v, found := strings.CutPrefix(class, axis.prefix); found {
			if val, ok := parseSpacing(v); ok {
				return standard(declsFor(axis.props, val))
			}
			return nil
		}
	}

	for _, axis := range marginAxes {
		if v, found := strings.CutPrefix(class, axis.prefix); found {
			if v == "auto" {
				return standard(declsFor(axis.props, "auto"))
			}
			if val, ok := parseSpacing(v); ok {
				return standard(declsFor(axis.props, val))
			}
			return nil
		}
	}

	if rest, ok := strings.CutPrefix(class, "gap-x-"); ok {
		if val, found := parseSpacing(rest); found {
			return standardf("column-gap:%s;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "gap-y-"); ok {
		if val, found := parseSpacing(rest); found {
			return standardf("row-gap:%s;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "gap-"); ok {
		if val, found := parseSpacing(rest); found {
			return standardf("gap:%s;", val)
		}
	}
	return nil
}

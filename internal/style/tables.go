package style

import "strings"

var tableStatics = map[string]string{
	"table-auto":      "table-layout:auto;",
	"table-fixed":     "table-layout:fixed;",
	"border-collapse": "border-collapse:collapse;",
	"border-separate": "border-collapse:separate;",
	"caption-top":     "caption-side:top;",
	"caption-bottom":  "caption-side:bottom;",
}

func resolveTables(class string) *ResolvedUtility {
	if decls, ok := tableStatics[class]; ok {
		return standard(decls)
	}
	if rest, ok := strings.CutPrefix(class, "border-spacing-x-"); ok {
		if val, found := parseSpacing(rest); found {
			return standardf("border-spacing:%s 0;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "border-spacing-y-"); ok {
		if val, found := parseSpacing(rest); found {
			return standardf("border-spacing:0 %s;", val)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "border-spacing-"); ok {
		if val, found := parseSpacing(rest); found {
			return standardf("border-spacing:%s;", val)
		}
	}
	return nil
}

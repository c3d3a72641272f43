package style

import "strings"

var gridStatics = map[string]string{
	// Grid flow
	"grid-flow-row":       "grid-auto-flow:row;",
	"grid-flow-col":       "grid-auto-flow:column;",
	"grid-flow-dense":     "grid-auto-flow:dense;",
	"grid-flow-row-dense": "grid-auto-flow:row dense;",
	"grid-flow-col-dense": "grid-auto-flow:column dense;",

	// Auto cols
	"auto-cols-auto": "grid-auto-columns:auto;",
	"auto-cols-min":  "grid-auto-columns:min-content;",
	"auto-cols-max":  "grid-auto-columns:max-content;",
	"auto-cols-fr":   "grid-auto-columns:minmax(0,1fr);",

	// Auto rows
	"auto-rows-auto": "grid-auto-rows:auto;",
	"auto-rows-min":  "grid-auto-rows:min-content;",
	"auto-rows-max":  "grid-auto-rows:max-content;",
	"auto-rows-fr":   "grid-auto-rows:minmax(0,1fr);",

	"col-auto":      "grid-column:auto;",
	"col-span-full": "grid-column:1 / -1;",
	"row-auto":      "grid-row:auto;",
	"row-span-full": "grid-row:1 / -1;",
}

func resolveGrid(class string) *ResolvedUtility {
	if decls, ok := gridStatics[class]; ok {
		return standard(decls)
	}

	if rest, ok := strings.CutPrefix(class, "grid-cols-"); ok {
		switch rest {
		case "none":
			return standard("grid-template-columns:none;")
		case "subgrid":
			return standard("grid-template-columns:subgrid;")
		}
		if n, found := parseUint(rest); found && n >= 1 && n <= 12 {
			return standardf("grid-template-columns:repeat(%d,minmax(0,1fr));", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "grid-rows-"); ok {
		switch rest {
		case "none":
			return standard("grid-template-rows:none;")
		case "subgrid":
			return standard("grid-template-rows:subgrid;")
		}
		if n, found := parseUint(rest); found && n >= 1 && n <= 12 {
			return standardf("grid-template-rows:repeat(%d,minmax(0,1fr));", n)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "col-span-"); ok {
		if n, found := parseUint(rest); found && n >= 1 && n <= 12 {
			return standardf("grid-column:span %d / span %d;", n, n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "col-start-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("grid-column-start:%d;", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "col-end-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("grid-column-end:%d;", n)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "row-span-"); ok {
		if n, found := parseUint(rest); found && n >= 1 && n <= 12 {
			return standardf("grid-row:span %d / span %d;", n, n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "row-start-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("grid-row-start:%d;", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "row-end-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("grid-row-end:%d;", n)
		}
	}
	return nil
}

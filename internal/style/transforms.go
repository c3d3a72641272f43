package style

import "strings"

var transformStatics = map[string]string{
	"origin-center":       "transform-origin:center;",
	"origin-top":          "transform-origin:top;",
	"origin-top-right":    "transform-origin:top right;",
	"origin-right":        "transform-origin:right;",
	"origin-bottom-right": "transform-origin:bottom right;",
	"origin-bottom":       "transform-origin:bottom;",
	"origin-bottom-left":  "transform-origin:bottom left;",
	"origin-left":         "transform-origin:left;",
	"origin-top-left":     "transform-origin:top left;",
}

// scaleValue renders a percentage scale factor: 0, 1, 1.5, 0.75, 1.05.
func scaleValue(n uint) string {
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

func resolveTranslate(rest, axis, sign string) *ResolvedUtility {
	if sign == "" && rest == "full" {
		return standardf("transform:translate%s(100%%);", axis)
	}
	if pct, ok := parseFraction(rest); ok {
		return standardf("transform:translate%s(%s%s);", axis, sign, pct)
	}
	if val, ok := parseSpacing(rest); ok {
		return standardf("transform:translate%s(%s%s);", axis, sign, val)
	}
	return nil
}

func resolveTransforms(class string) *ResolvedUtility {
	if decls, ok := transformStatics[class]; ok {
		return standard(decls)
	}

	if rest, ok := strings.CutPrefix(class, "scale-x-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:scaleX(%s);", scaleValue(n))
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "scale-y-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:scaleY(%s);", scaleValue(n))
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "scale-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:scale(%s);", scaleValue(n))
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "-rotate-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:rotate(-%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "rotate-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:rotate(%ddeg);", n)
		}
		return nil
	}

	if rest, ok := strings.CutPrefix(class, "-translate-x-"); ok {
		return resolveTranslate(rest, "X", "-")
	}
	if rest, ok := strings.CutPrefix(class, "-translate-y-"); ok {
		return resolveTranslate(rest, "Y", "-")
	}
	if rest, ok := strings.CutPrefix(class, "translate-x-"); ok {
		return resolveTranslate(rest, "X", "")
	}
	if rest, ok := strings.CutPrefix(class, "translate-y-"); ok {
		return resolveTranslate(rest, "Y", "")
	}

	if rest, ok := strings.CutPrefix(class, "-skew-x-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:skewX(-%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "-skew-y-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:skewY(-%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "skew-x-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:skewX(%ddeg);", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "skew-y-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transform:skewY(%ddeg);", n)
		}
	}
	return nil
}

package style

import "strings"

const defaultTiming = "transition-timing-function:cubic-bezier(0.4,0,0.2,1);transition-duration:150ms;"

var transitionStatics = map[string]string{
	"transition":           "transition-property:color,background-color,border-color,text-decoration-color,fill,stroke,opacity,box-shadow,transform,filter,backdrop-filter;" + defaultTiming,
	"transition-none":      "transition-property:none;",
	"transition-all":       "transition-property:all;" + defaultTiming,
	"transition-colors":    "transition-property:color,background-color,border-color,text-decoration-color,fill,stroke;" + defaultTiming,
	"transition-opacity":   "transition-property:opacity;" + defaultTiming,
	"transition-shadow":    "transition-property:box-shadow;" + defaultTiming,
	"transition-transform": "transition-property:transform;" + defaultTiming,

	// Timing function
	"ease-linear": "transition-timing-function:linear;",
	"ease-in":     "transition-timing-function:cubic-bezier(0.4,0,1,1);",
	"ease-out":    "transition-timing-function:cubic-bezier(0,0,0.2,1);",
	"ease-in-out": "transition-timing-function:cubic-bezier(0.4,0,0.2,1);",

	// Animations
	"animate-none":   "animation:none;",
	"animate-spin":   "animation:spin 1s linear infinite;",
	"animate-ping":   "animation:ping 1s cubic-bezier(0,0,0.2,1) infinite;",
	"animate-pulse":  "animation:pulse 2s cubic-bezier(0.4,0,0.6,1) infinite;",
	"animate-bounce": "animation:bounce 1s infinite;",
}

func resolveTransitions(class string) *ResolvedUtility {
	if decls, ok := transitionStatics[class]; ok {
		return standard(decls)
	}
	if rest, ok := strings.CutPrefix(class, "duration-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transition-duration:%dms;", n)
		}
		return nil
	}
	if rest, ok := strings.CutPrefix(class, "delay-"); ok {
		if n, found := parseUint(rest); found {
			return standardf("transition-delay:%dms;", n)
		}
	}
	return nil
}

var animationKeyframes = []struct {
	class string
	css   string
}{
	{"animate-spin", "@keyframes spin{to{transform:rotate(360deg)}}"},
	{"animate-ping", "@keyframes ping{75%,100%{transform:scale(2);opacity:0}}"},
	{"animate-pulse", "@keyframes pulse{50%{opacity:.5}}"},
	{"animate-bounce", "@keyframes bounce{0%,100%{transform:translateY(-25%);animation-timing-function:cubic-bezier(0.8,0,1,1)}50%{transform:none;animation-timing-function:cubic-bezier(0,0,0.2,1)}}"},
}

// KeyframesCSS returns the @keyframes blocks the given utilities depend on,
// in a fixed order regardless of input order.
func KeyframesCSS(utilities []string) string {
	used := make(map[string]bool, len(utilities))
	for _, u := range utilities {
		used[u] = true
	}
	var b strings.Builder
	for _, kf := range animationKeyframes {
		if used[kf.class] {
			b.WriteString(kf.css)
		}
	}
	return b.String()
}

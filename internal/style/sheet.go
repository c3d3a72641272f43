package style

import (
	"fmt"
	"sort"
	"strings"
)

// preflightCSS is the base reset prepended whenever any rule is generated.
const preflightCSS = "*,::before,::after{box-sizing:border-box;border-width:0;border-style:solid;}"

type cssRule struct {
	selector     string
	declarations string
	media        string
	layer        int
}

// GenerateCSS compiles class names into a stylesheet with the default
// configuration, discarding diagnostics.
func GenerateCSS(classes []string) string {
	return GenerateCSSWithConfig(classes, DefaultConfig()).CSS
}

// GenerateCSSWithConfig compiles class names into a stylesheet. Classes are
// deduplicated preserving first-seen order, the safelist is appended, the
// blocklist is skipped. Unresolved classes become diagnostics instead of
// rules; bare rules precede @media groups; keyframes for used animations
// close the sheet.
func GenerateCSSWithConfig(classes []string, config *Config) Report {
	unique := dedupeClasses(classes)
	for _, class := range config.Safelist {
		if !containsString(unique, class) {
			unique = append(unique, class)
		}
	}

	var (
		rules         []cssRule
		bareUtilities []string
		diagnostics   []Diagnostic
		report        Report
	)
	diagnosed := make(map[string]bool)

	for _, class := range unique {
		if containsString(config.Blocklist, class) {
			continue
		}

		parsed := ParseClassNameWithConfig(class, config)

		// custom: classes pass through to hand-written CSS untouched.
		if parsed.IsCustom {
			continue
		}

		resolved := Resolve(parsed.Utility)
		if resolved == nil {
			report.UnresolvedCount++
			if !diagnosed[class] {
				diagnosed[class] = true
				diagnostics = append(diagnostics, Diagnostic{
					ClassName: class,
					Kind:      DiagUnknownClass,
					Message:   fmt.Sprintf("unresolved utility class '%s'", class),
				})
			}
			continue
		}

		report.ResolvedCount++
		bareUtilities = append(bareUtilities, parsed.Utility)

		selector := assembleSelector(class, parsed, resolved)

		decls := resolved.Declarations
		if parsed.Important {
			decls = makeImportant(decls)
		}

		media := strings.Join(parsed.MediaQueries, " and ")
		layer := 0
		if media != "" {
			layer = 1
		}
		rules = append(rules, cssRule{selector, decls, media, layer})
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].layer != rules[j].layer {
			return rules[i].layer < rules[j].layer
		}
		return rules[i].selector < rules[j].selector
	})

	var out strings.Builder
	if len(rules) > 0 {
		out.WriteString(preflightCSS)

		// Media groups keep the order their query first appears post-sort.
		var mediaOrder []string
		mediaGroups := make(map[string][]cssRule)
		for _, rule := range rules {
			if rule.media != "" {
				if _, seen := mediaGroups[rule.media]; !seen {
					mediaOrder = append(mediaOrder, rule.media)
				}
				mediaGroups[rule.media] = append(mediaGroups[rule.media], rule)
				continue
			}
			out.WriteString(rule.selector)
			out.WriteByte('{')
			out.WriteString(rule.declarations)
			out.WriteByte('}')
		}

		for _, mq := range mediaOrder {
			out.WriteString("@media ")
			out.WriteString(mq)
			out.WriteByte('{')
			for _, rule := range mediaGroups[mq] {
				out.WriteString(rule.selector)
				out.WriteByte('{')
				out.WriteString(rule.declarations)
				out.WriteByte('}')
			}
			out.WriteByte('}')
		}

		out.WriteString(KeyframesCSS(bareUtilities))
	}

	if config.UnknownClassPolicy == PolicySilent {
		diagnostics = nil
	}

	report.CSS = out.String()
	report.Diagnostics = diagnostics
	return report
}

// assembleSelector builds the full selector for a class: escaped name,
// pseudo-classes, the utility's own suffix, then variant suffixes, with
// prefixes applied outermost-last.
func assembleSelector(class string, parsed ParsedClassName, resolved *ResolvedUtility) string {
	selector := "." + EscapeSelector(class)
	for _, pc := range parsed.PseudoClasses {
		selector += pc
	}
	selector += resolved.SelectorSuffix
	for _, sfx := range parsed.SelectorSuffixes {
		selector += sfx
	}
	for i := len(parsed.SelectorPrefixes) - 1; i >= 0; i-- {
		selector = parsed.SelectorPrefixes[i] + selector
	}
	return selector
}

// RuleForClass renders the complete rule a single class would contribute to
// a stylesheet, media wrapper included. Custom-prefixed and unresolvable
// classes produce no rule.
func RuleForClass(class string, config *Config) (string, bool) {
	parsed := ParseClassNameWithConfig(class, config)
	if parsed.IsCustom {
		return "", false
	}
	resolved := Resolve(parsed.Utility)
	if resolved == nil {
		return "", false
	}

	decls := resolved.Declarations
	if parsed.Important {
		decls = makeImportant(decls)
	}
	rule := assembleSelector(class, parsed, resolved) + "{" + decls + "}"
	if media := strings.Join(parsed.MediaQueries, " and "); media != "" {
		rule = "@media " + media + "{" + rule + "}"
	}
	return rule, true
}

func dedupeClasses(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func containsString(list []string, needle string) bool {
	for _, item := range list {
		if item == needle {
			return true
		}
	}
	return false
}

func makeImportant(decls string) string {
	var b strings.Builder
	for _, part := range strings.Split(decls, ";") {
		if part == "" {
			continue
		}
		b.WriteString(part)
		b.WriteString(" !important;")
	}
	return b.String()
}

// Package style compiles utility class names into CSS. It parses variant
// chains, resolves utilities to declarations through fixed category tables,
// and assembles deduplicated stylesheets with media grouping and keyframes.
package style

import (
	"fmt"
	"strings"
)

// ParsedClassName is a class name with its variant chain extracted.
type ParsedClassName struct {
	// Utility is the bare utility name, variant prefixes removed.
	Utility string
	// PseudoClasses are selector fragments appended to the class selector,
	// e.g. ":hover", "::before", "[data-open]".
	PseudoClasses []string
	// SelectorPrefixes wrap the selector from the outside in reverse order,
	// e.g. ".dark ", ".group:hover ".
	SelectorPrefixes []string
	// SelectorSuffixes are appended after the pseudo classes.
	SelectorSuffixes []string
	// MediaQueries are combined with " and " into one @media condition.
	MediaQueries []string
	// Important appends !important to every declaration.
	Important bool
	// Original is the class name exactly as written.
	Original string
	// IsCustom marks a custom: pass-through class that skips resolution.
	IsCustom bool
}

// ParseClassName parses a class with the default configuration.
func ParseClassName(class string) ParsedClassName {
	return ParseClassNameWithConfig(class, DefaultConfig())
}

// ParseClassNameWithConfig splits the variant chain off a class name. The
// chain is split on colons at bracket depth zero, so arbitrary values like
// min-[600px] survive intact. An unrecognized variant prefix stops
// consumption; the rest of the chain becomes the utility, which will then
// fail resolution and surface through the unknown-class diagnostics.
func ParseClassNameWithConfig(class string, config *Config) ParsedClassName {
	parsed := ParsedClassName{Original: class}

	rest := class
	if strings.HasPrefix(rest, "!") {
		parsed.Important = true
		rest = rest[1:]
	}

	parts := splitVariantChain(rest)
	if len(parts) <= 1 {
		parsed.Utility = rest
		return parsed
	}

	for _, prefix := range parts[:len(parts)-1] {
		if !applyVariant(&parsed, prefix, config) {
			break
		}
	}
	parsed.Utility = parts[len(parts)-1]
	return parsed
}

// IsValidVariant reports whether name is a recognized variant prefix under
// the default configuration.
func IsValidVariant(name string) bool {
	var scratch ParsedClassName
	return name == "custom" || applyVariant(&scratch, name, DefaultConfig())
}

func applyVariant(parsed *ParsedClassName, prefix string, config *Config) bool {
	if prefix == "custom" {
		parsed.IsCustom = true
		return true
	}

	if width, ok := config.Theme.Screens[prefix]; ok {
		parsed.MediaQueries = append(parsed.MediaQueries, fmt.Sprintf("(min-width:%s)", width))
		return true
	}
	if key, ok := strings.CutPrefix(prefix, "max-"); ok {
		if width, found := config.Theme.Screens[key]; found {
			parsed.MediaQueries = append(parsed.MediaQueries, fmt.Sprintf("(max-width:%s)", width))
			return true
		}
	}

	if prefix == "dark" {
		switch config.DarkMode {
		case DarkModeClass:
			parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, ".dark ")
		default:
			parsed.MediaQueries = append(parsed.MediaQueries, "(prefers-color-scheme:dark)")
		}
		return true
	}

	if pc, ok := pseudoClasses[prefix]; ok {
		parsed.PseudoClasses = append(parsed.PseudoClasses, pc)
		return true
	}
	if pe, ok := pseudoElements[prefix]; ok {
		parsed.PseudoClasses = append(parsed.PseudoClasses, pe)
		return true
	}

	switch prefix {
	case "group-hover":
		parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, ".group:hover ")
		return true
	case "group-focus":
		parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, ".group:focus ")
		return true
	case "peer-hover":
		parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, ".peer:hover ~ ")
		return true
	case "peer-focus":
		parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, ".peer:focus ~ ")
		return true
	}

	if config.Variants.GroupPeerNamed {
		if name, ok := strings.CutPrefix(prefix, "group-hover/"); ok {
			parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, fmt.Sprintf(".group\\/%s:hover ", name))
			return true
		}
		if name, ok := strings.CutPrefix(prefix, "group-focus/"); ok {
			parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, fmt.Sprintf(".group\\/%s:focus ", name))
			return true
		}
		if name, ok := strings.CutPrefix(prefix, "peer-hover/"); ok {
			parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, fmt.Sprintf(".peer\\/%s:hover ~ ", name))
			return true
		}
		if name, ok := strings.CutPrefix(prefix, "peer-focus/"); ok {
			parsed.SelectorPrefixes = append(parsed.SelectorPrefixes, fmt.Sprintf(".peer\\/%s:focus ~ ", name))
			return true
		}
	}

	if mq, ok := mediaVariants[prefix]; ok {
		parsed.MediaQueries = append(parsed.MediaQueries, mq)
		return true
	}

	if v, ok := strings.CutPrefix(prefix, "min-"); ok {
		if raw, found := parseBracket(v); found {
			parsed.MediaQueries = append(parsed.MediaQueries, fmt.Sprintf("(min-width:%s)", raw))
			return true
		}
	}
	if v, ok := strings.CutPrefix(prefix, "max-"); ok {
		if raw, found := parseBracket(v); found {
			parsed.MediaQueries = append(parsed.MediaQueries, fmt.Sprintf("(max-width:%s)", raw))
			return true
		}
	}

	if config.Variants.Supports {
		if v, ok := strings.CutPrefix(prefix, "supports-"); ok {
			if raw, found := parseBracket(v); found {
				parsed.MediaQueries = append(parsed.MediaQueries, fmt.Sprintf("(%s)", raw))
				return true
			}
		}
	}

	if config.Variants.DataAria {
		if v, ok := strings.CutPrefix(prefix, "data-"); ok {
			if raw, found := parseBracket(v); found {
				parsed.PseudoClasses = append(parsed.PseudoClasses, fmt.Sprintf("[data-%s]", raw))
				return true
			}
		}
		if v, ok := strings.CutPrefix(prefix, "aria-"); ok {
			if raw, found := parseBracket(v); found {
				parsed.PseudoClasses = append(parsed.PseudoClasses, fmt.Sprintf("[aria-%s]", raw))
				return true
			}
		}
	}

	return false
}

// splitVariantChain splits on colons outside square brackets, so
// "min-[600px]:hover:p-4" yields three parts.
func splitVariantChain(input string) []string {
	var out []string
	start, depth := 0, 0
	for i, ch := range input {
		switch ch {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				out = append(out, input[start:i])
				start = i + 1
			}
		}
	}
	return append(out, input[start:])
}

var pseudoClasses = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"active":        ":active",
	"visited":       ":visited",
	"disabled":      ":disabled",
	"first":         ":first-child",
	"last":          ":last-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"checked":       ":checked",
	"required":      ":required",
	"empty":         ":empty",
	"open":          ":open",
}

var pseudoElements = map[string]string{
	"placeholder": "::placeholder",
	"before":      "::before",
	"after":       "::after",
	"selection":   "::selection",
	"marker":      "::marker",
	"file":        "::file-selector-button",
}

var mediaVariants = map[string]string{
	"motion-safe":   "(prefers-reduced-motion:no-preference)",
	"motion-reduce": "(prefers-reduced-motion:reduce)",
	"print":         "print",
}

func parseBracket(s string) (string, bool) {
	if len(s) > 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s[1 : len(s)-1], true
	}
	return "", false
}

package style

import "sort"

// staticTables lists every static utility map in the categories' dispatch
// order, for enumerating completion candidates.
var staticTables = []map[string]string{
	layoutStatics,
	flexboxStatics,
	gridStatics,
	typographyStatics,
	backgroundStatics,
	borderStatics,
	effectsStatics,
	transformStatics,
	filterStatics,
	transitionStatics,
	interactivityStatics,
	tableStatics,
	svgStatics,
}

// colorUtilityPrefixes are the color-bearing prefixes worth completing for
// every palette name. The full per-category set would flood completion
// lists, so this sticks to the common ones.
var colorUtilityPrefixes = []string{"bg-", "text-", "border-"}

// UtilityNames returns the sorted inventory of completable utility names:
// every static utility plus palette color combinations for the common
// color prefixes.
func UtilityNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, table := range staticTables {
		for name := range table {
			add(name)
		}
	}
	for _, color := range PaletteNames() {
		for _, prefix := range colorUtilityPrefixes {
			add(prefix + color)
		}
	}
	sort.Strings(names)
	return names
}

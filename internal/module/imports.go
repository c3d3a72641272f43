// Package module resolves use-import paths and symbols across a workspace of
// source files. Paths use :: separators, anchor on root markers, and resolve
// against the filesystem with .volki files taking precedence over .rs files.
package module

import (
	"strings"
)

// ImportedSymbol is one name pulled in by a use statement.
type ImportedSymbol struct {
	Name string
	// Glob is true for the * form, which imports every exported symbol.
	Glob bool
}

// ParsedImportStatement is one use statement, split into its module path and
// the symbols it imports.
type ParsedImportStatement struct {
	// Segments is the module path, root marker included, e.g. ["root", "core"].
	Segments []string
	// Symbols are the imported names. A brace group yields several; the plain
	// form yields one (the last path segment).
	Symbols []ImportedSymbol
	// Pub is true for pub use re-exports.
	Pub bool
	// Raw is the statement text as written, without the trailing semicolon.
	Raw string
}

// ParseImportStatements extracts every use statement from source. Statements
// are separated by semicolons; anything that is not a well-formed use
// statement is skipped rather than reported, since the tokenizer already
// surfaces malformed code.
func ParseImportStatements(source string) []ParsedImportStatement {
	var out []ParsedImportStatement
	for _, stmt := range strings.Split(source, ";") {
		stmt = strings.TrimSpace(stmt)
		pub := false
		if rest, ok := strings.CutPrefix(stmt, "pub "); ok {
			stmt = strings.TrimSpace(rest)
			pub = true
		}
		body, ok := strings.CutPrefix(stmt, "use ")
		if !ok {
			continue
		}
		body = strings.TrimSpace(body)
		parsed, ok := parseUseBody(body)
		if !ok {
			continue
		}
		parsed.Pub = pub
		if pub {
			parsed.Raw = "pub use " + body
		} else {
			parsed.Raw = "use " + body
		}
		out = append(out, parsed)
	}
	return out
}

func parseUseBody(body string) (ParsedImportStatement, bool) {
	if open := strings.Index(body, "{"); open >= 0 {
		close := strings.LastIndex(body, "}")
		if close < open {
			return ParsedImportStatement{}, false
		}
		prefix := strings.TrimSuffix(strings.TrimSpace(body[:open]), "::")
		segments := splitPath(prefix)
		if len(segments) == 0 {
			return ParsedImportStatement{}, false
		}
		var symbols []ImportedSymbol
		for _, name := range strings.Split(body[open+1:close], ",") {
			name = strings.TrimSpace(name)
			switch name {
			case "", "self":
				// self re-imports the module itself; nothing to record.
			case "*":
				symbols = append(symbols, ImportedSymbol{Name: "*", Glob: true})
			default:
				symbols = append(symbols, ImportedSymbol{Name: name})
			}
		}
		return ParsedImportStatement{Segments: segments, Symbols: symbols}, true
	}

	segments := splitPath(body)
	if len(segments) < 2 {
		if len(segments) == 1 && segments[0] == "*" {
			return ParsedImportStatement{}, false
		}
		return ParsedImportStatement{}, false
	}
	last := segments[len(segments)-1]
	segments = segments[:len(segments)-1]
	if last == "*" {
		return ParsedImportStatement{
			Segments: segments,
			Symbols:  []ImportedSymbol{{Name: "*", Glob: true}},
		}, true
	}
	return ParsedImportStatement{
		Segments: segments,
		Symbols:  []ImportedSymbol{{Name: last}},
	}, true
}

func splitPath(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "::") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

package module

import (
	"fmt"
	"path"
	"strings"

	"github.com/shmigatron/volki/internal/tokenizer"
	"github.com/shmigatron/volki/internal/tokens"
)

// PathError reports a module path that could not be resolved, anchored at the
// first segment that failed.
type PathError struct {
	Segments []string
	// Index is the position of the first unresolvable segment.
	Index int
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot resolve module path %q: segment %d (%q) not found",
		strings.Join(e.Segments, "::"), e.Index, e.Segments[e.Index])
}

// ResolveModulePath resolves a use path to a source file or module directory.
// fromDir is the directory of the importing file. Root markers anchor the
// walk: root and crate jump to the enclosing src directory, self stays in
// fromDir, super steps up one directory.
//
// Each remaining segment is tried in a fixed candidate order: a .volki file,
// a directory with mod.volki, a .rs file, a directory with mod.rs, then a
// bare directory. When a segment lands on a file, the next segment is
// resolved from that file's directory, so a file-backed module can sit in
// the middle of a path. Failure returns a *PathError naming the first
// segment that could not be resolved.
func ResolveModulePath(ws Workspace, fromDir string, segments []string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("empty module path")
	}

	cur := fromDir
	rest := segments
	switch segments[0] {
	case "root", "crate":
		cur = FindSourceRoot(ws, fromDir)
		rest = segments[1:]
	case "self":
		rest = segments[1:]
	case "super":
		for len(rest) > 0 && rest[0] == "super" {
			cur = path.Dir(cur)
			rest = rest[1:]
		}
	}

	for i, seg := range rest {
		next, ok := resolveSegment(ws, cur, seg)
		if !ok {
			// Report the index within the original path, markers included.
			return "", &PathError{Segments: segments, Index: len(segments) - len(rest) + i}
		}
		cur = next
	}
	return cur, nil
}

func resolveSegment(ws Workspace, from, seg string) (string, bool) {
	// A file-backed module resolves its submodules among its siblings.
	dir := from
	if !ws.DirExists(dir) {
		dir = path.Dir(dir)
	}
	if p := path.Join(dir, seg+PrimaryExt); ws.FileExists(p) {
		return p, true
	}
	if p := path.Join(dir, seg, "mod"+PrimaryExt); ws.FileExists(p) {
		return p, true
	}
	if p := path.Join(dir, seg+SecondaryExt); ws.FileExists(p) {
		return p, true
	}
	if p := path.Join(dir, seg, "mod"+SecondaryExt); ws.FileExists(p) {
		return p, true
	}
	if p := path.Join(dir, seg); ws.DirExists(p) {
		return p, true
	}
	return "", false
}

// SymbolKind classifies a resolved declaration. The order of the constants
// is the resolution priority: when a name is declared more than once, the
// lowest kind wins.
type SymbolKind int

const (
	SymbolFn SymbolKind = iota
	SymbolConst
	SymbolStatic
	SymbolStruct
	SymbolEnum
	SymbolTrait
	SymbolTypeAlias
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFn:
		return "fn"
	case SymbolConst:
		return "const"
	case SymbolStatic:
		return "static"
	case SymbolStruct:
		return "struct"
	case SymbolEnum:
		return "enum"
	case SymbolTrait:
		return "trait"
	case SymbolTypeAlias:
		return "type"
	}
	return "unknown"
}

var declarationKinds = map[string]SymbolKind{
	"fn":     SymbolFn,
	"const":  SymbolConst,
	"static": SymbolStatic,
	"struct": SymbolStruct,
	"enum":   SymbolEnum,
	"trait":  SymbolTrait,
	"type":   SymbolTypeAlias,
}

// ResolvedSymbol is a declaration located in a source file.
type ResolvedSymbol struct {
	Name string
	Kind SymbolKind
	// File is the path of the declaring file.
	File string
	// TokenIndex is the index of the name token in the file's token stream.
	TokenIndex int
	// Offset is the byte offset of the name token.
	Offset int
	// Exported is true when the declaration carries pub.
	Exported bool
}

// ResolveSymbol finds the declaration of name in file. When the name is
// declared several times the declaration-kind priority picks the winner
// (fn before const before static before struct, enum, trait, type alias).
// Returns nil when the file has no such declaration.
func ResolveSymbol(ws Workspace, file, name string) (*ResolvedSymbol, error) {
	source, err := ws.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var best *ResolvedSymbol
	for _, sym := range scanDeclarations(tokenizer.Tokenize(source), file) {
		if sym.Name != name {
			continue
		}
		if best == nil || sym.Kind < best.Kind {
			s := sym
			best = &s
		}
	}
	return best, nil
}

// FindExportedSymbols returns every pub declaration in file plus the symbols
// it re-exports with pub use. Re-export chains are followed exactly one hop:
// a pub use in the re-exported file is not followed further, so cycles are
// impossible by construction.
func FindExportedSymbols(ws Workspace, file string) ([]ResolvedSymbol, error) {
	return findExported(ws, file, true)
}

func findExported(ws Workspace, file string, followReexports bool) ([]ResolvedSymbol, error) {
	source, err := ws.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var out []ResolvedSymbol
	seen := map[string]bool{}
	for _, sym := range scanDeclarations(tokenizer.Tokenize(source), file) {
		if sym.Exported && !seen[sym.Name] {
			seen[sym.Name] = true
			out = append(out, sym)
		}
	}

	if !followReexports {
		return out, nil
	}

	fromDir := path.Dir(file)
	for _, imp := range ParseImportStatements(source) {
		if !imp.Pub {
			continue
		}
		target, err := ResolveModulePath(ws, fromDir, imp.Segments)
		if err != nil {
			// Unresolvable re-exports are skipped, not fatal: the file's own
			// exports are still valid.
			continue
		}
		exported, err := findExported(ws, target, false)
		if err != nil {
			continue
		}
		for _, imported := range imp.Symbols {
			for _, sym := range exported {
				if (imported.Glob || sym.Name == imported.Name) && !seen[sym.Name] {
					seen[sym.Name] = true
					out = append(out, sym)
				}
			}
		}
	}
	return out, nil
}

// scanDeclarations walks the token stream for declaration-keyword + name
// pairs. Working over tokens rather than raw text means string and comment
// contents can never produce false matches.
func scanDeclarations(toks []tokenizer.Token, file string) []ResolvedSymbol {
	var out []ResolvedSymbol
	for i, tok := range toks {
		if tok.Kind != tokenizer.KindKeyword {
			continue
		}
		kind, ok := declarationKinds[tok.Text]
		if !ok {
			continue
		}
		j := tokens.NextNonWhitespace(toks, i)
		if j == -1 {
			continue
		}
		// const fn, static mut: skip modifier keywords before the name.
		for j != -1 && toks[j].Kind == tokenizer.KindKeyword {
			if k, isDecl := declarationKinds[toks[j].Text]; isDecl {
				kind = k
			}
			j = tokens.NextNonWhitespace(toks, j)
		}
		if j == -1 || toks[j].Kind != tokenizer.KindIdent {
			continue
		}
		exported := false
		if p := tokens.PrevNonWhitespace(toks, i); p != -1 &&
			toks[p].Kind == tokenizer.KindKeyword && toks[p].Text == "pub" {
			exported = true
		}
		out = append(out, ResolvedSymbol{
			Name:       toks[j].Text,
			Kind:       kind,
			File:       file,
			TokenIndex: j,
			Offset:     toks[j].Offset,
			Exported:   exported,
		})
	}
	return out
}

// Package definition implements textDocument/definition for use-import
// paths: the declaration of an imported symbol, or the top of the imported
// module file.
package definition

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/internal/module"
	"github.com/shmigatron/volki/internal/position"
	"github.com/shmigatron/volki/internal/uriutil"
	"github.com/shmigatron/volki/lsp/types"
)

// Definition handles the textDocument/definition request. Inside a use
// statement, the imported module path resolves to its file; when the cursor
// sits on an imported name, the location narrows to that declaration.
func Definition(ctx types.ServerContext, context *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := params.TextDocument.URI
	doc := ctx.Document(uri)
	if doc == nil {
		return nil, nil
	}

	content := doc.Content()
	offset := position.PositionToOffset(content, int(params.Position.Line), int(params.Position.Character))

	stmt, ok := importStatementAt(content, offset)
	if !ok {
		return nil, nil
	}

	ws := ctx.Workspace()
	fromDir := path.Dir(filepath.ToSlash(uriutil.URIToPath(uri)))
	target, err := module.ResolveModulePath(ws, fromDir, stmt.Segments)
	if err != nil {
		log.Debug("definition: %v", err)
		return nil, nil
	}

	// A bare directory module points at its mod file.
	if ws.DirExists(target) {
		for _, name := range []string{"mod" + module.PrimaryExt, "mod" + module.SecondaryExt} {
			if p := path.Join(target, name); ws.FileExists(p) {
				target = p
				break
			}
		}
		if ws.DirExists(target) {
			return nil, nil
		}
	}

	loc := protocol.Location{URI: uriutil.PathToURI(target)}

	// Narrow to the clicked symbol when the cursor is on an imported name.
	if name := wordAt(content, offset); name != "" {
		for _, sym := range stmt.Symbols {
			if sym.Glob || sym.Name != name {
				continue
			}
			resolved, err := module.ResolveSymbol(ws, target, name)
			if err != nil || resolved == nil {
				break
			}
			targetContent, err := ws.ReadFile(target)
			if err != nil {
				break
			}
			line, char := position.OffsetToPosition(targetContent, resolved.Offset)
			endLine, endChar := position.OffsetToPosition(targetContent, resolved.Offset+len(resolved.Name))
			loc.Range = protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)},
				End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
			}
			break
		}
	}

	return loc, nil
}

// importStatementAt finds the use statement whose source extent contains
// the byte offset. Statements are delimited by semicolons, matching the
// import parser's view of the source.
func importStatementAt(content string, offset int) (module.ParsedImportStatement, bool) {
	at := 0
	for at <= len(content) {
		end := strings.IndexByte(content[at:], ';')
		chunkEnd := len(content)
		if end >= 0 {
			chunkEnd = at + end
		}
		if offset >= at && offset <= chunkEnd {
			stmts := module.ParseImportStatements(content[at:chunkEnd])
			if len(stmts) == 1 {
				return stmts[0], true
			}
			return module.ParsedImportStatement{}, false
		}
		if end < 0 {
			break
		}
		at = chunkEnd + 1
	}
	return module.ParsedImportStatement{}, false
}

// wordAt returns the identifier surrounding the byte offset, or "".
func wordAt(content string, offset int) string {
	if offset > len(content) {
		offset = len(content)
	}
	start := offset
	for start > 0 && isWordByte(content[start-1]) {
		start--
	}
	end := offset
	for end < len(content) && isWordByte(content[end]) {
		end++
	}
	return content[start:end]
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Package diagnostic computes the diagnostics published for a document:
// unresolved utility classes and unresolvable use imports.
package diagnostic

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/module"
	"github.com/shmigatron/volki/internal/position"
	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/internal/tokenizer"
	"github.com/shmigatron/volki/internal/uriutil"
	"github.com/shmigatron/volki/lsp/types"
)

// Source tags every diagnostic this server produces.
const Source = "volki"

// GetDiagnostics computes the diagnostics for an open document. A nil error
// with an empty slice means the document is clean.
func GetDiagnostics(ctx types.ServerContext, uri string) ([]protocol.Diagnostic, error) {
	doc := ctx.Document(uri)
	if doc == nil {
		return []protocol.Diagnostic{}, nil
	}

	content := doc.Content()
	config := ctx.StyleConfig()

	diagnostics := classDiagnostics(doc.Tokens(), content, config)
	diagnostics = append(diagnostics, importDiagnostics(ctx, uri, content)...)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	return diagnostics, nil
}

// classDiagnostics flags every class attribute entry that resolves to no
// utility, at the severity the unknown-class policy selects.
func classDiagnostics(toks []tokenizer.Token, content string, config *style.Config) []protocol.Diagnostic {
	severity, report := policySeverity(config.UnknownClassPolicy)
	if !report {
		return nil
	}

	var out []protocol.Diagnostic
	for _, span := range style.CollectClassSpans(toks) {
		if containsString(config.Blocklist, span.Name) {
			continue
		}
		parsed := style.ParseClassNameWithConfig(span.Name, config)
		if parsed.IsCustom {
			continue
		}
		if style.Resolve(parsed.Utility) != nil {
			continue
		}
		sev := severity
		src := Source
		out = append(out, protocol.Diagnostic{
			Range:    spanRange(content, span.Offset, span.Offset+len(span.Name)),
			Severity: &sev,
			Source:   &src,
			Message:  fmt.Sprintf("unresolved utility class '%s'", span.Name),
		})
	}
	return out
}

// importDiagnostics flags use statements whose module path does not resolve,
// anchored at the first failing segment.
func importDiagnostics(ctx types.ServerContext, uri, content string) []protocol.Diagnostic {
	ws := ctx.Workspace()
	fromDir := path.Dir(filepath.ToSlash(uriutil.URIToPath(uri)))

	var out []protocol.Diagnostic
	forEachStatement(content, func(chunk string, chunkOffset int) {
		stmts := module.ParseImportStatements(chunk)
		if len(stmts) != 1 {
			return
		}
		stmt := stmts[0]
		_, err := module.ResolveModulePath(ws, fromDir, stmt.Segments)
		if err == nil {
			return
		}

		pathErr, ok := err.(*module.PathError)
		if !ok {
			return
		}

		start, end := segmentExtent(chunk, stmt.Segments, pathErr.Index)
		sev := protocol.DiagnosticSeverityError
		src := Source
		out = append(out, protocol.Diagnostic{
			Range:    spanRange(content, chunkOffset+start, chunkOffset+end),
			Severity: &sev,
			Source:   &src,
			Message:  err.Error(),
		})
	})
	return out
}

// forEachStatement walks the source's semicolon-delimited chunks, reporting
// each with its byte offset.
func forEachStatement(content string, fn func(chunk string, offset int)) {
	at := 0
	for at <= len(content) {
		end := strings.IndexByte(content[at:], ';')
		chunkEnd := len(content)
		if end >= 0 {
			chunkEnd = at + end
		}
		fn(content[at:chunkEnd], at)
		if end < 0 {
			return
		}
		at = chunkEnd + 1
	}
}

// segmentExtent locates the byte extent of one path segment within a use
// statement chunk, scanning segments left to right so repeated names find
// the right occurrence.
func segmentExtent(chunk string, segments []string, index int) (int, int) {
	searchFrom := 0
	if use := strings.Index(chunk, "use "); use >= 0 {
		searchFrom = use + len("use ")
	}
	for i := 0; i <= index && i < len(segments); i++ {
		at := strings.Index(chunk[searchFrom:], segments[i])
		if at < 0 {
			break
		}
		if i == index {
			return searchFrom + at, searchFrom + at + len(segments[i])
		}
		searchFrom += at + len(segments[i])
	}
	return 0, len(chunk)
}

func spanRange(content string, start, end int) protocol.Range {
	startLine, startChar := position.OffsetToPosition(content, start)
	endLine, endChar := position.OffsetToPosition(content, end)
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startChar)},
		End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
	}
}

func policySeverity(policy style.UnknownClassPolicy) (protocol.DiagnosticSeverity, bool) {
	switch policy {
	case style.PolicyError:
		return protocol.DiagnosticSeverityError, true
	case style.PolicySilent:
		return 0, false
	default:
		return protocol.DiagnosticSeverityWarning, true
	}
}

func containsString(list []string, needle string) bool {
	for _, item := range list {
		if item == needle {
			return true
		}
	}
	return false
}

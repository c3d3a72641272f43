// Package hover implements textDocument/hover for utility classes in markup
// class attributes.
package hover

import (
	"bytes"
	"text/template"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/lsp/methods/textDocument"
	"github.com/shmigatron/volki/lsp/types"
)

// hoverData feeds the hover templates.
type hoverData struct {
	ClassName string
	Category  string
	Rule      string
	Color     string
}

var markdownTemplate = template.Must(template.New("hover").Parse("# `{{.ClassName}}`\n" +
	"{{if .Category}}\n**Category**: {{.Category}}\n{{end}}" +
	"{{if .Color}}**Color**: `{{.Color}}`\n{{end}}" +
	"\n```css\n{{.Rule}}\n```\n"))

var plaintextTemplate = template.Must(template.New("hoverPlain").Parse("{{.ClassName}}\n" +
	"{{if .Category}}Category: {{.Category}}\n{{end}}" +
	"{{if .Color}}Color: {{.Color}}\n{{end}}" +
	"\n{{.Rule}}\n"))

// Hover handles the textDocument/hover request. Hovering a class attribute
// entry shows the CSS rule the class compiles to.
func Hover(ctx types.ServerContext, context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	doc := ctx.Document(uri)
	if doc == nil {
		return nil, nil
	}

	span, ok := textDocument.ClassSpanAt(doc, params.Position)
	if !ok {
		return nil, nil
	}

	config := ctx.StyleConfig()
	rule, ok := style.RuleForClass(span.Name, config)
	if !ok {
		log.Debug("no rule for class %q", span.Name)
		return nil, nil
	}

	data := hoverData{ClassName: span.Name, Rule: rule}
	parsed := style.ParseClassNameWithConfig(span.Name, config)
	if category, ok := style.Category(parsed.Utility); ok {
		data.Category = category
	}
	if color, ok := style.ExtractColorName(parsed.Utility); ok {
		if hex, found := style.ColorHex(color); found {
			data.Color = color + " (" + hex + ")"
		}
	}

	kind := protocol.MarkupKindPlainText
	tmpl := plaintextTemplate
	if ctx.ClientSupportsMarkdown() {
		kind = protocol.MarkupKindMarkdown
		tmpl = markdownTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	hoverRange := textDocument.SpanRange(doc.Content(), span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: kind, Value: buf.String()},
		Range:    &hoverRange,
	}, nil
}

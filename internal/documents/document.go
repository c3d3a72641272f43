package documents

import (
	"fmt"
	"sync"

	"github.com/shmigatron/volki/internal/tokenizer"
)

// Document is one open text document. Content updates are version guarded so
// a late notification cannot clobber newer text. The token stream is lexed
// lazily and cached until the content changes, since hover, colors, and
// diagnostics all read it for the same version.
type Document struct {
	uri        string
	languageID string

	mu      sync.Mutex
	content string
	version int
	toks    []tokenizer.Token
}

// NewDocument creates a document with its initial content.
func NewDocument(uri, languageID string, version int, content string) *Document {
	return &Document{
		uri:        uri,
		languageID: languageID,
		version:    version,
		content:    content,
	}
}

// URI returns the document's URI.
func (d *Document) URI() string {
	return d.uri
}

// LanguageID returns the language identifier the client opened the
// document with.
func (d *Document) LanguageID() string {
	return d.languageID
}

// Version returns the current document version.
func (d *Document) Version() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version
}

// Content returns the current document text.
func (d *Document) Content() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.content
}

// Tokens returns the token stream for the current content, lexing on first
// use after a change.
func (d *Document) Tokens() []tokenizer.Token {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.toks == nil {
		d.toks = tokenizer.Tokenize(d.content)
	}
	return d.toks
}

// SetContent replaces the document text. Updates older than the current
// version are rejected so out-of-order notifications cannot roll the
// document back.
func (d *Document) SetContent(content string, version int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if version < d.version {
		return fmt.Errorf("rejected stale update: document version is %d but update version is %d", d.version, version)
	}
	d.content = content
	d.version = version
	d.toks = nil
	return nil
}

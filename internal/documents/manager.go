// Package documents tracks the text documents a language server session has
// open, applying full and incremental content changes from the client.
package documents

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shmigatron/volki/internal/position"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Manager owns the set of open documents, keyed by URI.
type Manager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewManager creates an empty document manager.
func NewManager() *Manager {
	return &Manager{
		documents: make(map[string]*Document),
	}
}

// Get retrieves a document by URI, or nil when it is not open.
func (m *Manager) Get(uri string) *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents[uri]
}

// GetAll returns every open document.
func (m *Manager) GetAll() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*Document, 0, len(m.documents))
	for _, doc := range m.documents {
		docs = append(docs, doc)
	}
	return docs
}

// DidOpen registers a newly opened document.
func (m *Manager) DidOpen(uri, languageID string, version int, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents[uri] = NewDocument(uri, languageID, version, content)
	return nil
}

// DidClose drops a document from tracking.
func (m *Manager) DidClose(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.documents[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	delete(m.documents, uri)
	return nil
}

// DidChange applies the client's content changes to an open document.
func (m *Manager) DidChange(uri string, version int, changes []protocol.TextDocumentContentChangeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.documents[uri]
	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	newContent, err := applyChanges(doc.Content(), changes)
	if err != nil {
		return fmt.Errorf("failed to apply changes: %w", err)
	}

	if err := doc.SetContent(newContent, version); err != nil {
		return fmt.Errorf("failed to set document content: %w", err)
	}
	return nil
}

// applyChanges folds a list of content changes over the current text. A
// change without a range replaces the whole document.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) (string, error) {
	result := content
	for _, change := range changes {
		if change.Range == nil {
			result = change.Text
			continue
		}
		next, err := applyIncrementalChange(result, *change.Range, change.Text)
		if err != nil {
			return "", err
		}
		result = next
	}
	return result, nil
}

// applyIncrementalChange splices text into content at the given range. LSP
// positions count UTF-16 code units, so columns are converted to byte
// offsets per line before slicing.
func applyIncrementalChange(content string, changeRange protocol.Range, text string) (string, error) {
	lines := strings.Split(content, "\n")

	startLine := int(changeRange.Start.Line)
	endLine := int(changeRange.End.Line)
	if startLine >= len(lines) || endLine >= len(lines) {
		return "", fmt.Errorf("change range %d:%d out of bounds (total lines: %d)", startLine, endLine, len(lines))
	}

	startByte := position.UTF16ToByteOffset(lines[startLine], int(changeRange.Start.Character))
	endByte := position.UTF16ToByteOffset(lines[endLine], int(changeRange.End.Character))
	if startByte > len(lines[startLine]) || endByte > len(lines[endLine]) {
		return "", fmt.Errorf("change position out of bounds on line %d", startLine)
	}

	var result strings.Builder
	for i := 0; i < startLine; i++ {
		result.WriteString(lines[i])
		result.WriteString("\n")
	}
	result.WriteString(lines[startLine][:startByte])
	result.WriteString(text)
	result.WriteString(lines[endLine][endByte:])
	for i := endLine + 1; i < len(lines); i++ {
		result.WriteString("\n")
		result.WriteString(lines[i])
	}
	return result.String(), nil
}

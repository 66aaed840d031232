package lsp

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"
)

// Document represents an open file.
type Document struct {
	URI     string
	Content string
	Version int
}

// DocumentManager tracks all open documents.
type DocumentManager struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentManager creates a new document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		docs: make(map[string]*Document),
	}
}

// Open records a newly opened document.
func (dm *DocumentManager) Open(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := &Document{URI: uri, Content: content, Version: version}
	dm.docs[uri] = doc
	return doc
}

// Update replaces the content of a document, opening it if needed.
// Documents are replaced rather than mutated so a *Document returned
// earlier stays consistent.
func (dm *DocumentManager) Update(uri, content string, version int) *Document {
	return dm.Open(uri, content, version)
}

// Close forgets a document.
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.docs, uri)
}

// Get retrieves a document by URI.
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.docs[uri]
}

// Position represents a position in a document. Line and Character are
// 0-indexed; Character counts UTF-16 code units.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range represents a range in a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// OffsetToPosition converts a byte offset to a Position.
func OffsetToPosition(content string, offset int) Position {
	offset = min(offset, len(content))

	var pos Position
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(content[i:])
		i += size

		if r == '\n' {
			pos.Line++
			pos.Character = 0
			continue
		}
		if n := utf16.RuneLen(r); n > 0 {
			pos.Character += n
		} else {
			pos.Character++
		}
	}
	return pos
}

// OffsetRange converts a byte range to a Range.
func OffsetRange(content string, start, end int) Range {
	return Range{
		Start: OffsetToPosition(content, start),
		End:   OffsetToPosition(content, end),
	}
}

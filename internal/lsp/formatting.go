package lsp

import (
	"encoding/json"

	"go.uber.org/zap"
)

// DocumentFormattingParams represents textDocument/formatting parameters.
// Formatting options are accepted but unused: sorting never changes
// indentation.
type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      json.RawMessage        `json:"options,omitempty"`
}

// TextEdit represents a text edit.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// handleFormatting handles textDocument/formatting requests.
func (s *Server) handleFormatting(params json.RawMessage) (any, *Error) {
	var p DocumentFormattingParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	doc := s.docs.Get(p.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	edits := s.formatEdits(doc)
	s.logger.Debug("formatting",
		zap.String("uri", doc.URI),
		zap.Int("edits", len(edits)),
	)
	return edits, nil
}

// formatEdits returns one edit per class list that is not sorted.
func (s *Server) formatEdits(doc *Document) []TextEdit {
	edits := []TextEdit{}
	for _, e := range s.sorter.Edits(doc.Content) {
		edits = append(edits, TextEdit{
			Range:   OffsetRange(doc.Content, e.Span.Start, e.Span.End),
			NewText: e.Sorted,
		})
	}
	return edits
}

package lsp

import (
	"go.uber.org/zap"

	"github.com/grindlemire/twsort/internal/order"
	"github.com/grindlemire/twsort/internal/sorter"
)

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity int

const (
	// DiagnosticSeverityError reports an error.
	DiagnosticSeverityError DiagnosticSeverity = 1
	// DiagnosticSeverityWarning reports a warning.
	DiagnosticSeverityWarning DiagnosticSeverity = 2
	// DiagnosticSeverityInformation reports an information.
	DiagnosticSeverityInformation DiagnosticSeverity = 3
	// DiagnosticSeverityHint reports a hint.
	DiagnosticSeverityHint DiagnosticSeverity = 4
)

// Diagnostic codes.
const (
	CodeUnsorted     = "unsorted-classes"
	CodeUnknownClass = "unknown-class"
)

// Diagnostic represents a diagnostic, such as a compiler error or warning.
type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Code     string             `json:"code,omitempty"`
	Source   string             `json:"source,omitempty"`
	Message  string             `json:"message"`
}

// PublishDiagnosticsParams represents the parameters for publishDiagnostics.
type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Version     *int         `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// publishDiagnostics sends diagnostics for a document.
func (s *Server) publishDiagnostics(doc *Document) {
	if doc == nil {
		return
	}

	version := doc.Version
	params := PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     &version,
		Diagnostics: s.diagnose(doc),
	}

	if err := s.sendNotification("textDocument/publishDiagnostics", params); err != nil {
		s.logger.Error("publishing diagnostics", zap.Error(err))
	}
}

// diagnose reports every unsorted class list and, with WarnUnknown, every
// unknown class.
func (s *Server) diagnose(doc *Document) []Diagnostic {
	diagnostics := []Diagnostic{}

	for _, e := range s.sorter.Edits(doc.Content) {
		diagnostics = append(diagnostics, Diagnostic{
			Range:    OffsetRange(doc.Content, e.Span.Start, e.Span.End),
			Severity: DiagnosticSeverityInformation,
			Code:     CodeUnsorted,
			Source:   "twsort",
			Message:  "classes are not sorted, expected: " + e.Sorted,
		})
	}

	if !s.WarnUnknown {
		return diagnostics
	}

	for span := range s.sorter.Extractor.FindSpans(doc.Content) {
		for _, tok := range sorter.Tokenize(span.Inner) {
			if s.sorter.Table.RankOf(tok.Raw) != order.Unranked {
				continue
			}

			msg := "unknown class " + tok.Raw
			if suggestion := s.sorter.Table.Suggest(tok.Raw); suggestion != "" {
				msg += " (did you mean " + suggestion + "?)"
			}
			start := span.Start + tok.Start
			diagnostics = append(diagnostics, Diagnostic{
				Range:    OffsetRange(doc.Content, start, start+len(tok.Raw)),
				Severity: DiagnosticSeverityHint,
				Code:     CodeUnknownClass,
				Source:   "twsort",
				Message:  msg,
			})
		}
	}

	return diagnostics
}

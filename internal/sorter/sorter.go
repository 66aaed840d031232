// Package sorter rewrites class attributes so their classes appear in
// canonical order.
//
// The pipeline is a pure function of the content and the Sorter's settings:
// the [extract.Extractor] finds class lists, [Tokenize] splits each one,
// [RankTokens] resolves ranks against an [order.Table], [SortTokens] orders
// them and [Apply] splices the sorted lists back into the content.
package sorter

import (
	"github.com/grindlemire/twsort/internal/extract"
	"github.com/grindlemire/twsort/internal/order"
)

// Sorter sorts the classes found in file content. A Sorter is not modified
// by sorting and may be shared between goroutines.
type Sorter struct {
	// Table ranks classes (default: order.Default()).
	Table *order.Table
	// Extractor finds class lists (default: extract.Default()).
	Extractor extract.Extractor
	// AllowDuplicates keeps repeated classes instead of dropping them.
	AllowDuplicates bool
}

// New creates a Sorter with the built-in table and extractor.
func New() *Sorter {
	return &Sorter{
		Table:     order.Default(),
		Extractor: extract.Default(),
	}
}

// Result contains the outcome of sorting one file's content.
type Result struct {
	// Content is the sorted content.
	Content string
	// Changed indicates if the content was different from the original.
	Changed bool
	// Spans is the number of class lists found.
	Spans int
	// Unknown lists the distinct classes that matched no table entry, in
	// the order they were first seen.
	Unknown []string
}

// HasClasses reports whether content holds any class list to sort.
func (s *Sorter) HasClasses(content string) bool {
	return s.Extractor.HasClasses(content)
}

// Sort returns content with every class list sorted.
func (s *Sorter) Sort(content string) string {
	return s.SortWithResult(content).Content
}

// SortClasses sorts a single class list and returns it joined with single
// spaces.
func (s *Sorter) SortClasses(classes string) string {
	tokens := Tokenize(classes)
	RankTokens(tokens, s.Table)
	return Join(SortTokens(tokens, !s.AllowDuplicates))
}

// SortWithResult sorts the content and reports what was found.
func (s *Sorter) SortWithResult(content string) Result {
	var (
		spans        []extract.Span
		replacements []string
		unknown      []string
		seen         map[string]bool
	)

	for span := range s.Extractor.FindSpans(content) {
		tokens := Tokenize(span.Inner)
		RankTokens(tokens, s.Table)

		for _, tok := range tokens {
			if tok.Rank != order.Unranked || seen[tok.Raw] {
				continue
			}
			if seen == nil {
				seen = make(map[string]bool)
			}
			seen[tok.Raw] = true
			unknown = append(unknown, tok.Raw)
		}

		spans = append(spans, span)
		replacements = append(replacements, Join(SortTokens(tokens, !s.AllowDuplicates)))
	}

	sorted := Apply(content, spans, replacements)
	return Result{
		Content: sorted,
		Changed: sorted != content,
		Spans:   len(spans),
		Unknown: unknown,
	}
}

// Edit is a class list whose sorted form differs from the original.
type Edit struct {
	Span   extract.Span
	Sorted string
}

// Edits returns the class lists in content that are not in sorted form,
// in content order. Applying every edit yields Sort(content).
func (s *Sorter) Edits(content string) []Edit {
	var edits []Edit
	for span := range s.Extractor.FindSpans(content) {
		tokens := Tokenize(span.Inner)
		RankTokens(tokens, s.Table)
		sorted := Join(SortTokens(tokens, !s.AllowDuplicates))
		if sorted != span.Inner {
			edits = append(edits, Edit{Span: span, Sorted: sorted})
		}
	}
	return edits
}

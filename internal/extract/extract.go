// Package extract finds class-bearing attribute values in file content.
//
// The grammar lives behind the [Extractor] interface so that the sorting
// pipeline never depends on how spans are found. [Default] recognizes
// class="..." and className='...' attributes; [NewRegex] accepts a custom
// pattern whose first capture group is the class list.
package extract

import "iter"

// Span is a half-open byte range [Start, End) of file content holding the
// inner text of one class attribute, without its quotes.
type Span struct {
	Start int
	End   int
	Inner string
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Extractor locates class lists in file content.
type Extractor interface {
	// FindSpans yields non-overlapping spans from left to right.
	FindSpans(content string) iter.Seq[Span]
	// HasClasses reports whether FindSpans would yield at least one span.
	HasClasses(content string) bool
}

// Collect gathers every span the extractor yields for content.
func Collect(e Extractor, content string) []Span {
	var spans []Span
	for span := range e.FindSpans(content) {
		spans = append(spans, span)
	}
	return spans
}

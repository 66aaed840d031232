package sorter

import (
	"fmt"
	"strings"

	"github.com/grindlemire/twsort/internal/extract"
)

// Apply replaces the text of each span with the matching replacement and
// copies every other byte of content unchanged. Spans must be ordered and
// non-overlapping, as an Extractor yields them.
func Apply(content string, spans []extract.Span, replacements []string) string {
	if len(spans) != len(replacements) {
		panic(fmt.Sprintf("sorter: %d spans but %d replacements", len(spans), len(replacements)))
	}
	if len(spans) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	last := 0
	for i, span := range spans {
		b.WriteString(content[last:span.Start])
		b.WriteString(replacements[i])
		last = span.End
	}
	b.WriteString(content[last:])

	return b.String()
}

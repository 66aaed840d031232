package order

// similarClasses maps common typos and CSS-isms to Tailwind class names.
var similarClasses = map[string]string{
	"flex-column":    "flex-col",
	"flex-columns":   "flex-col",
	"flex-rows":      "flex-row",
	"bold":           "font-bold",
	"center":         "text-center",
	"align-center":   "items-center",
	"align-left":     "text-left",
	"align-right":    "text-right",
	"no-grow":        "grow-0",
	"no-shrink":      "shrink-0",
	"col":            "flex-col",
	"row":            "flex-row",
	"column":         "flex-col",
	"display-none":   "hidden",
	"display-block":  "block",
	"display-flex":   "flex",
	"position-fixed": "fixed",
	"upper":          "uppercase",
	"lower":          "lowercase",
	"strikethrough":  "line-through",
}

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 3

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Suggest returns the closest known class name for an unranked class, or ""
// when nothing is close enough. Variant prefixes are kept on the suggestion.
func (t *Table) Suggest(class string) string {
	variants, base := SplitVariants(class)
	prefix := ""
	for _, v := range variants {
		prefix += v + ":"
	}

	if s, ok := similarClasses[base]; ok && t.Known(s) {
		return prefix + s
	}

	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, e := range t.entries {
		if e.IsFamily() {
			continue
		}
		dist := levenshteinDistance(base, e.Pattern)
		if dist < bestDistance {
			bestDistance = dist
			best = e.Pattern
		}
	}

	if best == "" || best == base {
		return ""
	}
	return prefix + best
}

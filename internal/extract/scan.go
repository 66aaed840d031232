package extract

import (
	"sort"
	"strings"
)

// commentRange is a half-open byte range of a comment.
type commentRange struct {
	start, end int
}

// findComments returns the comment ranges of content in ascending order.
// HTML comments, block comments (which also covers JSX {/* */}) and //
// line comments are recognized. A // must open the line or follow
// whitespace, so URLs are not comments. Comment openers inside a quoted
// string on the same line are ignored.
func findComments(content string) []commentRange {
	if !strings.Contains(content, "<!--") && !strings.Contains(content, "/*") && !strings.Contains(content, "//") {
		return nil
	}

	var ranges []commentRange
	var quote byte
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '\n':
			quote = 0
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			// A quote glued to a word is an apostrophe, not a string.
			if i == 0 || !isWordByte(content[i-1]) {
				quote = c
			}
		case strings.HasPrefix(content[i:], "<!--"):
			if end := closeComment(content, i+len("<!--"), "-->"); end > 0 {
				ranges = append(ranges, commentRange{start: i, end: end})
				i = end - 1
			}
		case strings.HasPrefix(content[i:], "/*"):
			if end := closeComment(content, i+len("/*"), "*/"); end > 0 {
				ranges = append(ranges, commentRange{start: i, end: end})
				i = end - 1
			}
		case strings.HasPrefix(content[i:], "//") && (i == 0 || isSpace(content[i-1])):
			end := len(content)
			if nl := strings.IndexByte(content[i:], '\n'); nl >= 0 {
				end = i + nl
			}
			ranges = append(ranges, commentRange{start: i, end: end})
			i = end - 1
		}
	}
	return ranges
}

// closeComment returns the offset just past the first terminator at or
// after from, or -1 if the comment is never closed.
func closeComment(content string, from int, terminator string) int {
	n := strings.Index(content[from:], terminator)
	if n < 0 {
		return -1
	}
	return from + n + len(terminator)
}

// inComment reports whether offset falls inside one of the ranges.
func inComment(ranges []commentRange, offset int) bool {
	i := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].end > offset
	})
	return i < len(ranges) && ranges[i].start <= offset
}

// isAttributePosition reports whether an attribute name starting at offset
// can be a real attribute. The name must follow whitespace (or open the
// content), which rules out data-class= and :class=, and it must not sit
// inside another quoted attribute value of the same tag.
func isAttributePosition(content string, offset int) bool {
	if offset > 0 && !isSpace(content[offset-1]) {
		return false
	}

	open := strings.LastIndexByte(content[:offset], '<')
	if open < 0 {
		return true
	}

	// A > only closes the tag outside quoted values.
	var quote byte
	for i := open + 1; i < offset; i++ {
		c := content[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return true
		}
	}
	return quote == 0
}

// validClassList reports whether an attribute value looks like a plain list
// of classes. Values carrying template syntax or stray quoting are left
// alone so that sorting can never corrupt them.
func validClassList(inner string) bool {
	depth := 0
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if depth > 0 && isSpace(c) {
			// Whitespace here would split one class into two tokens.
			return false
		}
		switch c {
		case '{', '}', '<', '$', '`', '\\':
			return false
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return false
			}
			depth--
		case '=', '>', '"', '\'', ';':
			// Allowed inside arbitrary values and variants only.
			if depth == 0 {
				return false
			}
		}
	}
	return depth == 0
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

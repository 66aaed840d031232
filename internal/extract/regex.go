package extract

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"sync"
)

// defaultPattern matches class and className attributes with single or
// double quoted values. Group 1 holds a double quoted value, group 2 a
// single quoted one.
const defaultPattern = `\b(?:class|className)\s*=\s*(?:"([^"]*)"|'([^']*)')`

// Regex is an Extractor driven by a regular expression. The class list is
// taken from the first of its capture groups that participated in a match.
type Regex struct {
	re     *regexp.Regexp
	groups []int

	// attribute enables the checks that the match is a real attribute: it
	// must follow whitespace and must not sit inside another quoted value.
	attribute bool
}

var defaultRegex = sync.OnceValue(func() *Regex {
	return &Regex{
		re:        regexp.MustCompile(defaultPattern),
		groups:    []int{1, 2},
		attribute: true,
	}
})

// Default returns the built-in class attribute extractor.
func Default() *Regex {
	return defaultRegex()
}

// NewRegex compiles a custom extractor. The pattern's first capture group
// must match the class list and nothing else.
func NewRegex(pattern string) (*Regex, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group for the class list", pattern)
	}
	return &Regex{re: re, groups: []int{1}}, nil
}

// String returns the source of the underlying regular expression.
func (r *Regex) String() string {
	return r.re.String()
}

// FindSpans yields every acceptable class list in content, left to right.
// Matches inside comments, inside other quoted attribute values, and
// values that look like template expressions are skipped.
func (r *Regex) FindSpans(content string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		var comments []commentRange
		commentsScanned := false

		pos := 0
		for pos <= len(content) {
			base := pos
			loc := r.re.FindStringSubmatchIndex(content[base:])
			if loc == nil {
				return
			}
			matchStart, matchEnd := base+loc[0], base+loc[1]

			// Always make progress, even on an empty match.
			pos = matchEnd
			if matchEnd == matchStart {
				pos++
			}

			start, end, ok := r.group(loc)
			if !ok {
				continue
			}
			start, end = base+start, base+end

			if r.attribute && !isAttributePosition(content, matchStart) {
				continue
			}
			if !commentsScanned {
				comments = findComments(content)
				commentsScanned = true
			}
			if inComment(comments, matchStart) {
				continue
			}

			inner := content[start:end]
			if !validClassList(inner) {
				continue
			}

			if !yield(Span{Start: start, End: end, Inner: inner}) {
				return
			}
		}
	}
}

// HasClasses reports whether content contains at least one span.
func (r *Regex) HasClasses(content string) bool {
	for range r.FindSpans(content) {
		return true
	}
	return false
}

// group returns the offsets, relative to the searched text, of the first
// configured capture group that participated in the match.
func (r *Regex) group(loc []int) (start, end int, ok bool) {
	for _, g := range r.groups {
		if 2*g+1 >= len(loc) {
			continue
		}
		if loc[2*g] >= 0 {
			return loc[2*g], loc[2*g+1], true
		}
	}
	return 0, 0, false
}

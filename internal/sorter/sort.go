package sorter

import (
	"cmp"
	"slices"
	"strings"
)

// SortTokens returns the tokens stably ordered by rank. Tokens of equal rank,
// including the unranked ones at the end, keep their input order. With
// removeDuplicates set, only the first occurrence of each raw class is kept.
// The input slice is not modified.
func SortTokens(tokens []Token, removeDuplicates bool) []Token {
	out := make([]Token, 0, len(tokens))
	if removeDuplicates {
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if seen[tok.Raw] {
				continue
			}
			seen[tok.Raw] = true
			out = append(out, tok)
		}
	} else {
		out = append(out, tokens...)
	}

	slices.SortStableFunc(out, func(a, b Token) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return out
}

// Join renders tokens as a class list separated by single spaces.
func Join(tokens []Token) string {
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0].Raw
	}

	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Raw)
	}
	return b.String()
}

package sorter

import "github.com/grindlemire/twsort/internal/order"

// Token is one class of a class list.
type Token struct {
	Raw   string // exact text, including variants and arbitrary values
	Rank  int    // order.Unranked when the class is unknown
	Start int    // byte offset of Raw within the class list
	End   int
}

// Tokenize splits a class list on runs of whitespace. Tokens keep their
// left-to-right order and start out Unranked.
func Tokenize(inner string) []Token {
	var tokens []Token

	pos := 0
	for pos < len(inner) {
		// Skip leading whitespace
		for pos < len(inner) && isSpace(inner[pos]) {
			pos++
		}
		if pos >= len(inner) {
			break
		}

		// Find the end of this class (next whitespace or end of string)
		start := pos
		for pos < len(inner) && !isSpace(inner[pos]) {
			pos++
		}

		tokens = append(tokens, Token{
			Raw:   inner[start:pos],
			Rank:  order.Unranked,
			Start: start,
			End:   pos,
		})
	}

	return tokens
}

// RankTokens resolves the rank of every token against the table.
func RankTokens(tokens []Token, table *order.Table) {
	for i := range tokens {
		tokens[i].Rank = table.RankOf(tokens[i].Raw)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

package order

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Unranked is the rank of a class that matches no table entry. It sorts
// after every ranked class.
const Unranked = math.MaxInt

// Entry is one pattern of the order table and its rank.
type Entry struct {
	Pattern string `yaml:"pattern"`
	Rank    int    `yaml:"rank"`
}

// IsFamily reports whether the entry matches every class sharing its prefix.
func (e Entry) IsFamily() bool {
	return strings.HasSuffix(e.Pattern, "*")
}

// Table maps class names and class families to ranks. A Table is immutable
// once built and safe for concurrent use.
type Table struct {
	entries  []Entry
	exact    map[string]int
	families map[string]int // keyed by prefix, without the trailing "*"
}

// NewTable builds a table from an ordered list of patterns. The index of a
// pattern is its rank.
func NewTable(patterns []string) (*Table, error) {
	t := &Table{
		entries:  make([]Entry, 0, len(patterns)),
		exact:    make(map[string]int, len(patterns)),
		families: make(map[string]int),
	}

	for i, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			return nil, fmt.Errorf("pattern %d is empty", i)
		}
		if strings.ContainsAny(pattern, " \t\n") {
			return nil, fmt.Errorf("pattern %q contains whitespace", pattern)
		}

		entry := Entry{Pattern: pattern, Rank: i}
		if entry.IsFamily() {
			prefix := strings.TrimSuffix(pattern, "*")
			if prefix == "" {
				return nil, fmt.Errorf("pattern %d matches every class", i)
			}
			if _, dup := t.families[prefix]; dup {
				return nil, fmt.Errorf("duplicate pattern %q", pattern)
			}
			t.families[prefix] = i
		} else {
			if _, dup := t.exact[pattern]; dup {
				return nil, fmt.Errorf("duplicate pattern %q", pattern)
			}
			t.exact[pattern] = i
		}
		t.entries = append(t.entries, entry)
	}

	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(patterns []string) *Table {
	t, err := NewTable(patterns)
	if err != nil {
		panic("order: " + err.Error())
	}
	return t
}

var defaultTable = sync.OnceValue(func() *Table {
	return MustNewTable(defaultClasses)
})

// Default returns the built-in Tailwind order table. It is built on first
// use and shared by every caller.
func Default() *Table {
	return defaultTable()
}

// Len returns the number of patterns in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table's entries in rank order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Patterns returns the table's patterns in rank order.
func (t *Table) Patterns() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Pattern
	}
	return out
}

// RankOf returns the rank of a class, or Unranked when no entry matches.
//
// Variant prefixes (sm:, hover:, dark:, ...) are ignored, so a prefixed
// class ranks exactly like its base utility. A class with an unrecognized
// prefix is Unranked.
func (t *Table) RankOf(class string) int {
	if class == "" {
		return Unranked
	}
	if rank, ok := t.exact[class]; ok {
		return rank
	}

	base, ok := BaseName(class)
	if !ok {
		return Unranked
	}
	return t.rankOfBase(base)
}

// rankOfBase resolves a class with its variants and modifiers removed.
func (t *Table) rankOfBase(base string) int {
	if rank, ok := t.exact[base]; ok {
		return rank
	}

	// Arbitrary values resolve by the utility they are attached to.
	lookup := base
	if i := strings.Index(base, "-["); i > 0 && strings.HasSuffix(base, "]") {
		lookup = base[:i+1]
	}

	// Longest family prefix wins: try every hyphen boundary from the right.
	for i := len(lookup) - 1; i > 0; i-- {
		if lookup[i] != '-' {
			continue
		}
		if rank, ok := t.families[lookup[:i+1]]; ok {
			return rank
		}
	}

	return Unranked
}

// Known reports whether the class resolves to a rank.
func (t *Table) Known(class string) bool {
	return t.RankOf(class) != Unranked
}

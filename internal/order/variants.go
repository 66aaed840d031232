package order

import "strings"

// SplitVariants splits a class into its variant prefixes and the base
// utility. Colons inside brackets or parentheses do not separate variants,
// so "[&:hover]:p-4" yields the variant "[&:hover]" and base "p-4".
func SplitVariants(class string) (variants []string, base string) {
	depth := 0
	start := 0
	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				variants = append(variants, class[start:i])
				start = i + 1
			}
		}
	}
	return variants, class[start:]
}

// IsVariant reports whether name is a recognized variant prefix.
func IsVariant(name string) bool {
	if name == "" {
		return false
	}
	if knownVariants[name] {
		return true
	}
	// Arbitrary variants such as [&>*] or [@media(min-width:900px)].
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		return true
	}
	for _, family := range variantFamilies {
		if len(name) > len(family) && strings.HasPrefix(name, family) {
			return true
		}
	}
	return false
}

// BaseName strips variant prefixes, the important modifier and the negative
// sign from a class. It returns false when a prefix is not a recognized
// variant or nothing is left after stripping.
func BaseName(class string) (string, bool) {
	variants, base := SplitVariants(class)
	for _, v := range variants {
		if !IsVariant(v) {
			return "", false
		}
	}

	base = strings.TrimPrefix(base, "!")
	base = strings.TrimSuffix(base, "!")
	if len(base) > 1 && base[0] == '-' && base[1] != '-' {
		base = base[1:]
	}

	if base == "" {
		return "", false
	}
	return base, true
}

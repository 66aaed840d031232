// Package order holds the canonical class order used to sort Tailwind
// classes.
//
// A [Table] maps exact class names ("flex") and class families ("p-*") to an
// integer rank. [Table.RankOf] resolves a raw class by stripping variant
// prefixes ("md:hover:"), the important modifier, the negative sign and
// arbitrary values before looking up the base utility. Classes that match
// nothing get [Unranked].
//
// [Default] returns the built-in table; [LoadFile] reads a replacement from
// YAML.
package order

// Package slug converts display names into canonical comparison keys and
// tests name equality under that canonicalization.
//
// It is the deduplication backstop for every save path: two names that
// differ only by case, whitespace, punctuation or diacritics normalize to
// the same key and are treated as the same entity.
//
// # Edge Case
//
// A name that normalizes to the empty string matches everything. This
// mirrors the upstream matching behavior and is relied on by callers that
// filter obviously-bogus provider rows; callers matching real entities
// must check for empty names first.
//
// # Usage
//
//	slug.Normalize("  Daft   Punk ") // "daft-punk"
//	slug.Matches("Björk", "bjork")   // true
package slug

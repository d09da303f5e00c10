package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes runes (NFC -> NFD) and removes combining marks,
// folding diacritics into their base letters ("Björk" -> "Bjork").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts a display name into its canonical comparison key.
// It lowercases, trims, collapses internal whitespace, strips diacritics
// and punctuation, and joins the remaining words with a dash.
//
// The result is stable across invocations and locale-independent, and
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the raw input.
		folded = name
	}

	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteRune(' ')
		}
		// Everything else (punctuation, symbols) is dropped.
	}

	return strings.Join(strings.Fields(b.String()), "-")
}

// Matches reports whether two display names are the same entity under
// canonical-name equality.
//
// An empty key on either side is an automatic match. Callers comparing
// real entities must guard against empty names before calling Matches.
func Matches(a, b string) bool {
	ka, kb := Normalize(a), Normalize(b)
	if ka == "" || kb == "" {
		return true
	}
	return ka == kb
}

// ContainsName reports whether any entry in names matches name.
func ContainsName(name string, names []string) bool {
	for _, candidate := range names {
		if Matches(name, candidate) {
			return true
		}
	}
	return false
}

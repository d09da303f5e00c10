package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and dashes", "Daft Punk", "daft-punk"},
		{"collapses whitespace", "  Daft   Punk ", "daft-punk"},
		{"strips diacritics", "Björk", "bjork"},
		{"strips punctuation", "AC/DC!", "acdc"},
		{"keeps digits", "Blink 182", "blink-182"},
		{"underscores as separators", "daft_punk", "daft-punk"},
		{"empty input", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Daft Punk", "Björk", "  Sigur   Rós ", "AC/DC"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Daft Punk", "  daft   punk "))
	assert.True(t, Matches("Björk", "bjork"))
	assert.False(t, Matches("Daft Punk", "Justice"))

	// Empty names match anything. Documented edge case; callers guard.
	assert.True(t, Matches("", "Anything"))
	assert.True(t, Matches("!!!", "Anything"))
}

func TestContainsName(t *testing.T) {
	names := []string{"Daft Punk", "Justice", "Air"}

	assert.True(t, ContainsName("daft punk", names))
	assert.False(t, ContainsName("Moderat", names))
	assert.False(t, ContainsName("Moderat", nil))
}

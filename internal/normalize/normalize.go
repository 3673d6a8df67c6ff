package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text reduces s to a comparison-safe form: compatibility-decomposed,
// combining marks removed, case-folded, whitespace runs collapsed to a
// single space and trimmed. "  MARÇO   2025 " and "marco 2025" yield the
// same result. Text(Text(s)) == Text(s).
func Text(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Fold(),
		// Folding may produce decomposable runes again.
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
	)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(out), " ")
}

// HasPrefix reports whether s starts with prefix once both are normalized.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(Text(s), Text(prefix))
}

// Equal reports whether a and b normalize to the same text.
func Equal(a, b string) bool {
	return Text(a) == Text(b)
}

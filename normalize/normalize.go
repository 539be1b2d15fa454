package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ConvertString canonicalizes a payee or description string from a statement
// export. Exports mix half-width and full-width forms of the same text, so the
// stored form is the NFKC folding. ASCII hyphens are rewritten to the
// half-width long-vowel mark first: statements use "-" where katakana text
// means "ー", and NFKC alone would leave the hyphen untouched.
func ConvertString(s string) string {
	s = strings.ReplaceAll(s, "-", "ｰ")
	return norm.NFKC.String(s)
}

package lang

import "strings"

// Normalize rewrites an Arabic question into an English-equivalent working
// string used only for matching; the original text is never mutated and the
// answer is still rendered in the detected locale.
//
// Substitution runs in three passes (products, countries, question idioms).
// Within each pass the dictionary terms are applied longest-first so that a
// short entry can never clobber a longer phrase it is a substring of.
func (d *Dictionary) Normalize(text string) string {
	result := text
	for _, pass := range [][]Term{d.arabicProducts, d.arabicCountries, d.arabicIdioms} {
		for _, term := range pass {
			result = strings.ReplaceAll(result, term.Text, term.Canonical)
		}
	}
	return result
}

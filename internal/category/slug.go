package category

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strokedLetters folds the letters NFD cannot decompose: the stroke on ł is
// part of the letter, not a combining mark, so mark removal alone misses it.
var strokedLetters = strings.NewReplacer("ł", "l", "Ł", "L")

var removeMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	spaceRuns = regexp.MustCompile(`\s+`)
	nonSlug   = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify turns one category segment into its URL form: diacritics folded to
// base Latin letters, lowercased, whitespace runs collapsed to single hyphens,
// everything else dropped. "Bezzbożowa" → "bezzbozowa",
// "Karma wg. wieku" → "karma-wg-wieku".
func Slugify(segment string) string {
	s := strokedLetters.Replace(segment)
	if folded, _, err := transform.String(removeMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = spaceRuns.ReplaceAllString(s, "-")
	return nonSlug.ReplaceAllString(s, "")
}

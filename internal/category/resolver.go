package category

import (
	"strings"
	"unicode"

	"github.com/miskazdrowia/shop-backend/internal/feed"
)

// PathToPrefix reconstructs the feed category prefix for a URL category path:
// "psy/sucha-karma" → "Psy / Sucha karma". Kebab-case is uninverted by
// capitalizing only each segment's first letter, so this is a best-effort
// reconstruction: multi-word segments lose the source capitalization variants
// and matching stays a case-insensitive prefix test, never exact equality.
func PathToPrefix(urlPath string) string {
	var parts []string
	for _, seg := range strings.Split(urlPath, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		words := strings.ReplaceAll(seg, "-", " ")
		parts = append(parts, capitalizeFirst(words))
	}
	return strings.Join(parts, " / ")
}

// Matches reports whether at least one of the product's category strings
// starts with the reconstructed prefix, case-insensitively. Category strings
// are re-joined from their trimmed segments first, so inconsistent feed
// whitespace around the separators does not break matching.
func Matches(p feed.Product, prefix string) bool {
	if prefix == "" {
		return false
	}
	want := strings.ToLower(prefix)
	for _, cat := range p.Categories {
		normalized := strings.ToLower(strings.Join(splitPath(cat), " / "))
		if strings.HasPrefix(normalized, want) {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

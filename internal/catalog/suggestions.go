package catalog

// Suggestions is the static list shown under the storefront search box.
// There is no search index; this is the entire search surface.
var Suggestions = []string{
	"sucha karma dla psa",
	"mokra karma dla kota",
	"karma bezzbożowa",
	"karma hipoalergiczna",
	"karma dla szczeniąt",
	"karma dla kociąt",
	"karma dla seniora",
	"przysmaki dla psa",
}

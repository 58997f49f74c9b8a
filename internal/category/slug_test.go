package category

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Sucha karma", "sucha-karma"},
		{"Bezzbożowa", "bezzbozowa"},
		{"Karma wg. wieku", "karma-wg-wieku"},
		{"Psy dorosłe", "psy-dorosle"},
		{"Szczenięta", "szczenieta"},
		{"Kocięta", "kocieta"},
		{"żółć ĄĆĘŁŃÓŚŹŻ", "zolc-acelnoszz"},
		{"  spaced   out  ", "spaced-out"},
		{"Psy", "psy"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

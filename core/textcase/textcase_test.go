package textcase

import "testing"

func TestTitle(t *testing.T) {
	tc := New()
	cases := []struct {
		in   string
		want string
	}{
		{"north america", "North America"},
		{"new zealand", "New Zealand"},
		{"USA", "USA"},
		{"washington DC", "Washington DC"},
		{"", ""},
		{"already Title", "Already Title"},
	}
	for _, c := range cases {
		if got := tc.Title(c.in); got != c.want {
			t.Errorf("Title(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

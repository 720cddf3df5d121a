package ui

import "testing"

func TestRelationIcon(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"supports", "This supports the claim", "✓"},
		{"contradicts", "Partially contradicts", "✗"},
		{"context", "Provides context", "≡"},
		{"neutral", "Neutral reporting", "∿"},
		{"unknown", "Tangentially related", "→"},
		{"empty", "", "→"},
		{"case_insensitive", "STRONGLY SUPPORTS", "✓"},
		// Priority order: support is checked before contradict.
		{"both_terms", "Supports one part but contradicts another", "✓"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := relationIcon(tc.in); got != tc.want {
				t.Fatalf("relationIcon(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDomainOf(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"strips_www", "https://www.example.com/x", "example.com"},
		{"keeps_subdomain", "https://news.example.co.uk/article?id=1", "news.example.co.uk"},
		{"not_a_url", "not a url", "source"},
		{"empty", "", "source"},
		{"schemeless", "example.com/page", "source"},
		{"port_kept", "http://localhost:8000/doc", "localhost:8000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domainOf(tc.in); got != tc.want {
				t.Fatalf("domainOf(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestScorePercent(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want int
	}{
		{"rounds_up", 0.837, 84},
		{"rounds_down", 0.832, 83},
		{"zero", 0, 0},
		{"one", 1, 100},
		{"half_rounds_up", 0.005, 1},
		// No clamping: out-of-range input stays out of range.
		{"above_range", 1.2, 120},
		{"below_range", -0.1, -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scorePercent(tc.in); got != tc.want {
				t.Fatalf("scorePercent(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short_untouched", "abc", 10, "abc"},
		{"trimmed", "  abc  ", 10, "abc"},
		{"zero_limit", "abcdef", 0, "abcdef"},
		{"exact_fit", "abcde", 5, "abcde"},
		{"ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny_limit", "abcdef", 2, "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Fatalf("firstLine = %q, want one", got)
	}
	if got := firstLine("  plain  "); got != "plain" {
		t.Fatalf("firstLine = %q, want plain", got)
	}
}

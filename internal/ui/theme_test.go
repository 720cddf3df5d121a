package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		if theme.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, theme.Name)
		}
		if theme.Text == "" || theme.Background == "" {
			t.Fatalf("theme %q missing core colors", name)
		}
	}

	fallback := GetTheme("NoSuchTheme")
	if fallback.Name != "Nightfox" {
		t.Fatalf("fallback theme = %q, want Nightfox", fallback.Name)
	}
}

func TestNextTheme_CyclesThroughAll(t *testing.T) {
	names := ThemeNames()
	current := names[0]
	seen := map[string]bool{current: true}

	for i := 1; i < len(names); i++ {
		current = NextTheme(current)
		if seen[current] {
			t.Fatalf("theme %q repeated before cycle completed", current)
		}
		seen[current] = true
	}

	if next := NextTheme(current); next != names[0] {
		t.Fatalf("cycle did not wrap: NextTheme(%q) = %q, want %q", current, next, names[0])
	}

	if next := NextTheme("NoSuchTheme"); next != names[0] {
		t.Fatalf("NextTheme for unknown = %q, want %q", next, names[0])
	}
}

func TestSourceBadge_KnownTypesHaveColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, sourceType := range []string{"news", "academic", "government", "organization", "blog", "other"} {
			if theme.SourceColors[sourceType] == "" {
				t.Fatalf("theme %q missing color for source type %q", name, sourceType)
			}
		}
	}
}

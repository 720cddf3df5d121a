package ui

import (
	"math"
	"net/url"
	"strings"
)

// relation classifies the free-text relation_to_claim field.
type relation int

const (
	relationUnknown relation = iota
	relationSupports
	relationContradicts
	relationContext
	relationNeutral
)

// relationKind matches substrings in priority order; the first match wins, so
// a label containing both "support" and "contradict" classifies as supporting.
func relationKind(relationToClaim string) relation {
	r := strings.ToLower(relationToClaim)
	switch {
	case strings.Contains(r, "support"):
		return relationSupports
	case strings.Contains(r, "contradict"):
		return relationContradicts
	case strings.Contains(r, "context"):
		return relationContext
	case strings.Contains(r, "neutral"):
		return relationNeutral
	default:
		return relationUnknown
	}
}

// relationIcon maps a relation_to_claim label to a single-cell marker.
func relationIcon(relationToClaim string) string {
	switch relationKind(relationToClaim) {
	case relationSupports:
		return "✓"
	case relationContradicts:
		return "✗"
	case relationContext:
		return "≡"
	case relationNeutral:
		return "∿"
	default:
		return "→"
	}
}

// domainOf extracts the host from an evidence link, stripping a leading
// "www.". Links that do not parse to a URL with a host yield the literal
// fallback "source"; the function never panics on garbage input.
func domainOf(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return "source"
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// scorePercent converts a relevance score in [0,1] to a whole percentage.
// No clamping is performed: out-of-range scores produce out-of-range
// percentages, matching the service contract that the caller owns the range.
func scorePercent(score float64) int {
	return int(math.Round(score * 100))
}

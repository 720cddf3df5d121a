// Package ui implements the sleuth terminal interface with Bubble Tea.
//
// The screen is a single view: a query input, an optional row of source-type
// filter chips, and the results area. The results area shows one of four
// things depending on the session phase — a welcome hint before the first
// search, a spinner with rotating status messages while a search is in
// flight, an error banner, or the evidence card list.
//
// Asynchronous work (the search request, the one-shot catalog fetch, the
// startup health probe, and the 2-second status rotation tick) runs as
// Bubble Tea commands; their results come back as typed messages handled in
// Update. Search outcomes carry the sequence number of the submission they
// belong to, and the session store drops any outcome that was superseded by
// a later submission.
//
// Pure display helpers (relationIcon, domainOf, scorePercent) live in
// helpers.go and have no side effects, which keeps card formatting testable
// without a terminal.
package ui

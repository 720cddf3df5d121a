// Package session owns the search request lifecycle and the active filter set.
//
// Store is the single writer of session state. A submission moves the session
// to Loading and receives a monotonically increasing sequence number; the
// completion carrying the latest issued sequence moves it to Success or Error,
// and completions from superseded requests are discarded. An empty or
// whitespace-only query never becomes a submission at all.
//
// FilterSet tracks the selected source-type filters independently of the
// request lifecycle: toggling a filter has no effect on an in-flight request
// and only shapes the next submission's payload.
package session

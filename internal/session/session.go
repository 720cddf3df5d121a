package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/mwhitfield/sleuth/internal/finder"
)

// Phase identifies which of the four session states is live.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// FailureMessage is shown when a search fails without a more specific
// server-supplied reason.
const FailureMessage = "Search failed. Please try again."

// State is a point-in-time view of the search session. Exactly one phase is
// live at a time; HasSearched is independent and never reverts once set.
type State struct {
	Phase       Phase
	Query       string // last submitted query, trimmed
	Result      *finder.SearchResponse
	ErrMessage  string
	HasSearched bool
}

// Store coordinates the request lifecycle for search submissions. Each
// accepted submission is issued a monotonically increasing sequence number,
// and only the completion matching the latest issued sequence is applied;
// stale completions from overlapping requests are discarded.
type Store struct {
	mu         sync.RWMutex
	state      State
	lastIssued uint64
}

// Begin validates and registers a submission. A query that trims to empty is
// a no-op: no sequence is issued and the state is unchanged. Otherwise the
// session enters Loading, prior result/error display is cleared, the trimmed
// query is retained, and the new sequence number is returned.
func (s *Store) Begin(query string) (seq uint64, ok bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIssued++
	s.state.Phase = PhaseLoading
	s.state.Query = trimmed
	s.state.Result = nil
	s.state.ErrMessage = ""
	s.state.HasSearched = true
	return s.lastIssued, true
}

// Complete applies the outcome of the request identified by seq. It reports
// whether the outcome was applied; completions for anything but the latest
// issued sequence are dropped so a slow earlier request cannot overwrite a
// newer one.
func (s *Store) Complete(seq uint64, result *finder.SearchResponse, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lastIssued {
		return false
	}

	if err != nil {
		s.state.Phase = PhaseError
		s.state.Result = nil
		s.state.ErrMessage = userMessage(err)
		return true
	}

	s.state.Phase = PhaseSuccess
	s.state.Result = result
	s.state.ErrMessage = ""
	return true
}

// State returns a copy of the current session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether a submission is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Phase == PhaseLoading
}

// userMessage maps a search failure to the banner text. The server's own
// detail text wins when the API supplied one; everything else collapses to
// the fixed failure message.
func userMessage(err error) string {
	var apiErr *finder.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return FailureMessage
}

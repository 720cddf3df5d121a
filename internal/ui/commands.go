package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitfield/sleuth/internal/finder"
)

// Messages

// statusTickMsg drives the ambient status rotation while a search is in flight.
type statusTickMsg time.Time

// healthMsg reports the one-shot startup reachability probe.
type healthMsg struct {
	ok  bool
	err error
}

// sourceTypesMsg delivers the source-type catalog fetched at startup.
type sourceTypesMsg struct {
	options []finder.SourceTypeOption
	err     error
}

// searchDoneMsg carries the settled outcome of one search request. Seq ties
// the outcome back to the submission it belongs to so stale completions can
// be discarded.
type searchDoneMsg struct {
	seq    uint64
	result *finder.SearchResponse
	err    error
}

// Commands

func statusTickCmd() tea.Cmd {
	return tea.Tick(statusRotateEvery, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func checkHealthCmd(ctx context.Context, client finder.EvidenceSearcher) tea.Cmd {
	return func() tea.Msg {
		probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		health, err := client.FetchHealth(probeCtx)
		if err != nil {
			return healthMsg{err: err}
		}
		return healthMsg{ok: health.Healthy()}
	}
}

func loadSourceTypesCmd(ctx context.Context, client finder.EvidenceSearcher) tea.Cmd {
	return func() tea.Msg {
		options, err := client.FetchSourceTypes(ctx)
		return sourceTypesMsg{options: options, err: err}
	}
}

func searchCmd(ctx context.Context, client finder.EvidenceSearcher, seq uint64, req finder.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Search(ctx, req)
		return searchDoneMsg{seq: seq, result: result, err: err}
	}
}

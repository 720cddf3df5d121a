package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitfield/sleuth/internal/finder"
	"github.com/mwhitfield/sleuth/internal/session"
)

// stubSearcher satisfies finder.EvidenceSearcher without a network.
type stubSearcher struct {
	sourceTypes []finder.SourceTypeOption
	result      *finder.SearchResponse
	err         error
}

func (s *stubSearcher) FetchSourceTypes(context.Context) ([]finder.SourceTypeOption, error) {
	return s.sourceTypes, nil
}

func (s *stubSearcher) Search(context.Context, finder.SearchRequest) (*finder.SearchResponse, error) {
	return s.result, s.err
}

func (s *stubSearcher) FetchHealth(context.Context) (*finder.HealthResponse, error) {
	return &finder.HealthResponse{Status: "healthy"}, nil
}

func newTestModel(t *testing.T, store *session.Store) Model {
	t.Helper()
	m := New(Options{
		Client:    &stubSearcher{},
		Session:   store,
		Filters:   session.NewFilterSet(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestSubmit_EmptyQueryIsNoOp(t *testing.T) {
	store := &session.Store{}
	m := newTestModel(t, store)
	m.queryInput.SetValue("   ")

	m, cmd := pressEnter(t, m)
	if cmd != nil {
		t.Fatal("empty submission produced a command")
	}
	if state := store.State(); state.Phase != session.PhaseIdle || state.HasSearched {
		t.Fatalf("state = %#v, want untouched idle", state)
	}
	if m.rotator.Running() {
		t.Fatal("rotator started for an empty submission")
	}
}

func TestSubmit_StartsLoadingAndRotation(t *testing.T) {
	store := &session.Store{}
	m := newTestModel(t, store)
	m.queryInput.SetValue("Is coffee healthy?")

	m, cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatal("submission produced no command")
	}
	if !store.Loading() {
		t.Fatal("session not loading after submit")
	}
	if got := m.rotator.Current(); got != searchStatusMessages[0] {
		t.Fatalf("rotator message = %q, want first", got)
	}

	// Ticks advance the rotation while loading.
	next, tickCmd := m.Update(statusTickMsg{})
	m = next.(Model)
	if tickCmd == nil {
		t.Fatal("tick chain stopped while still loading")
	}
	if got := m.rotator.Current(); got != searchStatusMessages[1] {
		t.Fatalf("rotator message after tick = %q, want second", got)
	}
}

func TestSearchDone_AppliesOutcomeAndStopsRotation(t *testing.T) {
	store := &session.Store{}
	m := newTestModel(t, store)
	m.queryInput.SetValue("claim")
	m, _ = pressEnter(t, m)

	result := &finder.SearchResponse{
		Query:         "claim",
		TotalResults:  1,
		EvidenceCards: []finder.EvidenceCard{{ID: "1", Title: "Card", Link: "https://www.example.com/a"}},
	}
	next, _ := m.Update(searchDoneMsg{seq: 1, result: result})
	m = next.(Model)

	if state := store.State(); state.Phase != session.PhaseSuccess {
		t.Fatalf("phase = %v, want success", state.Phase)
	}
	if m.rotator.Running() {
		t.Fatal("rotator still running after completion")
	}

	// A tick arriving after completion drops the chain.
	next, tickCmd := m.Update(statusTickMsg{})
	m = next.(Model)
	if tickCmd != nil {
		t.Fatal("tick chain survived leaving the loading phase")
	}
	if !strings.Contains(m.View(), "example.com") {
		t.Fatal("rendered view missing card domain")
	}
}

func TestSearchDone_StaleOutcomeIgnored(t *testing.T) {
	store := &session.Store{}
	m := newTestModel(t, store)

	m.queryInput.SetValue("first")
	m, _ = pressEnter(t, m)
	m.queryInput.SetValue("second")
	m, _ = pressEnter(t, m)

	// The first request settles late; it must not overwrite the newer one.
	next, _ := m.Update(searchDoneMsg{seq: 1, err: errors.New("slow failure")})
	m = next.(Model)
	if state := store.State(); state.Phase != session.PhaseLoading {
		t.Fatalf("phase = %v, want still loading after stale outcome", state.Phase)
	}
	if !m.rotator.Running() {
		t.Fatal("rotator stopped by a stale outcome")
	}

	next, _ = m.Update(searchDoneMsg{seq: 2, result: &finder.SearchResponse{Query: "second"}})
	m = next.(Model)
	if state := store.State(); state.Phase != session.PhaseSuccess || state.Result.Query != "second" {
		t.Fatalf("state = %#v, want success for the second query", state)
	}
}

func TestCatalogFailure_FilterRowOmittedAndSearchWorks(t *testing.T) {
	store := &session.Store{}
	m := newTestModel(t, store)

	next, _ := m.Update(sourceTypesMsg{err: errors.New("catalog down")})
	m = next.(Model)

	if strings.Contains(m.View(), "Sources:") {
		t.Fatal("filter row rendered with an empty catalog")
	}

	m.queryInput.SetValue("still works")
	m, cmd := pressEnter(t, m)
	if cmd == nil || !store.Loading() {
		t.Fatal("search blocked by catalog failure")
	}
}

func TestFilterToggleViaKeys(t *testing.T) {
	store := &session.Store{}
	m := newTestModel(t, store)

	next, _ := m.Update(sourceTypesMsg{options: []finder.SourceTypeOption{
		{Value: "news", Label: "News"},
		{Value: "academic", Label: "Academic"},
	}})
	m = next.(Model)

	// tab to the filter row, move right, toggle academic.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	if !m.filters.IsSelected("academic") || m.filters.IsSelected("news") {
		t.Fatalf("filters = %#v, want only academic selected", m.filters.Values())
	}

	// Toggle again: back to the original empty set.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.filters.Len() != 0 {
		t.Fatalf("filters = %#v, want empty after second toggle", m.filters.Values())
	}
}

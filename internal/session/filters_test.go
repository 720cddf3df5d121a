package session

import (
	"reflect"
	"testing"
)

func TestFilterSet_ToggleIsIdempotentPair(t *testing.T) {
	filters := NewFilterSet()

	filters.Toggle("news")
	if !filters.IsSelected("news") {
		t.Fatal("news not selected after toggle")
	}
	if filters.Len() != 1 {
		t.Fatalf("Len = %d, want 1", filters.Len())
	}

	filters.Toggle("news")
	if filters.IsSelected("news") {
		t.Fatal("news still selected after second toggle")
	}
	if filters.Len() != 0 {
		t.Fatalf("Len = %d, want 0", filters.Len())
	}
}

func TestFilterSet_ValuesSortedAndNilWhenEmpty(t *testing.T) {
	filters := NewFilterSet()

	if values := filters.Values(); values != nil {
		t.Fatalf("Values = %#v, want nil for empty set", values)
	}

	filters.Toggle("news")
	filters.Toggle("academic")
	filters.Toggle("government")

	want := []string{"academic", "government", "news"}
	if got := filters.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values = %#v, want %#v", got, want)
	}

	// No duplicates regardless of toggle history.
	filters.Toggle("news")
	filters.Toggle("news")
	if got := filters.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values = %#v, want %#v", got, want)
	}
}

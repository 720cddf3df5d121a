package session

import "sort"

// FilterSet tracks which source-type values are selected. Membership is
// unordered and duplicate-free; the zero value is not usable, use NewFilterSet.
type FilterSet struct {
	members map[string]struct{}
}

// NewFilterSet returns an empty filter set.
func NewFilterSet() *FilterSet {
	return &FilterSet{members: make(map[string]struct{})}
}

// Toggle flips membership for value: selected values are removed, unselected
// ones are added. Toggling the same value twice restores the original set.
func (f *FilterSet) Toggle(value string) {
	if _, ok := f.members[value]; ok {
		delete(f.members, value)
		return
	}
	f.members[value] = struct{}{}
}

// IsSelected reports whether value is a member.
func (f *FilterSet) IsSelected(value string) bool {
	_, ok := f.members[value]
	return ok
}

// Len returns the number of selected values.
func (f *FilterSet) Len() int {
	return len(f.members)
}

// Values returns the selected values sorted for a stable request payload.
// An empty set yields nil, which the finder package marshals as JSON null
// ("no filter") rather than an empty array.
func (f *FilterSet) Values() []string {
	if len(f.members) == 0 {
		return nil
	}
	values := make([]string, 0, len(f.members))
	for v := range f.members {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

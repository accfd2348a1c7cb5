package notation

import (
	"fmt"
	"sort"
	"strings"
)

// NoteSet is an unordered set of absolute pitches (or signed intervals,
// depending on context) in abstract pitch units. The zero value is not
// usable; construct with NewNoteSet.
type NoteSet map[int]struct{}

// NewNoteSet creates a set containing the given values. Duplicates collapse.
func NewNoteSet(values ...int) NoteSet {
	s := make(NoteSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value into the set.
func (s NoteSet) Add(v int) {
	s[v] = struct{}{}
}

// Contains reports whether the set holds the given value.
func (s NoteSet) Contains(v int) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct values in the set.
func (s NoteSet) Len() int {
	return len(s)
}

// Sorted returns the set's values in ascending order.
func (s NoteSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Equal reports whether both sets hold exactly the same values.
func (s NoteSet) Equal(other NoteSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s NoteSet) Clone() NoteSet {
	out := make(NoteSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// String renders the set in ascending order so output is reproducible.
func (s NoteSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

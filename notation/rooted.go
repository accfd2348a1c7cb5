package notation

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-muse/theory/interval"
	"github.com/RyanBlaney/sonido-muse/theory/tuning"
)

// RootedCollection defines a pitch set by a root pitch and a set of signed
// intervals measured above it. The absolute note set is derived once at
// construction; the collection is immutable after that.
//
// Root and intervals are stored as given, unreduced: they may be negative
// or exceed the tuning system's cardinality. FundamentalRepresentation
// produces the octave-equivalent normalized form.
type RootedCollection struct {
	Collection

	root      int
	intervals NoteSet
}

// NewRootedCollection creates a rooted collection over the default tuning
// system with an unspecified duration.
func NewRootedCollection(root int, intervals NoteSet) *RootedCollection {
	return NewRootedCollectionWith(root, intervals, 0, nil)
}

// NewRootedCollectionWith creates a rooted collection with an explicit
// duration (in seconds) and tuning system. A nil system selects the shared
// default. The interval set may be empty.
func NewRootedCollectionWith(root int, intervals NoteSet, duration float64, system *tuning.System) *RootedCollection {
	if intervals == nil {
		intervals = NewNoteSet()
	}
	rc := &RootedCollection{
		root:      root,
		intervals: intervals,
	}
	rc.Collection = *NewCollectionWith(rc.GenerateNotes(), duration, system)
	return rc
}

// Root returns the reference pitch the intervals are measured from.
func (rc *RootedCollection) Root() int {
	return rc.root
}

// Intervals returns the signed interval set above the root. Read-only.
func (rc *RootedCollection) Intervals() NoteSet {
	return rc.intervals
}

// GenerateNotes returns the absolute pitch set {root + i} for every
// interval i in the collection. Pure and deterministic.
func (rc *RootedCollection) GenerateNotes() NoteSet {
	notes := make(NoteSet, len(rc.intervals))
	for i := range rc.intervals {
		notes[rc.root+i] = struct{}{}
	}
	return notes
}

func (rc *RootedCollection) String() string {
	return fmt.Sprintf("%d | %s", rc.root, rc.intervals)
}

// IntervalOccurrences enumerates every interval between pairs of distinct
// members of the interval collection, reduces each into the tuning
// system's canonical range, and tallies how often each canonical interval
// occurs. Collections with fewer than two intervals yield an empty tally.
//
// The tally is keyed by the reduced interval throughout; the raw pairwise
// distance never appears as a key.
func (rc *RootedCollection) IntervalOccurrences() (map[int]int, error) {
	cardinality := rc.System().Cardinality()
	sorted := rc.intervals.Sorted()

	occurrences := make(map[int]int)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			// Ascending order makes the raw distance non-negative, but the
			// reducer accepts any sign regardless.
			between := sorted[j] - sorted[i]
			canonical, err := interval.Reduce(between, cardinality)
			if err != nil {
				return nil, fmt.Errorf("interval occurrences: %w", err)
			}
			occurrences[canonical]++
		}
	}
	return occurrences, nil
}

// Complexity computes the intervallic complexity of the collection: each
// canonical pairwise interval's occurrence count weighted by the tuning
// system's complexity table, summed. Collections with fewer than two
// intervals score exactly 0.
func (rc *RootedCollection) Complexity() (float64, error) {
	occurrences, err := rc.IntervalOccurrences()
	if err != nil {
		return 0, err
	}
	if len(occurrences) == 0 {
		return 0, nil
	}

	// Fixed accumulation order keeps the float result bit-stable per call.
	canonicals := make([]int, 0, len(occurrences))
	for canonical := range occurrences {
		canonicals = append(canonicals, canonical)
	}
	sort.Ints(canonicals)

	weighted := make([]float64, 0, len(canonicals))
	for _, canonical := range canonicals {
		weight, err := rc.System().ComplexityWeight(canonical)
		if err != nil {
			return 0, fmt.Errorf("complexity: %w", err)
		}
		weighted = append(weighted, weight*float64(occurrences[canonical]))
	}
	return floats.Sum(weighted), nil
}

// FundamentalRepresentation returns a new collection whose root and every
// interval have been reduced into [0, cardinality), removing octave
// equivalence. Two collections whose roots and intervals differ only by
// whole periods of the system map to identical representations. The
// result is constructed over the default tuning system and the operation
// is idempotent.
func (rc *RootedCollection) FundamentalRepresentation() (*RootedCollection, error) {
	cardinality := rc.System().Cardinality()

	fundamentalRoot, err := interval.Reduce(rc.root, cardinality)
	if err != nil {
		return nil, fmt.Errorf("fundamental representation: %w", err)
	}
	reduced, err := interval.ReduceSet(rc.intervals, cardinality)
	if err != nil {
		return nil, fmt.Errorf("fundamental representation: %w", err)
	}

	return NewRootedCollection(fundamentalRoot, NoteSet(reduced)), nil
}

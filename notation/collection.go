package notation

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-muse/theory/tuning"
)

// ErrUnsupported is returned by declared-but-unimplemented capabilities
// (wave generation, diatonic distance) so callers fail fast instead of
// proceeding on a silent no-op.
var ErrUnsupported = errors.New("operation not supported")

// NoteSource is anything that resolves to a set of absolute pitches in a
// tuning system. Collection and RootedCollection are the concrete variants.
type NoteSource interface {
	// Notes returns the resolved pitch set. Treat it as read-only;
	// collections are immutable by convention after construction.
	Notes() NoteSet

	// Duration is how long the notes are held, in seconds. Zero means
	// indefinite / unspecified.
	Duration() float64

	// System is the tuning system the pitches live in.
	System() *tuning.System

	fmt.Stringer
}

// Collection is an explicit set of absolute pitches with a duration and a
// tuning system. Two collections are equal iff their note sets are equal;
// duration and system do not participate in equality.
type Collection struct {
	notes    NoteSet
	duration float64
	system   *tuning.System
}

// NewCollection creates a collection over the default tuning system with
// an unspecified duration.
func NewCollection(notes NoteSet) *Collection {
	return NewCollectionWith(notes, 0, nil)
}

// NewCollectionWith creates a collection with an explicit duration (in
// seconds) and tuning system. A nil system selects the shared default.
// The note set is stored as given.
func NewCollectionWith(notes NoteSet, duration float64, system *tuning.System) *Collection {
	if notes == nil {
		notes = NewNoteSet()
	}
	if system == nil {
		system = tuning.Default()
	}
	return &Collection{
		notes:    notes,
		duration: duration,
		system:   system,
	}
}

// Notes returns the collection's pitch set.
func (c *Collection) Notes() NoteSet {
	return c.notes
}

// Duration returns how long the collection is held, in seconds.
func (c *Collection) Duration() float64 {
	return c.duration
}

// System returns the tuning system the collection lives in.
func (c *Collection) System() *tuning.System {
	return c.system
}

// Equal reports whether both sources resolve to the same note set.
func (c *Collection) Equal(other NoteSource) bool {
	if other == nil {
		return false
	}
	return c.notes.Equal(other.Notes())
}

func (c *Collection) String() string {
	return c.notes.String()
}

// WaveFunc would synthesize the waveform the collection's tuning system
// assigns to its notes. Synthesis is not implemented; the declared hook
// fails fast with ErrUnsupported.
func (c *Collection) WaveFunc() (func(t float64) float64, error) {
	return nil, fmt.Errorf("generate wave function: %w", ErrUnsupported)
}

// DiatonicDistance would report the fraction of notes by which two
// collections differ. Not implemented; fails fast with ErrUnsupported.
func (c *Collection) DiatonicDistance(other NoteSource) (float64, error) {
	return 0, fmt.Errorf("compute diatonic distance: %w", ErrUnsupported)
}

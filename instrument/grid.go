// Package instrument maps modular-grid positions onto the pitches of a
// stringed instrument, turning parsed shorthand into note collections the
// algebra core can score.
package instrument

import (
	"fmt"

	"github.com/RyanBlaney/sonido-muse/notation"
	"github.com/RyanBlaney/sonido-muse/notation/shorthand"
	"github.com/RyanBlaney/sonido-muse/theory/tuning"
)

// StringedInstrument is an ordered set of open-string pitches in a tuning
// system. String 0 is the lowest-indexed string of the grid notation.
type StringedInstrument struct {
	name      string
	openNotes []int
	system    *tuning.System
}

// NewStringedInstrument creates an instrument from its open-string pitches,
// ordered by grid string index. A nil system selects the shared default.
func NewStringedInstrument(name string, openNotes []int, system *tuning.System) (*StringedInstrument, error) {
	if len(openNotes) == 0 {
		return nil, fmt.Errorf("instrument %q: needs at least one string", name)
	}
	if system == nil {
		system = tuning.Default()
	}
	owned := make([]int, len(openNotes))
	copy(owned, openNotes)
	return &StringedInstrument{
		name:      name,
		openNotes: owned,
		system:    system,
	}, nil
}

// StandardGuitar returns a six-string guitar in standard tuning
// (E A D G B E), with pitches on the MIDI-compatible scale of the default
// 12-tone system.
func StandardGuitar() *StringedInstrument {
	si, err := NewStringedInstrument("guitar", []int{40, 45, 50, 55, 59, 64}, nil)
	if err != nil {
		panic(err)
	}
	return si
}

// Name returns the instrument's name.
func (si *StringedInstrument) Name() string {
	return si.name
}

// Strings returns the number of strings.
func (si *StringedInstrument) Strings() int {
	return len(si.openNotes)
}

// System returns the tuning system the open-string pitches live in.
func (si *StringedInstrument) System() *tuning.System {
	return si.system
}

// Note resolves a grid position to an absolute pitch: the open pitch of
// the string plus the fret value. Fails when the position names a string
// the instrument does not have or a negative fret.
func (si *StringedInstrument) Note(pos shorthand.Position) (int, error) {
	if pos.String < 0 || pos.String >= len(si.openNotes) {
		return 0, fmt.Errorf("instrument %q: no string %d (has %d)", si.name, pos.String, len(si.openNotes))
	}
	if pos.Fret < 0 {
		return 0, fmt.Errorf("instrument %q: negative fret %d on string %d", si.name, pos.Fret, pos.String)
	}
	return si.openNotes[pos.String] + pos.Fret, nil
}

// GridCollection is a set of grid positions bound to the instrument that
// gives them pitch. It is the resolved form of one shorthand group.
type GridCollection struct {
	positions  shorthand.PositionSet
	instrument *StringedInstrument
	duration   float64
}

// NewGridCollection binds grid positions to an instrument. A nil
// instrument selects the standard guitar.
func NewGridCollection(positions shorthand.PositionSet, instrument *StringedInstrument, duration float64) *GridCollection {
	if instrument == nil {
		instrument = StandardGuitar()
	}
	return &GridCollection{
		positions:  positions,
		instrument: instrument,
		duration:   duration,
	}
}

// Positions returns the grid positions. Read-only.
func (g *GridCollection) Positions() shorthand.PositionSet {
	return g.positions
}

// Instrument returns the instrument the positions are played on.
func (g *GridCollection) Instrument() *StringedInstrument {
	return g.instrument
}

// NoteCollection resolves every grid position to an absolute pitch and
// returns the result as an explicit note collection in the instrument's
// tuning system.
func (g *GridCollection) NoteCollection() (*notation.Collection, error) {
	notes := notation.NewNoteSet()
	for pos := range g.positions {
		n, err := g.instrument.Note(pos)
		if err != nil {
			return nil, err
		}
		notes.Add(n)
	}
	return notation.NewCollectionWith(notes, g.duration, g.instrument.System()), nil
}

// FromShorthand parses a modular-grid shorthand text and binds each group
// to the instrument, in text order. A nil instrument selects the standard
// guitar.
func FromShorthand(text string, instrument *StringedInstrument) ([]*GridCollection, error) {
	sets, err := shorthand.Parse(text)
	if err != nil {
		return nil, err
	}
	collections := make([]*GridCollection, 0, len(sets))
	for _, positions := range sets {
		collections = append(collections, NewGridCollection(positions, instrument, 0))
	}
	return collections, nil
}

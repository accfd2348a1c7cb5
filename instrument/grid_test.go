package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-muse/notation"
	"github.com/RyanBlaney/sonido-muse/notation/shorthand"
	"github.com/RyanBlaney/sonido-muse/theory/tuning"
)

func TestNewStringedInstrument(t *testing.T) {
	_, err := NewStringedInstrument("empty", nil, nil)
	assert.Error(t, err, "an instrument needs strings")

	si, err := NewStringedInstrument("bass", []int{28, 33, 38, 43}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, si.Strings())
	assert.Same(t, tuning.Default(), si.System())
}

func TestStandardGuitarNotes(t *testing.T) {
	g := StandardGuitar()
	require.Equal(t, 6, g.Strings())

	tests := []struct {
		pos  shorthand.Position
		want int
	}{
		{pos: shorthand.Position{String: 0, Fret: 0}, want: 40}, // open low E
		{pos: shorthand.Position{String: 1, Fret: 5}, want: 50},
		{pos: shorthand.Position{String: 5, Fret: 12}, want: 76}, // octave on high E
	}
	for _, tt := range tests {
		got, err := g.Note(tt.pos)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "position %+v", tt.pos)
	}

	_, err := g.Note(shorthand.Position{String: 6, Fret: 0})
	assert.Error(t, err, "string index out of range")
	_, err = g.Note(shorthand.Position{String: 0, Fret: -1})
	assert.Error(t, err, "negative fret")
}

func TestGridCollectionNoteCollection(t *testing.T) {
	positions, err := shorthand.ParsePositions("X 5 X 5 5 5")
	require.NoError(t, err)

	gc := NewGridCollection(positions, nil, 1.5)
	nc, err := gc.NoteCollection()
	require.NoError(t, err)

	// Strings 1,3,4,5 at fret 5: 45+5, 55+5, 59+5, 64+5.
	assert.True(t, nc.Notes().Equal(notation.NewNoteSet(50, 60, 64, 69)), "got %s", nc.Notes())
	assert.Equal(t, 1.5, nc.Duration())
	assert.Same(t, tuning.Default(), nc.System())
}

func TestGridCollectionBadPosition(t *testing.T) {
	positions := shorthand.PositionSet{
		{String: 9, Fret: 2}: {},
	}
	gc := NewGridCollection(positions, StandardGuitar(), 0)
	_, err := gc.NoteCollection()
	assert.Error(t, err)
}

func TestFromShorthand(t *testing.T) {
	collections, err := FromShorthand("(X 5 X 5 5 5) (X X 5 7 6 7)", nil)
	require.NoError(t, err)
	require.Len(t, collections, 2)

	first, err := collections[0].NoteCollection()
	require.NoError(t, err)
	assert.True(t, first.Notes().Equal(notation.NewNoteSet(50, 60, 64, 69)))

	second, err := collections[1].NoteCollection()
	require.NoError(t, err)
	// Strings 2..5: 50+5, 55+7, 59+6, 64+7.
	assert.True(t, second.Notes().Equal(notation.NewNoteSet(55, 62, 65, 71)), "got %s", second.Notes())
}

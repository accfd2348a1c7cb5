package midiexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-muse/notation"
)

func TestSequenceWritesSMF(t *testing.T) {
	sources := []notation.NoteSource{
		notation.NewCollection(notation.NewNoteSet(60, 64, 67)),
		notation.NewRootedCollection(60, notation.NewNoteSet(0, 4, 7, 11)),
	}

	s, err := Sequence(sources, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, s)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("MThd")), "SMF header chunk missing")
	assert.Greater(t, buf.Len(), 14, "file should carry a track chunk")
}

func TestSequenceEmptyInput(t *testing.T) {
	s, err := Sequence(nil, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("MThd")))
}

func TestSequencePitchOutOfRange(t *testing.T) {
	high := notation.NewCollection(notation.NewNoteSet(500))
	_, err := Sequence([]notation.NoteSource{high}, DefaultOptions())
	assert.Error(t, err)

	low := notation.NewCollection(notation.NewNoteSet(-1))
	_, err = Sequence([]notation.NoteSource{low}, DefaultOptions())
	assert.Error(t, err)

	// BaseKey shifts abstract pitches into range.
	shifted := notation.NewCollection(notation.NewNoteSet(-1))
	opts := DefaultOptions()
	opts.BaseKey = 60
	_, err = Sequence([]notation.NoteSource{shifted}, opts)
	assert.NoError(t, err)
}

func TestOptionsValidation(t *testing.T) {
	opts := DefaultOptions()
	opts.Channel = 16
	_, err := Sequence(nil, opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.Velocity = 200
	_, err = Sequence(nil, opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.TempoBPM = -10
	_, err = Sequence(nil, opts)
	assert.Error(t, err)
}

func TestBlockTicks(t *testing.T) {
	o, err := DefaultOptions().normalized()
	require.NoError(t, err)

	// Indefinite duration renders as a whole note.
	assert.Equal(t, uint32(4*960), blockTicks(0, o))

	// At 120 BPM one second is two quarter notes.
	assert.Equal(t, uint32(2*960), blockTicks(1.0, o))
}

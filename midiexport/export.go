// Package midiexport renders note collections to Standard MIDI Files.
// It is a pure encoder; device I/O stays with the embedding application.
package midiexport

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/RyanBlaney/sonido-muse/logging"
	"github.com/RyanBlaney/sonido-muse/notation"
)

// Options configures SMF rendering.
type Options struct {
	// TicksPerQuarter is the SMF metric resolution. Default 960.
	TicksPerQuarter int `json:"ticks_per_quarter,omitempty"`

	// TempoBPM is the tempo written at the head of the track. Default 120.
	TempoBPM float64 `json:"tempo_bpm,omitempty"`

	// Channel is the MIDI channel for every note event (0-15).
	Channel uint8 `json:"channel,omitempty"`

	// Velocity is the NoteOn velocity for every note (1-127). Default 96.
	Velocity uint8 `json:"velocity,omitempty"`

	// BaseKey is the MIDI key that abstract pitch 0 maps to. Collections
	// already on a MIDI-compatible scale use the default of 0.
	BaseKey int `json:"base_key,omitempty"`
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		TicksPerQuarter: 960,
		TempoBPM:        120,
		Velocity:        96,
	}
}

func (o Options) normalized() (Options, error) {
	if o.TicksPerQuarter == 0 {
		o.TicksPerQuarter = 960
	}
	if o.TicksPerQuarter < 0 {
		return o, fmt.Errorf("midiexport: ticks per quarter must be positive, got %d", o.TicksPerQuarter)
	}
	if o.TempoBPM == 0 {
		o.TempoBPM = 120
	}
	if o.TempoBPM < 0 {
		return o, fmt.Errorf("midiexport: tempo must be positive, got %g", o.TempoBPM)
	}
	if o.Channel > 15 {
		return o, fmt.Errorf("midiexport: channel must be 0-15, got %d", o.Channel)
	}
	if o.Velocity == 0 {
		o.Velocity = 96
	}
	if o.Velocity > 127 {
		return o, fmt.Errorf("midiexport: velocity must be 1-127, got %d", o.Velocity)
	}
	return o, nil
}

// blockTicks converts a collection duration in seconds to SMF ticks.
// Duration 0 (indefinite) renders as one whole note.
func blockTicks(duration float64, o Options) uint32 {
	if duration <= 0 {
		return uint32(4 * o.TicksPerQuarter)
	}
	return uint32(duration * o.TempoBPM / 60.0 * float64(o.TicksPerQuarter))
}

// Sequence renders each note source as a simultaneous block of notes, one
// block after another, into a single-track SMF. Pitches are offset by
// BaseKey and must land inside the MIDI key range 0-127.
func Sequence(sources []notation.NoteSource, opts Options) (*smf.SMF, error) {
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(o.TempoBPM))

	for _, src := range sources {
		keys, err := keysFor(src, o)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			continue
		}

		for _, key := range keys {
			tr.Add(0, midi.NoteOn(o.Channel, key, o.Velocity))
		}
		delta := blockTicks(src.Duration(), o)
		for i, key := range keys {
			if i == 0 {
				tr.Add(delta, midi.NoteOff(o.Channel, key))
			} else {
				tr.Add(0, midi.NoteOff(o.Channel, key))
			}
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(o.TicksPerQuarter)
	s.Add(tr)

	logging.Debug("rendered note sequence to SMF", logging.Fields{
		"collections": len(sources),
		"tempo_bpm":   o.TempoBPM,
	})
	return s, nil
}

// keysFor maps a source's pitch set into MIDI keys, ascending.
func keysFor(src notation.NoteSource, o Options) ([]uint8, error) {
	sorted := src.Notes().Sorted()
	keys := make([]uint8, 0, len(sorted))
	for _, n := range sorted {
		key := n + o.BaseKey
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("midiexport: pitch %d maps to MIDI key %d, outside 0-127", n, key)
		}
		keys = append(keys, uint8(key))
	}
	return keys, nil
}

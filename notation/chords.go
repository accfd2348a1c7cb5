package notation

import (
	"fmt"
	"sort"
)

// chordShapes maps chord symbols to interval collections above the root,
// in semitone-like units of the default 12-tone system.
var chordShapes = map[string][]int{
	"maj":  {0, 4, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
	"6":    {0, 4, 7, 9},
	"m6":   {0, 3, 7, 9},
	"7":    {0, 4, 7, 10},
	"maj7": {0, 4, 7, 11},
	"m7":   {0, 3, 7, 10},
	"m7b5": {0, 3, 6, 10},
	"dim7": {0, 3, 6, 9},
	"9":    {0, 2, 4, 7, 10},
	"maj9": {0, 2, 4, 7, 11},
	"m9":   {0, 2, 3, 7, 10},
}

// Chord returns the interval collection for a chord symbol, suitable as
// input to NewRootedCollection. The returned set is a fresh copy.
func Chord(symbol string) (NoteSet, error) {
	shape, ok := chordShapes[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown chord symbol: %q", symbol)
	}
	return NewNoteSet(shape...), nil
}

// ChordSymbols returns every known chord symbol in sorted order.
func ChordSymbols() []string {
	symbols := make([]string, 0, len(chordShapes))
	for symbol := range chordShapes {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

package notation

import (
	"sort"
	"testing"
)

func TestChord(t *testing.T) {
	tests := []struct {
		symbol string
		want   []int
	}{
		{symbol: "maj", want: []int{0, 4, 7}},
		{symbol: "min", want: []int{0, 3, 7}},
		{symbol: "maj7", want: []int{0, 4, 7, 11}},
		{symbol: "7", want: []int{0, 4, 7, 10}},
		{symbol: "dim7", want: []int{0, 3, 6, 9}},
		{symbol: "m9", want: []int{0, 2, 3, 7, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := Chord(tt.symbol)
			if err != nil {
				t.Fatalf("Chord(%q) returned error: %v", tt.symbol, err)
			}
			if !got.Equal(NewNoteSet(tt.want...)) {
				t.Errorf("Chord(%q) = %s, want %v", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestChordUnknownSymbol(t *testing.T) {
	if _, err := Chord("sus13#5"); err == nil {
		t.Error("unknown chord symbol must be an error")
	}
}

func TestChordReturnsCopy(t *testing.T) {
	a, err := Chord("maj")
	if err != nil {
		t.Fatal(err)
	}
	a.Add(10)

	b, _ := Chord("maj")
	if b.Contains(10) {
		t.Error("mutating a returned chord shape leaked into the table")
	}
}

func TestChordSymbols(t *testing.T) {
	symbols := ChordSymbols()
	if !sort.StringsAreSorted(symbols) {
		t.Errorf("ChordSymbols() not sorted: %v", symbols)
	}

	found := false
	for _, s := range symbols {
		if s == "maj7" {
			found = true
		}
	}
	if !found {
		t.Errorf("ChordSymbols() missing maj7: %v", symbols)
	}
}

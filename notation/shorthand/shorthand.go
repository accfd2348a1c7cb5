// Package shorthand parses modular-grid shorthand, a compact fretboard
// notation. A single group such as "X 5 X 5 5 5" lists one fret position
// per string, with the literal X marking a string that is not played.
// Larger texts hold several groups wrapped in (), [], <> or "" delimiters,
// or bare whitespace-separated runs:
//
//	(X 5 X 5 5 5) (X X 5 7 6 7) (X 3 5 4 5 X)
package shorthand

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-muse/logging"
)

// NoNote is the token marking a string with no fretted note.
const NoNote = "X"

// Position is a single fretted note: the zero-based string index within a
// group and the fret value at that string.
type Position struct {
	String int
	Fret   int
}

// PositionSet is an unordered set of grid positions.
type PositionSet map[Position]struct{}

// Contains reports whether the set holds the given position.
func (ps PositionSet) Contains(p Position) bool {
	_, ok := ps[p]
	return ok
}

// Equal reports whether both sets hold exactly the same positions.
func (ps PositionSet) Equal(other PositionSet) bool {
	if len(ps) != len(other) {
		return false
	}
	for p := range ps {
		if _, ok := other[p]; !ok {
			return false
		}
	}
	return true
}

// ParsePositions parses one shorthand group interior ("X 5 X 5 5 5") into
// grid positions. The string index is the token's zero-based position in
// the group; X tokens contribute no position. Any other non-numeric token
// is a parse error.
func ParsePositions(token string) (PositionSet, error) {
	positions := make(PositionSet)
	for i, field := range strings.Fields(token) {
		if field == NoNote {
			continue
		}
		fret, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("shorthand: bad fret %q at string %d", field, i)
		}
		positions[Position{String: i, Fret: fret}] = struct{}{}
	}
	return positions, nil
}

// groupPattern matches one delimited group ([], (), "", <>) or a bare
// whitespace-separated run.
var groupPattern = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)|"[^"]*"|<[^>]*>|\S+`)

// Split breaks a shorthand text into its groups, delimiters included.
func Split(text string) []string {
	return groupPattern.FindAllString(text, -1)
}

var delimiterPairs = [][2]byte{
	{'(', ')'},
	{'[', ']'},
	{'<', '>'},
	{'"', '"'},
}

// stripDelimiters removes a recognized delimiter pair. Bare groups pass
// through untouched.
func stripDelimiters(group string) string {
	if len(group) < 2 {
		return group
	}
	first, last := group[0], group[len(group)-1]
	for _, pair := range delimiterPairs {
		if first == pair[0] && last == pair[1] {
			return group[1 : len(group)-1]
		}
	}
	return group
}

// Parse splits a shorthand text into groups and parses each group's
// interior, producing one position set per group in text order.
func Parse(text string) ([]PositionSet, error) {
	groups := Split(text)
	sets := make([]PositionSet, 0, len(groups))
	for _, group := range groups {
		positions, err := ParsePositions(stripDelimiters(group))
		if err != nil {
			return nil, err
		}
		sets = append(sets, positions)
	}

	logging.Debug("parsed modular grid shorthand", logging.Fields{
		"groups": len(sets),
	})
	return sets, nil
}

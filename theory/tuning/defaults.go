package tuning

// DefaultReferencePitch is concert A (A4 = 440 Hz).
const DefaultReferencePitch = 440.0

// defaultWeights is the weight table of the default 12-tone system. Each
// canonical interval is weighted by the simplicity of the just-intonation
// ratio it approximates (numerator plus denominator in lowest terms):
//
//	0: 1/1    1: 16/15  2: 9/8    3: 6/5
//	4: 5/4    5: 4/3    6: 45/32  7: 3/2
//	8: 8/5    9: 5/3   10: 9/5   11: 15/8
//
// Simpler ratios are heard as more consonant, so the perfect fifth (3/2)
// scores far below the tritone (45/32).
var defaultWeights = map[int]float64{
	0:  2,
	1:  31,
	2:  17,
	3:  11,
	4:  9,
	5:  7,
	6:  77,
	7:  5,
	8:  13,
	9:  8,
	10: 14,
	11: 23,
}

// defaultSystem is constructed once and shared process-wide, never mutated.
var defaultSystem = mustNew(12, defaultWeights, DefaultReferencePitch)

// Default returns the shared default tuning system: 12 pitch classes per
// octave at reference pitch 440, weighted by just-intonation ratio
// simplicity. The returned system is immutable and safe to share.
func Default() *System {
	return defaultSystem
}

func mustNew(cardinality int, weights map[int]float64, referencePitch float64) *System {
	s, err := New(cardinality, weights, referencePitch)
	if err != nil {
		panic(err)
	}
	return s
}

// Package analysis ranks and summarizes intervallic complexity across
// collections, using gonum for the statistics.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-muse/notation"
)

// Ranked pairs a rooted collection with its computed complexity.
type Ranked struct {
	Source     *notation.RootedCollection
	Complexity float64
}

// Rank computes the intervallic complexity of every collection and returns
// them sorted from least to most complex. Ties break on the collection's
// string form so output order is deterministic.
func Rank(collections []*notation.RootedCollection) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(collections))
	for _, rc := range collections {
		c, err := rc.Complexity()
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, Ranked{Source: rc, Complexity: c})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Complexity != ranked[j].Complexity {
			return ranked[i].Complexity < ranked[j].Complexity
		}
		return ranked[i].Source.String() < ranked[j].Source.String()
	})
	return ranked, nil
}

// Summary holds descriptive statistics over a batch of complexity scores.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes descriptive statistics over raw scores using gonum.
// An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

// SummarizeComplexity computes each collection's complexity and returns
// descriptive statistics over the batch.
func SummarizeComplexity(collections []*notation.RootedCollection) (Summary, error) {
	values := make([]float64, 0, len(collections))
	for _, rc := range collections {
		c, err := rc.Complexity()
		if err != nil {
			return Summary{}, err
		}
		values = append(values, c)
	}
	return Summarize(values), nil
}

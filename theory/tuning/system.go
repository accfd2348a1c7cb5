package tuning

import (
	"errors"
	"fmt"
	"maps"

	"github.com/RyanBlaney/sonido-muse/theory/interval"
)

// ErrNoWeight is returned when a tuning system has no complexity weight for
// a canonical interval the caller looked up. It indicates an incomplete
// weight table, which is a construction-time defect of the system.
var ErrNoWeight = errors.New("no complexity weight for interval")

// System is a finite cyclic set of pitch classes with a complexity weight
// per canonical interval. Instances are immutable after construction and
// safe to share across goroutines without synchronization.
type System struct {
	cardinality    int
	referencePitch float64
	weights        map[int]float64
}

// New creates a tuning system with the given number of pitch classes per
// period and a weight table keyed by canonical interval. Weight keys must
// already lie in [0, cardinality); the table may be partial, in which case
// lookups for the missing intervals fail with ErrNoWeight.
func New(cardinality int, weights map[int]float64, referencePitch float64) (*System, error) {
	if cardinality <= 0 {
		return nil, fmt.Errorf("tuning: %w (got %d)", interval.ErrInvalidCardinality, cardinality)
	}
	if referencePitch < 0 {
		return nil, fmt.Errorf("tuning: reference pitch must be non-negative, got %g", referencePitch)
	}

	owned := make(map[int]float64, len(weights))
	for k, w := range weights {
		if k < 0 || k >= cardinality {
			return nil, fmt.Errorf("tuning: weight key %d outside [0, %d)", k, cardinality)
		}
		owned[k] = w
	}

	return &System{
		cardinality:    cardinality,
		referencePitch: referencePitch,
		weights:        owned,
	}, nil
}

// Cardinality returns the number of distinct pitch classes per period.
func (s *System) Cardinality() int {
	return s.cardinality
}

// ReferencePitch returns the frequency the system's pitch 0 is anchored to.
func (s *System) ReferencePitch() float64 {
	return s.referencePitch
}

// ComplexityWeight returns the weight assigned to a canonical interval.
// The interval must already be reduced into [0, cardinality); callers
// holding raw intervals should reduce them via the interval package first.
func (s *System) ComplexityWeight(canonical int) (float64, error) {
	if canonical < 0 || canonical >= s.cardinality {
		return 0, fmt.Errorf("tuning: interval %d outside [0, %d)", canonical, s.cardinality)
	}
	w, ok := s.weights[canonical]
	if !ok {
		return 0, fmt.Errorf("tuning: %w: %d", ErrNoWeight, canonical)
	}
	return w, nil
}

// Weights returns a copy of the weight table keyed by canonical interval.
func (s *System) Weights() map[int]float64 {
	out := make(map[int]float64, len(s.weights))
	maps.Copy(out, s.weights)
	return out
}

func (s *System) String() string {
	return fmt.Sprintf("%d-tone system @ %g", s.cardinality, s.referencePitch)
}

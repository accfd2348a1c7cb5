package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidCardinality is returned when a tuning system cardinality is not
// a positive integer. Reduction into an empty or negative ring is undefined.
var ErrInvalidCardinality = errors.New("cardinality must be positive")

// Reduce maps an arbitrary signed interval into the canonical range
// [0, cardinality) of a tuning system. This is true mathematical modulus,
// so negative values wrap upward: Reduce(-3, 12) == 9.
func Reduce(value, cardinality int) (int, error) {
	if cardinality <= 0 {
		return 0, fmt.Errorf("reduce %d: %w (got %d)", value, ErrInvalidCardinality, cardinality)
	}

	r := value % cardinality
	if r < 0 {
		r += cardinality
	}
	return r, nil
}

// ReduceSet reduces every member of a set of signed intervals into
// [0, cardinality). Distinct inputs may collapse onto the same pitch class,
// so the result can be smaller than the input.
func ReduceSet(values map[int]struct{}, cardinality int) (map[int]struct{}, error) {
	if cardinality <= 0 {
		return nil, fmt.Errorf("reduce set: %w (got %d)", ErrInvalidCardinality, cardinality)
	}

	reduced := make(map[int]struct{}, len(values))
	for v := range values {
		r, err := Reduce(v, cardinality)
		if err != nil {
			return nil, err
		}
		reduced[r] = struct{}{}
	}
	return reduced, nil
}

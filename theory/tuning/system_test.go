package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-muse/theory/interval"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0, nil, 440)
	assert.ErrorIs(t, err, interval.ErrInvalidCardinality)

	_, err = New(-4, nil, 440)
	assert.ErrorIs(t, err, interval.ErrInvalidCardinality)

	_, err = New(12, map[int]float64{12: 1}, 440)
	assert.Error(t, err, "weight key outside [0, cardinality) must be rejected")

	_, err = New(12, map[int]float64{-1: 1}, 440)
	assert.Error(t, err)

	_, err = New(12, nil, -1)
	assert.Error(t, err, "negative reference pitch must be rejected")
}

func TestComplexityWeight(t *testing.T) {
	s, err := New(5, map[int]float64{0: 1, 2: 3.5}, 440)
	require.NoError(t, err)

	w, err := s.ComplexityWeight(2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, w)

	_, err = s.ComplexityWeight(1)
	assert.ErrorIs(t, err, ErrNoWeight)

	_, err = s.ComplexityWeight(5)
	assert.Error(t, err, "unreduced interval must be rejected")
	_, err = s.ComplexityWeight(-1)
	assert.Error(t, err)
}

func TestDefaultSystem(t *testing.T) {
	s := Default()
	assert.Equal(t, 12, s.Cardinality())
	assert.Equal(t, DefaultReferencePitch, s.ReferencePitch())

	// The default table must cover the full canonical range.
	for i := 0; i < s.Cardinality(); i++ {
		w, err := s.ComplexityWeight(i)
		require.NoError(t, err, "interval %d", i)
		assert.GreaterOrEqual(t, w, 0.0, "interval %d", i)
	}

	// Perfect fifth approximates 3/2, the tritone 45/32.
	fifth, _ := s.ComplexityWeight(7)
	tritone, _ := s.ComplexityWeight(6)
	assert.Less(t, fifth, tritone)

	assert.Same(t, Default(), Default(), "default system is a shared instance")
}

func TestWeightsReturnsCopy(t *testing.T) {
	s := Default()
	w := s.Weights()
	w[7] = 1e9

	original, err := s.ComplexityWeight(7)
	require.NoError(t, err)
	assert.NotEqual(t, 1e9, original, "mutating the copy must not affect the system")
}

func TestConfigBuild(t *testing.T) {
	s, err := Config{}.Build()
	require.NoError(t, err)
	assert.Same(t, Default(), s, "empty config yields the shared default")

	s, err = DefaultConfig().Build()
	require.NoError(t, err)
	assert.Equal(t, 12, s.Cardinality())

	s, err = Config{Cardinality: 19, Weights: map[int]float64{0: 1}}.Build()
	require.NoError(t, err)
	assert.Equal(t, 19, s.Cardinality())
	assert.Equal(t, DefaultReferencePitch, s.ReferencePitch())

	_, err = Config{Cardinality: -1}.Build()
	assert.Error(t, err)
}

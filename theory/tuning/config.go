package tuning

// Config describes a tuning system in a form suitable for JSON
// configuration files. Zero values fall back to the defaults of the
// shared 12-tone system.
type Config struct {
	Cardinality    int             `json:"cardinality"`
	ReferencePitch float64         `json:"reference_pitch,omitempty"`
	Weights        map[int]float64 `json:"interval_weights,omitempty"`
}

// DefaultConfig returns the configuration equivalent of Default().
func DefaultConfig() Config {
	return Config{
		Cardinality:    12,
		ReferencePitch: DefaultReferencePitch,
		Weights:        Default().Weights(),
	}
}

// Build validates the configuration and constructs the tuning system it
// describes. An empty config yields the shared default system.
func (c Config) Build() (*System, error) {
	if c.Cardinality == 0 && c.ReferencePitch == 0 && len(c.Weights) == 0 {
		return Default(), nil
	}

	referencePitch := c.ReferencePitch
	if referencePitch == 0 {
		referencePitch = DefaultReferencePitch
	}

	weights := c.Weights
	if weights == nil && c.Cardinality == 12 {
		weights = defaultWeights
	}

	return New(c.Cardinality, weights, referencePitch)
}

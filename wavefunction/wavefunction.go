package wavefunction

import (
	"fmt"
	"sort"
)

// Wavefunction is the model state under training. The training loop and all
// callbacks treat it as an opaque handle: the only capabilities granted here
// are identification and access to the named parameter vectors, which is what
// checkpointing and metric evaluation need.
type Wavefunction interface {
	// Name identifies the model class (e.g. "positive_rbm").
	Name() string

	// Parameters returns the named parameter vectors of the wavefunction.
	// Callers must not mutate the returned slices.
	Parameters() map[string][]float64

	// SetParameters replaces the named parameter vectors. Implementations
	// reject parameter sets whose names or lengths do not match the model.
	SetParameters(params map[string][]float64) error
}

// Params is a plain named-parameter container implementing Wavefunction.
// Concrete models embed it or wrap it; checkpoint restore rehydrates into it.
type Params struct {
	name   string
	params map[string][]float64
}

// NewParams creates a parameter container with the given vector sizes.
// Vectors are zero-initialized.
func NewParams(name string, sizes map[string]int) *Params {
	params := make(map[string][]float64, len(sizes))
	for key, n := range sizes {
		params[key] = make([]float64, n)
	}
	return &Params{name: name, params: params}
}

func (p *Params) Name() string {
	return p.name
}

func (p *Params) Parameters() map[string][]float64 {
	return p.params
}

// SetParameters replaces the stored vectors. Every existing parameter must be
// present in the input with a matching length; unknown names are rejected.
func (p *Params) SetParameters(params map[string][]float64) error {
	for key := range params {
		if _, ok := p.params[key]; !ok {
			return fmt.Errorf("unknown parameter %q for wavefunction %s", key, p.name)
		}
	}
	for key, existing := range p.params {
		replacement, ok := params[key]
		if !ok {
			return fmt.Errorf("missing parameter %q for wavefunction %s", key, p.name)
		}
		if len(replacement) != len(existing) {
			return fmt.Errorf("parameter %q: expected %d values, got %d", key, len(existing), len(replacement))
		}
	}
	for key, replacement := range params {
		copied := make([]float64, len(replacement))
		copy(copied, replacement)
		p.params[key] = copied
	}
	return nil
}

// ParameterNames returns the parameter names in sorted order.
func (p *Params) ParameterNames() []string {
	names := make([]string, 0, len(p.params))
	for key := range p.params {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// NumParameters returns the total number of scalar parameters.
func (p *Params) NumParameters() int {
	total := 0
	for _, vec := range p.params {
		total += len(vec)
	}
	return total
}

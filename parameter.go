package pairwise

import (
	"math"
	"slices"
)

// Parameter is a named input dimension with an ordered list of distinct values.
type Parameter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Parameters is an immutable, ordered parameter model. It is built once per
// generation request with NewParameters and shared read-only by every
// algorithm working on that request.
type Parameters struct {
	params []Parameter
	byName map[string]int
	// valueIndex[i] maps a value of parameter i to its position.
	valueIndex []map[string]int
}

// NewParameters validates the given parameters and returns an immutable model
// preserving their declaration order.
//
// Parameters:
//   - ps: The parameters in declaration order
//
// Returns an *InvalidInputError if a name is empty or repeated, or if a
// parameter has no values, an empty value or a repeated value.
//
// Example:
//
//	params, err := pairwise.NewParameters(
//	    pairwise.Parameter{Name: "OS", Values: []string{"Windows", "Linux"}},
//	    pairwise.Parameter{Name: "Browser", Values: []string{"Chrome", "Firefox"}},
//	)
func NewParameters(ps ...Parameter) (*Parameters, error) {
	m := &Parameters{
		params:     make([]Parameter, 0, len(ps)),
		byName:     make(map[string]int, len(ps)),
		valueIndex: make([]map[string]int, 0, len(ps)),
	}
	for _, p := range ps {
		if p.Name == "" {
			return nil, invalidInput("parameter name must not be empty")
		}
		if _, ok := m.byName[p.Name]; ok {
			return nil, invalidInput("duplicate parameter %q", p.Name)
		}
		if len(p.Values) == 0 {
			return nil, invalidInput("parameter %q has no values", p.Name)
		}
		idx := make(map[string]int, len(p.Values))
		for i, v := range p.Values {
			if v == "" {
				return nil, invalidInput("parameter %q has an empty value", p.Name)
			}
			if _, ok := idx[v]; ok {
				return nil, invalidInput("parameter %q has duplicate value %q", p.Name, v)
			}
			idx[v] = i
		}
		m.byName[p.Name] = len(m.params)
		m.params = append(m.params, Parameter{Name: p.Name, Values: slices.Clone(p.Values)})
		m.valueIndex = append(m.valueIndex, idx)
	}
	return m, nil
}

// MustParameters is like NewParameters but panics on invalid input.
func MustParameters(ps ...Parameter) *Parameters {
	m, err := NewParameters(ps...)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of parameters.
func (m *Parameters) Len() int {
	return len(m.params)
}

// Names returns the parameter names in declaration order.
func (m *Parameters) Names() []string {
	names := make([]string, len(m.params))
	for i, p := range m.params {
		names[i] = p.Name
	}
	return names
}

// Parameter returns a copy of the i-th parameter.
func (m *Parameters) Parameter(i int) Parameter {
	p := m.params[i]
	return Parameter{Name: p.Name, Values: slices.Clone(p.Values)}
}

// All returns copies of every parameter in declaration order.
func (m *Parameters) All() []Parameter {
	ps := make([]Parameter, len(m.params))
	for i := range m.params {
		ps[i] = m.Parameter(i)
	}
	return ps
}

// Index returns the declaration position of the named parameter.
func (m *Parameters) Index(name string) (int, bool) {
	i, ok := m.byName[name]
	return i, ok
}

// Values returns the values of the named parameter, or nil if it is unknown.
func (m *Parameters) Values(name string) []string {
	i, ok := m.byName[name]
	if !ok {
		return nil
	}
	return slices.Clone(m.params[i].Values)
}

// CandidateCount returns the size of the full cartesian product of all value
// lists, saturating at math.MaxInt.
func (m *Parameters) CandidateCount() int {
	if len(m.params) == 0 {
		return 0
	}
	total := 1
	for _, p := range m.params {
		n := len(p.Values)
		if total > math.MaxInt/n {
			return math.MaxInt
		}
		total *= n
	}
	return total
}

// ValidateForSuite checks the shape required to generate a suite: at least two
// parameters, each with at least two values.
func (m *Parameters) ValidateForSuite() error {
	if m == nil || len(m.params) < 2 {
		return invalidInput("at least two parameters are required")
	}
	for _, p := range m.params {
		if len(p.Values) < 2 {
			return invalidInput("parameter %q needs at least two values", p.Name)
		}
	}
	return nil
}

func (m *Parameters) valueAt(param, value int) string {
	return m.params[param].Values[value]
}

func (m *Parameters) radix(param int) int {
	return len(m.params[param].Values)
}

// indices converts an assignment to value positions; unknown values map to -1.
func (m *Parameters) indices(a Assignment) []int {
	idx := make([]int, len(m.params))
	for i := range m.params {
		idx[i] = -1
		if i >= len(a) {
			continue
		}
		if v, ok := m.valueIndex[i][a[i]]; ok {
			idx[i] = v
		}
	}
	return idx
}

// Assignment is one test case: a value for every parameter, aligned with the
// declaration order of the Parameters it was generated from.
type Assignment []string

// Map returns the assignment keyed by parameter name.
func (a Assignment) Map(m *Parameters) map[string]string {
	out := make(map[string]string, len(a))
	for i, p := range m.params {
		if i < len(a) {
			out[p.Name] = a[i]
		}
	}
	return out
}

// TestSuite is an ordered list of assignments.
type TestSuite []Assignment

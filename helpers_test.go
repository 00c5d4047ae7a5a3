package pairwise

import (
	"fmt"
	"testing"
)

func osBrowserParams(t *testing.T) *Parameters {
	t.Helper()
	params, err := NewParameters(
		Parameter{Name: "OS", Values: []string{"Windows", "Linux", "macOS"}},
		Parameter{Name: "Browser", Values: []string{"Chrome", "Firefox", "Safari"}},
	)
	if err != nil {
		t.Fatalf("NewParameters returned error: %v", err)
	}
	return params
}

// sizedParams builds parameters P0, P1, ... where Pi has sizes[i] values
// named Pi.v0, Pi.v1, ...
func sizedParams(sizes ...int) *Parameters {
	ps := make([]Parameter, len(sizes))
	for i, n := range sizes {
		ps[i].Name = fmt.Sprintf("P%d", i)
		for v := 0; v < n; v++ {
			ps[i].Values = append(ps[i].Values, fmt.Sprintf("P%d.v%d", i, v))
		}
	}
	return MustParameters(ps...)
}

// uncoveredBy returns the universe pairs no assignment of the suite contains.
func uncoveredBy(u *Universe, suite TestSuite) []Pair {
	tr := newTracker(u)
	for _, a := range suite {
		tr.cover(u.params.indices(a))
	}
	return tr.remaining()
}

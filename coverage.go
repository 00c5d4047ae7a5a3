package pairwise

// tracker holds the set of still uncovered pairs of a universe.
type tracker struct {
	u         *Universe
	uncovered []bool
	left      int
	scratch   []int
}

func newTracker(u *Universe) *tracker {
	t := &tracker{
		u:         u,
		uncovered: make([]bool, u.Len()),
		left:      u.Len(),
	}
	for i := range t.uncovered {
		t.uncovered[i] = true
	}
	return t
}

func (t *tracker) done() bool {
	return t.left == 0
}

// gain counts the uncovered pairs contained in the candidate.
func (t *tracker) gain(values []int) int {
	t.scratch = t.u.pairsOf(t.scratch[:0], values)
	n := 0
	for _, p := range t.scratch {
		if t.uncovered[p] {
			n++
		}
	}
	return n
}

// cover marks the candidate's pairs as covered and returns how many were new.
func (t *tracker) cover(values []int) int {
	t.scratch = t.u.pairsOf(t.scratch[:0], values)
	n := 0
	for _, p := range t.scratch {
		if t.uncovered[p] {
			t.uncovered[p] = false
			n++
		}
	}
	t.left -= n
	return n
}

// remaining returns the uncovered pairs in universe order.
func (t *tracker) remaining() []Pair {
	out := make([]Pair, 0, t.left)
	for i, open := range t.uncovered {
		if open {
			out = append(out, t.u.pairs[i])
		}
	}
	return out
}

// CoverageReport gives, for every test of a suite in order, the number of
// universe pairs it covers for the first time.
type CoverageReport struct {
	NewPairs   []int `json:"new_pairs"`
	TotalPairs int   `json:"total_pairs"`
	TotalTests int   `json:"total_tests"`
}

// Covered returns the number of distinct universe pairs the suite covers.
func (r CoverageReport) Covered() int {
	n := 0
	for _, c := range r.NewPairs {
		n += c
	}
	return n
}

// Complete reports whether every pair of the universe is covered.
func (r CoverageReport) Complete() bool {
	return r.Covered() == r.TotalPairs
}

// AnnotateCoverage replays the suite in order and records how many new pairs
// each test contributes. The result depends only on the suite and the universe,
// not on the algorithm that produced the suite.
//
// Parameters:
//   - suite: The finalized, ordered test suite
//   - u: The pair universe of the suite's parameter model
//
// Values outside a parameter's domain contribute no pairs.
//
// Example:
//
//	report := pairwise.AnnotateCoverage(result.Suite, result.Universe)
//	for i, n := range report.NewPairs {
//	    fmt.Printf("Test case %d: %d new pairs\n", i+1, n)
//	}
func AnnotateCoverage(suite TestSuite, u *Universe) CoverageReport {
	t := newTracker(u)
	report := CoverageReport{
		NewPairs:   make([]int, len(suite)),
		TotalPairs: u.Len(),
		TotalTests: len(suite),
	}
	for i, a := range suite {
		report.NewPairs[i] = t.cover(u.params.indices(a))
	}
	return report
}

package pairwise

// DefaultMaxCandidates bounds the candidate space when no WithMaxCandidates
// option is given.
const DefaultMaxCandidates = 100000

// candidateSpace enumerates the cartesian product of all value lists without
// materializing it. Candidate k is decoded in mixed radix with the last
// parameter varying fastest, which is the order of a nested loop over the
// parameters in declaration order.
type candidateSpace struct {
	params *Parameters
	// total is the true product size, saturated at math.MaxInt.
	total int
	// size is the number of candidates actually considered.
	size int
}

func newCandidateSpace(params *Parameters, maxCandidates int) candidateSpace {
	total := params.CandidateCount()
	size := total
	if maxCandidates > 0 && size > maxCandidates {
		size = maxCandidates
	}
	return candidateSpace{params: params, total: total, size: size}
}

func (c candidateSpace) truncated() bool {
	return c.size < c.total
}

// decode writes the value positions of candidate k into dst.
func (c candidateSpace) decode(k int, dst []int) []int {
	n := c.params.Len()
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]
	for i := n - 1; i >= 0; i-- {
		r := c.params.radix(i)
		dst[i] = k % r
		k /= r
	}
	return dst
}

// assignment converts value positions to an Assignment.
func (c candidateSpace) assignment(values []int) Assignment {
	a := make(Assignment, len(values))
	for i, v := range values {
		a[i] = c.params.valueAt(i, v)
	}
	return a
}

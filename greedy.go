package pairwise

import (
	"go.uber.org/zap"
)

// SolveGreedy builds a covering suite with the maximum-coverage greedy
// heuristic: while pairs remain uncovered it appends the candidate covering the
// most of them, preferring the earliest candidate on ties. The heuristic does
// not backtrack and may exceed the optimal size by a logarithmic factor.
//
// Parameters:
//   - params: The parameter model; at least two parameters with two values each
//   - opts: WithMaxCandidates and WithLogger apply
//
// When the candidate space is truncated some pairs may be unreachable. The
// suite built so far is then returned with Result.Residual set and a
// *ResidualUncoveredError.
//
// Example:
//
//	result, err := pairwise.SolveGreedy(params)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(result.Suite))
func SolveGreedy(params *Parameters, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	if err := params.ValidateForSuite(); err != nil {
		return nil, err
	}
	u, err := GeneratePairUniverse(params)
	if err != nil {
		return nil, err
	}
	log := o.logger.With(zap.String("algorithm", string(Greedy)))

	space := newCandidateSpace(params, o.maxCandidates)
	warnTruncated(log, space)
	log.Debug("pair universe built", zap.Int("pairs", u.Len()), zap.Int("candidates", space.size))

	t := newTracker(u)
	result := &Result{
		Universe:   u,
		Truncated:  space.truncated(),
		Candidates: space.size,
	}

	values := make([]int, params.Len())
	best := make([]int, params.Len())
	for !t.done() {
		bestGain := 0
		for k := 0; k < space.size; k++ {
			values = space.decode(k, values)
			if g := t.gain(values); g > bestGain {
				bestGain = g
				copy(best, values)
			}
		}
		if bestGain == 0 {
			result.Residual = t.remaining()
			log.Warn("greedy search stalled",
				zap.Int("tests", len(result.Suite)),
				zap.Int("uncovered", len(result.Residual)),
				zap.Int("max_candidates", o.maxCandidates))
			return result, &ResidualUncoveredError{
				Residual:      result.Residual,
				MaxCandidates: o.maxCandidates,
			}
		}
		t.cover(best)
		result.Suite = append(result.Suite, space.assignment(best))
		log.Debug("test selected",
			zap.Int("test", len(result.Suite)),
			zap.Int("new_pairs", bestGain),
			zap.Int("uncovered", t.left))
	}
	return result, nil
}

func warnTruncated(log *zap.Logger, space candidateSpace) {
	if !space.truncated() {
		return
	}
	log.Warn("candidate space truncated, results may be suboptimal or incomplete",
		zap.Int("max_candidates", space.size),
		zap.Int("total_candidates", space.total))
}

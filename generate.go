package pairwise

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Report is what a generation request hands back to its caller: the suite, the
// per-test count of newly covered pairs and the totals.
type Report struct {
	Algorithm  Algorithm
	Parameters *Parameters
	Suite      TestSuite
	Coverage   CoverageReport
	// Residual lists pairs the suite leaves uncovered after a stalled greedy run.
	Residual  []Pair
	Optimal   bool
	Truncated bool
	Elapsed   time.Duration
}

// TotalPairs returns the size of the pair universe.
func (r *Report) TotalPairs() int {
	return r.Coverage.TotalPairs
}

// TotalTests returns the number of tests in the suite.
func (r *Report) TotalTests() int {
	return r.Coverage.TotalTests
}

// Generate builds a test suite with the selected algorithm and annotates it
// with per-test coverage.
//
// Parameters:
//   - ctx: Cancels the optimal solver; ignored by the greedy builder
//   - params: The parameter model
//   - opts: WithAlgorithm, WithTimeBudget and every builder option
//
// Returns the report and any builder error. When the builder produced a
// partial suite (ErrResidualUncovered) the report is returned together with
// the error so the caller can decide whether to present it.
//
// Example:
//
//	report, err := pairwise.Generate(ctx, params, pairwise.WithAlgorithm(pairwise.Optimal))
//	if err != nil {
//	    return err
//	}
//	report.WriteText(os.Stdout)
func Generate(ctx context.Context, params *Parameters, opts ...Option) (*Report, error) {
	o := newOptions(opts...)

	start := time.Now()
	var (
		res *Result
		err error
	)
	switch o.algorithm {
	case Greedy:
		res, err = SolveGreedy(params, opts...)
	case Optimal:
		res, err = SolveOptimal(ctx, params, o.timeBudget, opts...)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", o.algorithm)
	}
	if res == nil {
		return nil, err
	}

	report := &Report{
		Algorithm:  o.algorithm,
		Parameters: params,
		Suite:      res.Suite,
		Coverage:   AnnotateCoverage(res.Suite, res.Universe),
		Residual:   res.Residual,
		Optimal:    res.Optimal,
		Truncated:  res.Truncated,
		Elapsed:    time.Since(start),
	}
	o.logger.Info("test suite generated",
		zap.String("algorithm", string(o.algorithm)),
		zap.Int("tests", report.TotalTests()),
		zap.Int("pairs", report.TotalPairs()),
		zap.Int("covered", report.Coverage.Covered()),
		zap.Duration("elapsed", report.Elapsed))
	return report, err
}

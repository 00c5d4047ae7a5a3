package pairwise

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goatx/pairwise/boolopt"
	"go.uber.org/zap"
)

// SolveOptimal finds a minimum-size covering suite by formulating suite
// selection as a covering problem and delegating it to a Boolean optimization
// backend.
//
// Every candidate gets a selection variable and every pair a coverage variable
// equivalent to the disjunction of the selection variables of the candidates
// containing it. All coverage variables are forced true and the number of
// selected candidates is minimized.
//
// Parameters:
//   - ctx: Cancels the backend search
//   - params: The parameter model; at least two parameters with two values each
//   - budget: Wall-clock limit for the backend search; <= 0 means no limit
//   - opts: WithMaxCandidates, WithBackend and WithLogger apply
//
// If the budget runs out after a covering suite was found, that suite is
// returned with Result.Optimal unset. If no covering suite was found the error
// wraps ErrSolverTimeout. If the backend proves that no covering selection
// exists the error is an *InfeasibleModelError.
//
// Example:
//
//	result, err := pairwise.SolveOptimal(ctx, params, 30*time.Second)
//	if err != nil {
//	    return err
//	}
//	if !result.Optimal {
//	    log.Println("suite may not be minimal")
//	}
func SolveOptimal(ctx context.Context, params *Parameters, budget time.Duration, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	if err := params.ValidateForSuite(); err != nil {
		return nil, err
	}
	u, err := GeneratePairUniverse(params)
	if err != nil {
		return nil, err
	}
	log := o.logger.With(zap.String("algorithm", string(Optimal)))

	space := newCandidateSpace(params, o.maxCandidates)
	warnTruncated(log, space)

	result := &Result{
		Universe:   u,
		Truncated:  space.truncated(),
		Candidates: space.size,
	}

	// covering[i] lists the candidates containing pair i.
	covering := make([][]int, u.Len())
	values := make([]int, params.Len())
	var scratch []int
	for k := 0; k < space.size; k++ {
		values = space.decode(k, values)
		scratch = u.pairsOf(scratch[:0], values)
		for _, p := range scratch {
			covering[p] = append(covering[p], k)
		}
	}

	model := o.backend()
	selected := make([]boolopt.Var, space.size)
	for k := range selected {
		selected[k] = model.NewBool(fmt.Sprintf("tc_%d", k))
	}
	var uncoverable []Pair
	for i, cands := range covering {
		covered := model.NewBool(fmt.Sprintf("pair_%d", i))
		lits := make([]boolopt.Var, len(cands))
		for j, k := range cands {
			lits[j] = selected[k]
		}
		model.AddOr(covered, lits...)
		model.AddTrue(covered)
		if len(cands) == 0 {
			uncoverable = append(uncoverable, u.pairs[i])
		}
	}
	model.Minimize(selected...)
	log.Debug("covering model built",
		zap.Int("candidates", space.size),
		zap.Int("pairs", u.Len()),
		zap.Duration("budget", budget))

	start := time.Now()
	status, err := model.Solve(ctx, budget)
	log.Debug("backend finished",
		zap.Stringer("status", status),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))

	switch status {
	case boolopt.StatusOptimal, boolopt.StatusFeasible:
		for k, v := range selected {
			if model.Value(v) {
				values = space.decode(k, values)
				result.Suite = append(result.Suite, space.assignment(values))
			}
		}
		result.Optimal = status == boolopt.StatusOptimal && err == nil
		if !result.Optimal {
			log.Warn("found a covering suite, but it may not be optimal",
				zap.Int("tests", len(result.Suite)),
				zap.Error(err))
		}
		return result, nil
	case boolopt.StatusInfeasible:
		log.Error("covering model is infeasible",
			zap.Bool("truncated", space.truncated()),
			zap.Int("max_candidates", o.maxCandidates),
			zap.Int("uncoverable_pairs", len(uncoverable)))
		return result, &InfeasibleModelError{
			Truncated:     space.truncated(),
			MaxCandidates: o.maxCandidates,
			Uncoverable:   uncoverable,
		}
	}

	if err == nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, boolopt.ErrSearchLimitReached) {
		return result, fmt.Errorf("%w: no covering suite found within %v: %w", ErrSolverTimeout, budget, causeOr(err))
	}
	return result, fmt.Errorf("failed to solve covering model: %w", err)
}

func causeOr(err error) error {
	if err == nil {
		return errors.New("search stopped")
	}
	return err
}

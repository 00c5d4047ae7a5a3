package pairwise

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput reports a parameter model that cannot be used.
	ErrInvalidInput = errors.New("invalid input")
	// ErrResidualUncovered reports that the greedy builder stalled with pairs left.
	ErrResidualUncovered = errors.New("residual uncovered pairs")
	// ErrSolverTimeout reports that the optimization backend found no covering
	// suite within its time budget.
	ErrSolverTimeout = errors.New("solver timeout")
	// ErrInfeasibleModel reports that the optimization backend proved that no
	// selection of candidates covers every pair.
	ErrInfeasibleModel = errors.New("infeasible model")
)

// InvalidInputError describes why a parameter model was rejected.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// ResidualUncoveredError is returned by SolveGreedy when no remaining candidate
// covers a new pair. It only happens when the candidate space was truncated.
type ResidualUncoveredError struct {
	Residual      []Pair
	MaxCandidates int
}

func (e *ResidualUncoveredError) Error() string {
	return fmt.Sprintf("%d pairs remain uncovered with candidate space capped at %d",
		len(e.Residual), e.MaxCandidates)
}

func (e *ResidualUncoveredError) Unwrap() error {
	return ErrResidualUncovered
}

// InfeasibleModelError is returned by SolveOptimal when the backend proves that
// the covering model has no solution. With an untruncated candidate space this
// indicates a defect; with Truncated set it usually means some pairs are not
// contained in any of the first MaxCandidates candidates.
type InfeasibleModelError struct {
	Truncated     bool
	MaxCandidates int
	// Uncoverable lists the pairs no considered candidate contains.
	Uncoverable []Pair
}

func (e *InfeasibleModelError) Error() string {
	var b strings.Builder
	b.WriteString("covering model is infeasible")
	if e.Truncated {
		fmt.Fprintf(&b, " (candidate space capped at %d", e.MaxCandidates)
		if len(e.Uncoverable) > 0 {
			fmt.Fprintf(&b, ", %d pairs unreachable", len(e.Uncoverable))
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *InfeasibleModelError) Unwrap() error {
	return ErrInfeasibleModel
}

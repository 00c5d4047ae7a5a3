// Package boolopt defines a small Boolean optimization capability and an
// in-process branch-and-bound implementation of it.
//
// A Model collects Boolean variables, equivalence and disjunction constraints
// and a minimization objective over a set of variables, then searches for an
// assignment within a wall-clock limit.
package boolopt

import (
	"context"
	"errors"
	"time"
)

// Var identifies a Boolean variable created by Model.NewBool.
type Var int

// Status is the outcome of a Solve call.
type Status int

const (
	// StatusUnknown means the search stopped before any solution was found.
	StatusUnknown Status = iota
	// StatusOptimal means the returned assignment is a proven optimum.
	StatusOptimal
	// StatusFeasible means the assignment satisfies every constraint but the
	// search stopped before proving optimality.
	StatusFeasible
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// ErrSearchLimitReached indicates the search stopped at its node limit. The
// status returned with it tells whether an incumbent exists.
var ErrSearchLimitReached = errors.New("search limit reached")

// Model is a Boolean optimization problem. Implementations are not safe for
// concurrent use; callers create one model per problem.
type Model interface {
	// NewBool adds a Boolean variable. The name is used for diagnostics only.
	NewBool(name string) Var
	// AddOr constrains target to be true exactly when at least one of lits is
	// true. With no lits, target is forced false.
	AddOr(target Var, lits ...Var)
	// AddEqual constrains a and b to take the same value.
	AddEqual(a, b Var)
	// AddTrue forces v to be true.
	AddTrue(v Var)
	// Minimize sets the objective to the number of true variables among vs.
	Minimize(vs ...Var)
	// Solve searches for an assignment. A positive timeLimit bounds the search
	// in addition to ctx. When the search is interrupted it returns
	// StatusFeasible or StatusUnknown together with the interrupting error.
	Solve(ctx context.Context, timeLimit time.Duration) (Status, error)
	// Value reports the value of v in the best assignment found.
	Value(v Var) bool
}

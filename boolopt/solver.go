package boolopt

import (
	"context"
	"fmt"
	"time"
)

// lit encodes a variable and a polarity: 2v is v, 2v+1 is not v.
type lit int32

func posLit(v Var) lit { return lit(2 * v) }
func negLit(v Var) lit { return lit(2*v + 1) }

func (l lit) neg() lit       { return l ^ 1 }
func (l lit) v() int         { return int(l >> 1) }
func (l lit) positive() bool { return l&1 == 0 }

// Option configures a Solver.
type Option func(*Solver)

// WithNodeLimit limits the number of search nodes. When reached, Solve returns
// the incumbent status together with ErrSearchLimitReached.
func WithNodeLimit(n int) Option {
	return func(s *Solver) { s.nodeLimit = n }
}

// Solver implements Model with CNF encoding, unit propagation and depth-first
// branch-and-bound on the objective.
//
// Constraints are stored as clauses. At every node the search applies the
// incumbent cutoff through an admissible lower bound: the current objective
// plus one for each unsatisfied clause in a set of pairwise disjoint clauses
// made only of free, positive objective literals.
type Solver struct {
	names     []string
	clauses   [][]lit
	objective []Var
	nodeLimit int
	err       error

	best  []bool
	nodes int
}

var _ Model = (*Solver)(nil)

// NewSolver returns an empty model.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}

// NewBool adds a Boolean variable.
func (s *Solver) NewBool(name string) Var {
	s.names = append(s.names, name)
	return Var(len(s.names) - 1)
}

// Name returns the name a variable was created with.
func (s *Solver) Name(v Var) string {
	if !s.known(v) {
		return ""
	}
	return s.names[v]
}

// AddOr constrains target ⇔ lits[0] ∨ lits[1] ∨ ...
func (s *Solver) AddOr(target Var, lits ...Var) {
	if !s.check(target) || !s.check(lits...) {
		return
	}
	c := make([]lit, 0, len(lits)+1)
	c = append(c, negLit(target))
	for _, v := range lits {
		c = append(c, posLit(v))
		s.clauses = append(s.clauses, []lit{negLit(v), posLit(target)})
	}
	s.clauses = append(s.clauses, c)
}

// AddEqual constrains a ⇔ b.
func (s *Solver) AddEqual(a, b Var) {
	if !s.check(a, b) {
		return
	}
	s.clauses = append(s.clauses,
		[]lit{negLit(a), posLit(b)},
		[]lit{posLit(a), negLit(b)},
	)
}

// AddTrue forces v to be true.
func (s *Solver) AddTrue(v Var) {
	if !s.check(v) {
		return
	}
	s.clauses = append(s.clauses, []lit{posLit(v)})
}

// Minimize sets the objective to the number of true variables among vs.
// Repeated calls extend the objective.
func (s *Solver) Minimize(vs ...Var) {
	if !s.check(vs...) {
		return
	}
	s.objective = append(s.objective, vs...)
}

// Solve runs the branch-and-bound search.
func (s *Solver) Solve(ctx context.Context, timeLimit time.Duration) (Status, error) {
	if s.err != nil {
		return StatusUnknown, s.err
	}
	if timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeLimit)
		defer cancel()
	}

	sr := newSearch(s)
	status, err := sr.run(ctx, s.nodeLimit)
	s.best = sr.best
	s.nodes = sr.nodes
	return status, err
}

// Value reports v in the best assignment found by the last Solve call.
func (s *Solver) Value(v Var) bool {
	if s.best == nil || !s.known(v) {
		return false
	}
	return s.best[v]
}

// Nodes returns the number of search nodes explored by the last Solve call.
func (s *Solver) Nodes() int {
	return s.nodes
}

// NumVars returns the number of variables.
func (s *Solver) NumVars() int {
	return len(s.names)
}

// NumClauses returns the number of clauses of the CNF encoding.
func (s *Solver) NumClauses() int {
	return len(s.clauses)
}

func (s *Solver) known(v Var) bool {
	return v >= 0 && int(v) < len(s.names)
}

func (s *Solver) check(vs ...Var) bool {
	for _, v := range vs {
		if !s.known(v) {
			if s.err == nil {
				s.err = fmt.Errorf("unknown variable %d", v)
			}
			return false
		}
	}
	return true
}

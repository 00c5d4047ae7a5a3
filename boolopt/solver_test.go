package boolopt

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverMinimizeCover(t *testing.T) {
	// Sets: a={1,2}, b={2,3}, c={3,4}, d={1,4}, e={1,2,3}. Optimum is 2.
	s := NewSolver()
	sets := map[string][]int{
		"a": {1, 2},
		"b": {2, 3},
		"c": {3, 4},
		"d": {1, 4},
		"e": {1, 2, 3},
	}
	order := []string{"a", "b", "c", "d", "e"}
	vars := make(map[string]Var)
	for _, name := range order {
		vars[name] = s.NewBool(name)
	}
	for elem := 1; elem <= 4; elem++ {
		covered := s.NewBool(fmt.Sprintf("elem_%d", elem))
		var lits []Var
		for _, name := range order {
			for _, e := range sets[name] {
				if e == elem {
					lits = append(lits, vars[name])
				}
			}
		}
		s.AddOr(covered, lits...)
		s.AddTrue(covered)
	}
	all := make([]Var, 0, len(order))
	for _, name := range order {
		all = append(all, vars[name])
	}
	s.Minimize(all...)

	status, err := s.Solve(context.Background(), time.Second)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, status)

	chosen := 0
	covered := make(map[int]bool)
	for _, name := range order {
		if s.Value(vars[name]) {
			chosen++
			for _, e := range sets[name] {
				covered[e] = true
			}
		}
	}
	assert.Equal(t, 2, chosen)
	assert.Len(t, covered, 4)
	assert.Equal(t, "e", s.Name(vars["e"]))
	assert.Positive(t, s.Nodes())
}

func TestSolverInfeasible(t *testing.T) {
	s := NewSolver()
	x := s.NewBool("x")
	y := s.NewBool("y")
	s.AddOr(x)
	s.AddTrue(x)
	s.Minimize(x, y)

	status, err := s.Solve(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, status)
	assert.False(t, s.Value(x))
}

func TestSolverEquality(t *testing.T) {
	s := NewSolver()
	x := s.NewBool("x")
	y := s.NewBool("y")
	z := s.NewBool("z")
	s.AddEqual(x, y)
	s.AddOr(z, x)
	s.AddTrue(z)
	s.Minimize(x, y)

	status, err := s.Solve(context.Background(), time.Second)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, status)
	assert.True(t, s.Value(x))
	assert.True(t, s.Value(y))
	assert.True(t, s.Value(z))
}

func TestSolverEmptyObjective(t *testing.T) {
	s := NewSolver()
	x := s.NewBool("x")
	s.AddTrue(x)

	status, err := s.Solve(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, status)
	assert.True(t, s.Value(x))
}

func TestSolverUnknownVariable(t *testing.T) {
	s := NewSolver()
	s.NewBool("x")
	s.AddTrue(Var(7))

	status, err := s.Solve(context.Background(), time.Second)
	require.Error(t, err)
	assert.Equal(t, StatusUnknown, status)
}

// coverModel builds the covering model of all pairs between three parameters
// with n values each.
func coverModel(s *Solver, n int) []Var {
	return pairCoverModel(s, n, n, n)
}

// pairCoverModel builds the covering model of all value pairs between
// parameters of the given sizes, with one candidate per combination.
func pairCoverModel(s *Solver, sizes ...int) []Var {
	var cands []Var
	var combos [][]int
	combo := make([]int, len(sizes))
	for {
		cands = append(cands, s.NewBool(fmt.Sprintf("tc_%v", combo)))
		combos = append(combos, append([]int(nil), combo...))
		i := len(sizes) - 1
		for ; i >= 0; i-- {
			combo[i]++
			if combo[i] < sizes[i] {
				break
			}
			combo[i] = 0
		}
		if i < 0 {
			break
		}
	}
	for a := 0; a < len(sizes); a++ {
		for b := a + 1; b < len(sizes); b++ {
			for x := 0; x < sizes[a]; x++ {
				for y := 0; y < sizes[b]; y++ {
					p := s.NewBool(fmt.Sprintf("pair_%d_%d_%d_%d", a, b, x, y))
					var lits []Var
					for k, c := range combos {
						if c[a] == x && c[b] == y {
							lits = append(lits, cands[k])
						}
					}
					s.AddOr(p, lits...)
					s.AddTrue(p)
				}
			}
		}
	}
	s.Minimize(cands...)
	return cands
}

func TestSolverNodeLimit(t *testing.T) {
	s := NewSolver(WithNodeLimit(1))
	coverModel(s, 4)

	status, err := s.Solve(context.Background(), time.Minute)
	require.True(t, errors.Is(err, ErrSearchLimitReached), "err = %v", err)
	assert.Equal(t, StatusUnknown, status)
}

func TestSolverAnytime(t *testing.T) {
	s := NewSolver(WithNodeLimit(200))
	cands := coverModel(s, 4)

	status, err := s.Solve(context.Background(), time.Minute)
	if err == nil {
		// The search finished within the limit.
		require.Equal(t, StatusOptimal, status)
	} else {
		require.ErrorIs(t, err, ErrSearchLimitReached)
		require.Equal(t, StatusFeasible, status)
	}

	selected := 0
	for _, v := range cands {
		if s.Value(v) {
			selected++
		}
	}
	assert.GreaterOrEqual(t, selected, 16)
}

func TestSolverCancelled(t *testing.T) {
	s := NewSolver()
	coverModel(s, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	status, err := s.Solve(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusUnknown, status)
}

func TestSolverDeadline(t *testing.T) {
	// Five ternary parameters need 11 tests while the disjoint-clause bound
	// stays at 9, so the search cannot finish within the limit.
	s := NewSolver()
	cands := pairCoverModel(s, 3, 3, 3, 3, 3)

	const limit = 200 * time.Millisecond
	start := time.Now()
	status, err := s.Solve(context.Background(), limit)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, StatusFeasible, status)
	assert.Less(t, elapsed, 2*limit)

	selected := 0
	for _, v := range cands {
		if s.Value(v) {
			selected++
		}
	}
	assert.GreaterOrEqual(t, selected, 11)
}

func TestSolverOptimalLatinSquare(t *testing.T) {
	s := NewSolver()
	cands := coverModel(s, 3)

	status, err := s.Solve(context.Background(), 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, status)

	selected := 0
	for _, v := range cands {
		if s.Value(v) {
			selected++
		}
	}
	assert.Equal(t, 9, selected)
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusUnknown:    "unknown",
		StatusOptimal:    "optimal",
		StatusFeasible:   "feasible",
		StatusInfeasible: "infeasible",
	}
	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

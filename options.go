package pairwise

import (
	"time"

	"github.com/goatx/pairwise/boolopt"
	"go.uber.org/zap"
)

// Algorithm selects the suite builder used by Generate.
type Algorithm string

const (
	// Greedy repeatedly picks the candidate covering the most uncovered pairs.
	Greedy Algorithm = "greedy"
	// Optimal minimizes the suite size with a Boolean optimization backend.
	Optimal Algorithm = "optimal"
)

// DefaultTimeBudget is the optimal solver budget used by Generate when no
// WithTimeBudget option is given.
const DefaultTimeBudget = 30 * time.Second

type options struct {
	maxCandidates int
	logger        *zap.Logger
	backend       func() boolopt.Model
	algorithm     Algorithm
	timeBudget    time.Duration
}

// Option configures suite generation. Options are accepted by SolveGreedy,
// SolveOptimal and Generate; options that do not apply to a call are ignored.
//
// Example:
//
//	pairwise.Generate(ctx, params,
//	    pairwise.WithAlgorithm(pairwise.Optimal),
//	    pairwise.WithTimeBudget(10*time.Second),
//	)
type Option interface {
	apply(*options)
}

func newOptions(opts ...Option) *options {
	o := &options{
		maxCandidates: DefaultMaxCandidates,
		logger:        zap.NewNop(),
		backend:       func() boolopt.Model { return boolopt.NewSolver() },
		algorithm:     Greedy,
		timeBudget:    DefaultTimeBudget,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}
	return o
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithMaxCandidates caps the number of candidate assignments considered by
// both builders. Candidates beyond the cap, in enumeration order, are ignored.
// A value <= 0 removes the cap.
func WithMaxCandidates(n int) Option {
	return optionFunc(func(o *options) {
		o.maxCandidates = n
	})
}

// WithLogger sets the logger used to report progress and warnings.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}

// WithBackend sets the factory creating the optimization backend. A fresh
// model is created for every SolveOptimal call.
func WithBackend(newModel func() boolopt.Model) Option {
	return optionFunc(func(o *options) {
		if newModel != nil {
			o.backend = newModel
		}
	})
}

// WithAlgorithm selects the builder used by Generate.
func WithAlgorithm(a Algorithm) Option {
	return optionFunc(func(o *options) {
		o.algorithm = a
	})
}

// WithTimeBudget sets the optimal solver budget used by Generate.
func WithTimeBudget(d time.Duration) Option {
	return optionFunc(func(o *options) {
		o.timeBudget = d
	})
}

// Result is the outcome of one suite builder run.
type Result struct {
	Suite    TestSuite
	Universe *Universe
	// Residual lists pairs left uncovered by a stalled greedy run.
	Residual []Pair
	// Optimal is set when the backend proved the suite size minimal.
	Optimal bool
	// Truncated is set when the candidate space exceeded the cap.
	Truncated bool
	// Candidates is the number of candidates considered.
	Candidates int
}

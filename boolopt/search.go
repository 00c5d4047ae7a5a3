package boolopt

import "context"

type search struct {
	clauses [][]lit
	// occ[l] lists the clauses containing literal l.
	occ [][]int
	// val is 1 (true), -1 (false) or 0 (unassigned) per variable.
	val   []int8
	obj   []bool
	trail []lit
	qhead int
	cost  int

	best     []bool
	bestCost int

	mark  []int
	epoch int
	nodes int
}

type frame struct {
	mark    int
	lit     lit
	flipped bool
}

func newSearch(s *Solver) *search {
	n := len(s.names)
	sr := &search{
		clauses: s.clauses,
		occ:     make([][]int, 2*n),
		val:     make([]int8, n),
		obj:     make([]bool, n),
		mark:    make([]int, n),
	}
	for _, v := range s.objective {
		sr.obj[v] = true
	}
	for ci, c := range s.clauses {
		for _, l := range c {
			sr.occ[l] = append(sr.occ[l], ci)
		}
	}
	return sr
}

func (sr *search) run(ctx context.Context, nodeLimit int) (Status, error) {
	if err := ctx.Err(); err != nil {
		return StatusUnknown, err
	}
	for _, c := range sr.clauses {
		switch len(c) {
		case 0:
			return StatusInfeasible, nil
		case 1:
			if !sr.assign(c[0]) {
				return StatusInfeasible, nil
			}
		}
	}
	if !sr.propagate() {
		return StatusInfeasible, nil
	}

	var stack []frame
	descend := true
	for {
		if descend {
			if err := sr.interrupted(ctx, nodeLimit); err != nil {
				return sr.incumbentStatus(), err
			}
			sr.nodes++

			if sr.best != nil && sr.lowerBound() >= sr.bestCost {
				descend = false
				continue
			}
			ci := sr.pickClause()
			if ci < 0 {
				sr.record()
				descend = false
				continue
			}
			l := sr.pickLit(ci)
			stack = append(stack, frame{mark: len(sr.trail), lit: l})
			descend = sr.assign(l) && sr.propagate()
			continue
		}

		if len(stack) == 0 {
			break
		}
		fr := &stack[len(stack)-1]
		sr.undo(fr.mark)
		if fr.flipped {
			stack = stack[:len(stack)-1]
			continue
		}
		fr.flipped = true
		descend = sr.assign(fr.lit.neg()) && sr.propagate()
	}

	if sr.best != nil {
		return StatusOptimal, nil
	}
	return StatusInfeasible, nil
}

func (sr *search) interrupted(ctx context.Context, nodeLimit int) error {
	if nodeLimit > 0 && sr.nodes >= nodeLimit {
		return ErrSearchLimitReached
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return nil
}

func (sr *search) incumbentStatus() Status {
	if sr.best != nil {
		return StatusFeasible
	}
	return StatusUnknown
}

// value returns 1 if l is true, -1 if false and 0 if unassigned.
func (sr *search) value(l lit) int8 {
	x := sr.val[l.v()]
	if l.positive() {
		return x
	}
	return -x
}

func (sr *search) assign(l lit) bool {
	switch sr.value(l) {
	case 1:
		return true
	case -1:
		return false
	}
	if l.positive() {
		sr.val[l.v()] = 1
		if sr.obj[l.v()] {
			sr.cost++
		}
	} else {
		sr.val[l.v()] = -1
	}
	sr.trail = append(sr.trail, l)
	return true
}

func (sr *search) undo(mark int) {
	for len(sr.trail) > mark {
		l := sr.trail[len(sr.trail)-1]
		sr.trail = sr.trail[:len(sr.trail)-1]
		if l.positive() && sr.obj[l.v()] {
			sr.cost--
		}
		sr.val[l.v()] = 0
	}
	if sr.qhead > mark {
		sr.qhead = mark
	}
}

// inspect reports whether clause ci is satisfied, and otherwise how many of
// its literals are unassigned and the last of them.
func (sr *search) inspect(ci int) (sat bool, free int, last lit) {
	for _, l := range sr.clauses[ci] {
		switch sr.value(l) {
		case 1:
			return true, 0, 0
		case 0:
			free++
			last = l
		}
	}
	return false, free, last
}

func (sr *search) propagate() bool {
	for sr.qhead < len(sr.trail) {
		l := sr.trail[sr.qhead]
		sr.qhead++
		for _, ci := range sr.occ[l.neg()] {
			sat, free, last := sr.inspect(ci)
			if sat {
				continue
			}
			if free == 0 {
				return false
			}
			if free == 1 && !sr.assign(last) {
				return false
			}
		}
	}
	return true
}

// pickClause returns the unsatisfied clause with the fewest unassigned
// literals, or -1 when every clause is satisfied.
func (sr *search) pickClause() int {
	best, bestFree := -1, 0
	for ci := range sr.clauses {
		sat, free, _ := sr.inspect(ci)
		if sat || free == 0 {
			continue
		}
		if best < 0 || free < bestFree {
			best, bestFree = ci, free
			if free == 1 {
				break
			}
		}
	}
	return best
}

// pickLit returns the unassigned literal of clause ci occurring in the most
// unsatisfied clauses.
func (sr *search) pickLit(ci int) lit {
	var best lit
	bestScore := -1
	for _, l := range sr.clauses[ci] {
		if sr.value(l) != 0 {
			continue
		}
		score := 0
		for _, cj := range sr.occ[l] {
			if sat, _, _ := sr.inspect(cj); !sat {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = l, score
		}
	}
	return best
}

func (sr *search) lowerBound() int {
	sr.epoch++
	lb := sr.cost
clauses:
	for _, c := range sr.clauses {
		free := 0
		for _, l := range c {
			switch sr.value(l) {
			case 1:
				continue clauses
			case 0:
				if !l.positive() || !sr.obj[l.v()] || sr.mark[l.v()] == sr.epoch {
					continue clauses
				}
				free++
			}
		}
		if free == 0 {
			continue
		}
		for _, l := range c {
			if sr.value(l) == 0 {
				sr.mark[l.v()] = sr.epoch
			}
		}
		lb++
	}
	return lb
}

func (sr *search) record() {
	if sr.best != nil && sr.cost >= sr.bestCost {
		return
	}
	if sr.best == nil {
		sr.best = make([]bool, len(sr.val))
	}
	for v, x := range sr.val {
		sr.best[v] = x > 0
	}
	sr.bestCost = sr.cost
}

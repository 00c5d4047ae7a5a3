package pairwise

import (
	"fmt"
	"sort"
)

// Selection is one parameter bound to one of its values.
type Selection struct {
	Param string `json:"param"`
	Value string `json:"value"`
}

// Pair is an unordered pair of selections from two distinct parameters, stored
// with A.Param < B.Param.
type Pair struct {
	A Selection `json:"a"`
	B Selection `json:"b"`
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s=%s, %s=%s)", p.A.Param, p.A.Value, p.B.Param, p.B.Value)
}

// Universe is the set of every pair a covering suite must contain.
//
// Pairs are addressed by a dense index: parameter pairs are laid out in
// lexicographic name order and each block is a |valuesA| x |valuesB| grid in
// declared value order.
type Universe struct {
	params *Parameters
	// order lists parameter positions sorted by name.
	order []int
	// rank is the inverse of order.
	rank []int
	// offset[ra][rb] is the first index of the block for ranks ra < rb.
	offset [][]int
	pairs  []Pair
}

// GeneratePairUniverse enumerates every pair of values from two distinct
// parameters.
//
// Parameters:
//   - params: The parameter model; it must contain at least two parameters
//
// Returns an *InvalidInputError if fewer than two parameters are supplied.
//
// Example:
//
//	u, err := pairwise.GeneratePairUniverse(params)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(u.Len())
func GeneratePairUniverse(params *Parameters) (*Universe, error) {
	if params == nil || params.Len() < 2 {
		return nil, invalidInput("at least two parameters are required to build pairs")
	}

	n := params.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return params.params[order[i]].Name < params.params[order[j]].Name
	})
	rank := make([]int, n)
	for r, i := range order {
		rank[i] = r
	}

	u := &Universe{
		params: params,
		order:  order,
		rank:   rank,
		offset: make([][]int, n),
	}

	next := 0
	for ra := 0; ra < n; ra++ {
		u.offset[ra] = make([]int, n)
		for rb := ra + 1; rb < n; rb++ {
			u.offset[ra][rb] = next
			next += params.radix(order[ra]) * params.radix(order[rb])
		}
	}

	u.pairs = make([]Pair, 0, next)
	for ra := 0; ra < n; ra++ {
		pa := params.params[order[ra]]
		for rb := ra + 1; rb < n; rb++ {
			pb := params.params[order[rb]]
			for _, va := range pa.Values {
				for _, vb := range pb.Values {
					u.pairs = append(u.pairs, Pair{
						A: Selection{Param: pa.Name, Value: va},
						B: Selection{Param: pb.Name, Value: vb},
					})
				}
			}
		}
	}
	return u, nil
}

// Len returns the number of pairs.
func (u *Universe) Len() int {
	return len(u.pairs)
}

// Pairs returns a copy of every pair in universe order.
func (u *Universe) Pairs() []Pair {
	out := make([]Pair, len(u.pairs))
	copy(out, u.pairs)
	return out
}

// Pair returns the pair at index i.
func (u *Universe) Pair(i int) Pair {
	return u.pairs[i]
}

// Parameters returns the model the universe was built from.
func (u *Universe) Parameters() *Parameters {
	return u.params
}

// Index returns the position of p in the universe. The selections may be given
// in either order.
func (u *Universe) Index(p Pair) (int, bool) {
	pa, ok := u.params.Index(p.A.Param)
	if !ok {
		return 0, false
	}
	pb, ok := u.params.Index(p.B.Param)
	if !ok || pa == pb {
		return 0, false
	}
	va, ok := u.params.valueIndex[pa][p.A.Value]
	if !ok {
		return 0, false
	}
	vb, ok := u.params.valueIndex[pb][p.B.Value]
	if !ok {
		return 0, false
	}
	return u.index(pa, va, pb, vb), true
}

// index maps two (parameter, value) positions to the dense pair index.
func (u *Universe) index(pa, va, pb, vb int) int {
	ra, rb := u.rank[pa], u.rank[pb]
	if ra > rb {
		ra, rb = rb, ra
		va, vb = vb, va
		pa, pb = pb, pa
	}
	return u.offset[ra][rb] + va*u.params.radix(pb) + vb
}

// pairsOf appends to dst the indices of the pairs contained in a candidate
// given as value positions. Negative positions are skipped.
func (u *Universe) pairsOf(dst []int, values []int) []int {
	for i := 0; i < len(values); i++ {
		if values[i] < 0 {
			continue
		}
		for j := i + 1; j < len(values); j++ {
			if values[j] < 0 {
				continue
			}
			dst = append(dst, u.index(i, values[i], j, values[j]))
		}
	}
	return dst
}

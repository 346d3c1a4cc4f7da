package sampler

import (
	"math/big"
	"math/rand"
)

// SampleTuple draws K = (k1, ..., kT) uniformly from the set of
// non-decreasing T-tuples counted by table, via the deterministic decision
// walk of spec section 4.D.2. Every element is in [1,p]; the sequence is
// non-decreasing; the tuple is empty if p < ceil(T/(m-1)).
//
// Consumes rng deterministically: identical seeds (and an rng positioned
// identically) produce identical tuples, per spec section 5's ordering
// guarantee.
func SampleTuple(rng *rand.Rand, table *CountingTable, T, P int) []int {
	m := table.AlphabetSize()

	t, p := T, P
	var suffix []int

	for {
		if p < ceilDiv(t, m-1) {
			return suffix
		}

		ctp := table.Get(t, p)
		d := uniformBigInt(rng, ctp)

		if t == 1 {
			x := smallestTriangularBound(d)
			return append([]int{x}, suffix...)
		}

		if p > 1 {
			ctp1 := table.Get(t, p-1)
			if d.Cmp(ctp1) <= 0 {
				p--
				continue
			}
		}

		suffix = append([]int{p}, suffix...)
		t--
	}
}

// uniformBigInt draws a uniform random value in [1, n], n > 0, consuming
// rng via math/big's own uniform sampler.
func uniformBigInt(rng *rand.Rand, n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		panic("sampler: uniformBigInt requires a positive bound")
	}
	r := new(big.Int).Rand(rng, n) // uniform in [0, n)
	return r.Add(r, big.NewInt(1))
}

// smallestTriangularBound returns the smallest x >= 1 such that
// d <= x*(x+1)/2 (i.e. d falls in the x-th bucket of the row-1 triangular
// counting scheme).
func smallestTriangularBound(d *big.Int) int {
	// Solve x(x+1)/2 >= d via x ~= (sqrt(8d+1)-1)/2, then correct by at
	// most one step in either direction for integer rounding.
	eightDPlus1 := new(big.Int).Lsh(d, 3)
	eightDPlus1.Add(eightDPlus1, big.NewInt(1))

	sqrt := new(big.Int).Sqrt(eightDPlus1)
	x := new(big.Int).Sub(sqrt, big.NewInt(1))
	x.Div(x, big.NewInt(2))
	if x.Sign() < 1 {
		x.SetInt64(1)
	}

	for triangular(x).Cmp(d) < 0 {
		x.Add(x, big.NewInt(1))
	}
	one := big.NewInt(1)
	for x.Cmp(one) > 0 && triangular(new(big.Int).Sub(x, one)).Cmp(d) >= 0 {
		x.Sub(x, one)
	}

	return int(x.Int64())
}

func triangular(x *big.Int) *big.Int {
	v := new(big.Int).Mul(x, new(big.Int).Add(x, big.NewInt(1)))
	return v.Div(v, big.NewInt(2))
}

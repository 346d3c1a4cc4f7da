package sampler

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTuple_Deterministic(t *testing.T) {
	table := BuildCountingTable(2, 3, 3)

	rng1 := rand.New(rand.NewSource(42))
	tuple1 := SampleTuple(rng1, table, 3, 3)

	rng2 := rand.New(rand.NewSource(42))
	tuple2 := SampleTuple(rng2, table, 3, 3)

	assert.Equal(t, tuple1, tuple2)
}

func TestSampleTuple_NonDecreasingAndInRange(t *testing.T) {
	table := BuildCountingTable(3, 6, 6)
	rng := rand.New(rand.NewSource(7))

	tuple := SampleTuple(rng, table, 6, 6)
	require.NotEmpty(t, tuple)

	for i, k := range tuple {
		assert.GreaterOrEqual(t, k, 1)
		assert.LessOrEqual(t, k, 6)
		if i > 0 {
			assert.LessOrEqual(t, tuple[i-1], k, "tuple must be non-decreasing")
		}
	}
}

func TestSampleTuple_EmptyWhenPBelowThreshold(t *testing.T) {
	// m=2: threshold at t=4 is ceil(4/1)=4, so P=3 is below it and the walk
	// must immediately return the empty suffix.
	table := BuildCountingTable(2, 4, 4)
	rng := rand.New(rand.NewSource(1))
	tuple := SampleTuple(rng, table, 4, 3)
	assert.Empty(t, tuple)
}

func TestUniformBigInt_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := big.NewInt(10)
	for i := 0; i < 50; i++ {
		v := uniformBigInt(rng, n)
		assert.GreaterOrEqual(t, v.Int64(), int64(1))
		assert.LessOrEqual(t, v.Int64(), int64(10))
	}
}

func TestSmallestTriangularBound(t *testing.T) {
	// triangular(x) = x(x+1)/2: 1,3,6,10,15,...
	cases := map[int64]int{1: 1, 2: 2, 3: 2, 4: 3, 6: 3, 7: 4, 10: 4, 11: 5}
	for d, want := range cases {
		got := smallestTriangularBound(big.NewInt(d))
		assert.Equal(t, want, got, "d=%d", d)
	}
}

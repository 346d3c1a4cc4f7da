package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket_SizesAndOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	buckets := Bucket(items, 3)

	require := assert.New(t)
	require.Len(buckets, 3)
	require.Equal([]int{1, 2}, buckets[0])
	require.Equal([]int{3, 4}, buckets[1])
	require.Equal([]int{5}, buckets[2])

	var flat []int
	for _, b := range buckets {
		flat = append(flat, b...)
	}
	require.Equal(items, flat)
}

func TestBucket_EmptyInput(t *testing.T) {
	buckets := Bucket([]int{}, 4)
	assert.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.Empty(t, b)
	}
}

func TestBucket_SingleBucket(t *testing.T) {
	items := []string{"a", "b", "c"}
	buckets := Bucket(items, 1)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, buckets)
}

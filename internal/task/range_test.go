package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange_BareValue(t *testing.T) {
	r, err := ParseRange("5")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, r.Values())
}

func TestParseRange_InclusiveEnd(t *testing.T) {
	r, err := ParseRange("1..3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, r.Values())
}

func TestParseRange_ExclusiveEndWithStep(t *testing.T) {
	r, err := ParseRange("23 .. < 42 step 5")
	require.NoError(t, err)
	assert.Equal(t, []int{23, 28, 33, 38}, r.Values())
}

func TestParseRange_RejectsGarbage(t *testing.T) {
	_, err := ParseRange("not-a-range")
	assert.Error(t, err)
}

func TestParseRange_RejectsZeroStep(t *testing.T) {
	_, err := ParseRange("1..10 step 0")
	assert.Error(t, err)
}

package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

func TestBOLL(t *testing.T) {
	inc, err := NewBOLL(num.Float64, 3, 2.0)
	require.NoError(t, err)

	testCases := []struct {
		input                 float64
		average, upper, lower float64
	}{
		{2, 2, 2, 2},
		{5, 3.5, 6.5, 0.5},
		{1, 2.667, 6.066, -0.733},
		{6.25, 4.083, 8.562, -0.395},
	}

	for i, tc := range testCases {
		out := inc.Update(tc.input)
		assert.Equal(t, tc.average, round(out.Average, 3), "average at step %d", i)
		assert.Equal(t, tc.upper, round(out.Upper, 3), "upper at step %d", i)
		assert.Equal(t, tc.lower, round(out.Lower, 3), "lower at step %d", i)
	}
}

func TestBOLL_Reset(t *testing.T) {
	inc, _ := NewBOLL(num.Float64, 5, 2.0)

	out := inc.Update(3)
	assert.Equal(t, BOLLOutput[float64]{Average: 3, Upper: 3, Lower: 3}, out)

	inc.Update(2.5)
	inc.Update(3.5)
	inc.Update(4)

	out = inc.UpdateK(closeBar(2))
	assert.Equal(t, 3.0, out.Average)
	assert.Equal(t, 4.414, round(out.Upper, 3))
	assert.Equal(t, 1.586, round(out.Lower, 3))

	inc.Reset()
	out = inc.Update(3)
	assert.Equal(t, BOLLOutput[float64]{Average: 3, Upper: 3, Lower: 3}, out)
}

func TestBOLL_InvalidMultiplier(t *testing.T) {
	for _, m := range []float64{0, -1} {
		_, err := NewBOLL(num.Float64, 3, m)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}

	_, err := NewBOLL(num.Float64, 0, 2.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewBOLL(num.Float64, 1, 0.5)
	assert.NoError(t, err)
}

func TestBOLL_String(t *testing.T) {
	inc, _ := NewBOLL(num.Float64, 10, 3.0)
	assert.Equal(t, "BB(10, 3)", inc.String())

	inc, _ = NewBOLL(num.Float64, 20, 2.5)
	assert.Equal(t, "BB(20, 2.5)", inc.String())

	assert.Equal(t, "BB(9, 2)", DefaultBOLL(num.Float64).String())
}

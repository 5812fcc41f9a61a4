package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

var stochBars = []testBar{
	hlc(20, 20, 20),
	hlc(30, 10, 25),
	hlc(40, 20, 16),
	hlc(35, 15, 19),
	hlc(30, 20, 25),
	hlc(35, 25, 30),
}

func TestFastStoch(t *testing.T) {
	inc, err := NewFastStoch(num.Float64, 3)
	require.NoError(t, err)

	inputs := []float64{0, 200, 100, 120, 115}
	expected := []float64{50, 100, 50, 20, 75}
	for i, v := range inputs {
		assert.Equal(t, expected[i], inc.Update(v), "step %d", i)
	}
}

func TestFastStoch_Bars(t *testing.T) {
	inc, _ := NewFastStoch(num.Float64, 3)

	expected := []float64{50, 75, 20, 30, 40, 75}
	for i, b := range stochBars {
		assert.InDelta(t, expected[i], inc.UpdateK(b), 1e-9, "step %d", i)
	}
}

func TestFastStoch_FirstValueIsDegenerate(t *testing.T) {
	for _, window := range []int{1, 5, 14} {
		inc, _ := NewFastStoch(num.Float64, window)
		assert.Equal(t, 50.0, inc.Update(123.4))
	}
}

func TestSlowStoch(t *testing.T) {
	inc, err := NewSlowStoch(num.Float64, 3, 2)
	require.NoError(t, err)

	inputs := []float64{10, 50, 50, 30, 55}
	expected := []float64{50, 83, 94, 31, 77}
	for i, v := range inputs {
		assert.Equal(t, expected[i], round(inc.Update(v), 0), "step %d", i)
	}
}

func TestSlowStoch_Bars(t *testing.T) {
	inc, _ := NewSlowStoch(num.Float64, 3, 2)

	testCases := []struct {
		bar      testBar
		expected float64
	}{
		{hlc(30, 10, 25), 75},
		{hlc(20, 20, 20), 58},
		{hlc(40, 20, 16), 33},
		{hlc(35, 15, 19), 22},
		{hlc(30, 20, 25), 34},
		{hlc(35, 25, 30), 61},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.expected, round(inc.UpdateK(tc.bar), 0), "step %d", i)
	}

	inc.Reset()
	assert.Equal(t, 50.0, inc.UpdateK(stochBars[0]))
}

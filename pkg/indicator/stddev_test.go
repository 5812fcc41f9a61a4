package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/streamta/pkg/fixedpoint"
	"github.com/c9s/streamta/pkg/num"
)

func TestStdDev(t *testing.T) {
	inc, err := NewStdDev(num.Float64, 4)
	require.NoError(t, err)

	inputs := []float64{10, 20, 30, 20, 10, 100}
	expected := []float64{0, 5, 8.165, 7.071, 7.071, 35.355}
	for i, v := range inputs {
		assert.Equal(t, expected[i], round(inc.Update(v), 3), "step %d", i)
	}
}

func TestStdDev_Bars(t *testing.T) {
	inc, _ := NewStdDev(num.Float64, 4)
	assert.Equal(t, 0.0, inc.UpdateK(closeBar(10)))
	assert.InDelta(t, 5.0, inc.UpdateK(closeBar(20)), 1e-12)
	assert.Equal(t, 15.0, inc.Mean())
}

func TestStdDev_Reset(t *testing.T) {
	inc, _ := NewStdDev(num.Float64, 4)
	inc.Update(10)
	inc.Update(20)
	assert.Equal(t, 8.165, round(inc.Update(30), 3))

	inc.Reset()
	assert.Equal(t, 0.0, inc.Update(20))
	assert.Equal(t, 20.0, inc.Mean())
}

func TestStdDev_Gonum(t *testing.T) {
	const window = 6
	inputs := []float64{3.5, 4, 8.25, 1, 0.5, 12, 7, 7, 9.75, 2, 3, 11, 6.5, 4.25}

	inc, _ := NewStdDev(num.Float64, window)
	for i, v := range inputs {
		got := inc.Update(v)

		from := i + 1 - window
		if from < 0 {
			from = 0
		}
		mean, std := stat.PopMeanStdDev(inputs[from:i+1], nil)

		assert.InDelta(t, std, got, 1e-9, "step %d", i)
		assert.InDelta(t, mean, inc.Mean(), 1e-9, "step %d", i)
	}
}

func TestStdDev_Fixed(t *testing.T) {
	inc, _ := NewStdDev(num.Fixed, 4)

	inputs := []float64{10, 20, 30, 20, 10, 100}
	expected := []float64{0, 5, 8.165, 7.071, 7.071, 35.355}
	for i, v := range inputs {
		got := inc.Update(fixedpoint.NewFromFloat(v))
		assert.InDelta(t, expected[i], got.Float64(), 1e-3, "step %d", i)
	}
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, 0.0, sqrt(num.Float64, 0))
	assert.InDelta(t, 3.0, sqrt(num.Float64, 9), 1e-12)
	assert.InDelta(t, 1.41421356, sqrt(num.Float64, 2), 1e-8)
	assert.InDelta(t, 0.1, sqrt(num.Float64, 0.01), 1e-12)
	assert.InDelta(t, 1.5, sqrt(num.Fixed, fixedpoint.NewFromFloat(2.25)).Float64(), 1e-8)
}
